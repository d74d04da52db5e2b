package event

import (
	"strconv"

	"github.com/PKsong/MIDIKit/values"
)

// Controller is a MIDI 1.0/2.0 Continuous Controller number, 0..127. The
// named constants below cover a subset of the MMA-assigned CC numbers;
// numbers without a constant have no mnemonic. The type itself is just
// the raw byte, so an unrecognised or manufacturer CC number round-trips
// with full fidelity without needing a separate "raw" case —
// Controller(42) and ControllerEffectControl1MSB (= 12) are the same kind
// of value, just with or without a mnemonic.
type Controller values.U7

const (
	ControllerBankSelectMSB         Controller = 0
	ControllerModulationWheelMSB    Controller = 1
	ControllerBreathControllerMSB   Controller = 2
	ControllerFootControllerMSB     Controller = 4
	ControllerPortamentoTimeMSB     Controller = 5
	ControllerDataEntryMSB          Controller = 6
	ControllerChannelVolumeMSB      Controller = 7
	ControllerBalanceMSB            Controller = 8
	ControllerPanMSB                Controller = 10
	ControllerExpressionMSB         Controller = 11
	ControllerEffectControl1MSB     Controller = 12
	ControllerEffectControl2MSB     Controller = 13
	ControllerGeneralPurpose1MSB    Controller = 16
	ControllerGeneralPurpose2MSB    Controller = 17
	ControllerGeneralPurpose3MSB    Controller = 18
	ControllerGeneralPurpose4MSB    Controller = 19
	ControllerBankSelectLSB         Controller = 32
	ControllerModulationWheelLSB    Controller = 33
	ControllerDataEntryLSB          Controller = 38
	ControllerSustainPedal          Controller = 64
	ControllerPortamentoOnOff       Controller = 65
	ControllerSostenuto             Controller = 66
	ControllerSoftPedal             Controller = 67
	ControllerLegatoFootswitch      Controller = 68
	ControllerHold2                 Controller = 69
	ControllerSoundVariation        Controller = 70
	ControllerResonance             Controller = 71
	ControllerReleaseTime           Controller = 72
	ControllerAttackTime            Controller = 73
	ControllerBrightness            Controller = 74
	ControllerDecayTime             Controller = 75
	ControllerVibratoRate           Controller = 76
	ControllerVibratoDepth          Controller = 77
	ControllerVibratoDelay          Controller = 78
	ControllerSoundController10     Controller = 79
	ControllerGeneralPurpose5       Controller = 80
	ControllerGeneralPurpose6       Controller = 81
	ControllerGeneralPurpose7       Controller = 82
	ControllerGeneralPurpose8       Controller = 83
	ControllerPortamentoControl     Controller = 84
	ControllerHighResolutionVelocityPrefix Controller = 88
	ControllerEffects1Depth         Controller = 91
	ControllerEffects2Depth         Controller = 92
	ControllerEffects3Depth         Controller = 93
	ControllerEffects4Depth         Controller = 94
	ControllerEffects5Depth         Controller = 95
	ControllerDataIncrement         Controller = 96
	ControllerDataDecrement         Controller = 97
	ControllerNRPNLSB               Controller = 98
	ControllerNRPNMSB               Controller = 99
	ControllerRPNLSB                Controller = 100
	ControllerRPNMSB                Controller = 101
	ControllerAllSoundOff           Controller = 120
	ControllerResetAllControllers   Controller = 121
	ControllerLocalControlOnOff     Controller = 122
	ControllerAllNotesOff           Controller = 123
	ControllerOmniModeOff           Controller = 124
	ControllerOmniModeOn            Controller = 125
	ControllerMonoModeOn            Controller = 126
	ControllerPolyModeOn            Controller = 127
)

var controllerNames = map[Controller]string{
	ControllerBankSelectMSB:       "Bank Select MSB",
	ControllerModulationWheelMSB:  "Modulation Wheel MSB",
	ControllerBreathControllerMSB: "Breath Controller MSB",
	ControllerFootControllerMSB:   "Foot Controller MSB",
	ControllerPortamentoTimeMSB:   "Portamento Time MSB",
	ControllerDataEntryMSB:        "Data Entry MSB",
	ControllerChannelVolumeMSB:    "Channel Volume MSB",
	ControllerBalanceMSB:          "Balance MSB",
	ControllerPanMSB:              "Pan MSB",
	ControllerExpressionMSB:       "Expression MSB",
	ControllerEffectControl1MSB:   "Effect Control 1 MSB",
	ControllerEffectControl2MSB:   "Effect Control 2 MSB",
	ControllerBankSelectLSB:       "Bank Select LSB",
	ControllerModulationWheelLSB:  "Modulation Wheel LSB",
	ControllerDataEntryLSB:        "Data Entry LSB",
	ControllerSustainPedal:        "Sustain Pedal",
	ControllerPortamentoOnOff:     "Portamento On/Off",
	ControllerSostenuto:           "Sostenuto",
	ControllerSoftPedal:           "Soft Pedal",
	ControllerLegatoFootswitch:    "Legato Footswitch",
	ControllerHold2:               "Hold 2",
	ControllerBrightness:          "Brightness",
	ControllerEffects1Depth:       "Effects 1 Depth (Reverb)",
	ControllerEffects2Depth:       "Effects 2 Depth (Tremolo)",
	ControllerEffects3Depth:       "Effects 3 Depth (Chorus)",
	ControllerEffects4Depth:       "Effects 4 Depth (Celeste)",
	ControllerEffects5Depth:       "Effects 5 Depth (Phaser)",
	ControllerDataIncrement:       "Data Increment",
	ControllerDataDecrement:       "Data Decrement",
	ControllerNRPNLSB:             "NRPN LSB",
	ControllerNRPNMSB:             "NRPN MSB",
	ControllerRPNLSB:              "RPN LSB",
	ControllerRPNMSB:              "RPN MSB",
	ControllerAllSoundOff:         "All Sound Off",
	ControllerResetAllControllers: "Reset All Controllers",
	ControllerLocalControlOnOff:   "Local Control On/Off",
	ControllerAllNotesOff:         "All Notes Off",
	ControllerOmniModeOff:         "Omni Mode Off",
	ControllerOmniModeOn:          "Omni Mode On",
	ControllerMonoModeOn:          "Mono Mode On",
	ControllerPolyModeOn:          "Poly Mode On",
}

// Name returns the MMA mnemonic for well-known CC numbers, or a generic
// "CC <n>" label for unnamed/manufacturer-specific ones.
func (c Controller) Name() string {
	if name, ok := controllerNames[c]; ok {
		return name
	}
	return "CC " + strconv.Itoa(int(c))
}

// Number returns the underlying CC number as a U7.
func (c Controller) Number() values.U7 { return values.U7(c) }

// IsChannelModeMessage reports whether this controller number (120..127)
// is a channel-mode message rather than an ordinary continuous controller.
func (c Controller) IsChannelModeMessage() bool { return c >= 120 && c <= 127 }
