package hui

import (
	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/internal/bitpack"
	"github.com/PKsong/MIDIKit/values"
)

// VPotIndex addresses one of the 13 rotary encoders the LED-ring
// display protocol can target: the 8 per-channel V-Pots (one per
// mixer strip), a master pot, three auxiliary pots, and the scroll
// wheel, which has no LED ring of its own.
type VPotIndex uint8

const (
	VPotStrip0 VPotIndex = iota
	VPotStrip1
	VPotStrip2
	VPotStrip3
	VPotStrip4
	VPotStrip5
	VPotStrip6
	VPotStrip7
	VPotMaster
	VPotAux1
	VPotAux2
	VPotAux3
	VPotScrollWheel
)

// HasLEDRing reports whether this encoder has an LED ring to display a
// DisplayMode on; the scroll wheel is input-only.
func (v VPotIndex) HasLEDRing() bool { return v != VPotScrollWheel }

// vpotCC returns the CC number (0x10-0x17) wired to a channel-strip
// V-Pot, and ok=false for encoders outside the 8-strip range. Master,
// the auxiliary pots and the scroll wheel have no strip-scoped CC, and
// this package has no other wire encoding for them.
func (v VPotIndex) vpotCC() (event.Controller, bool) {
	if v > VPotStrip7 {
		return 0, false
	}
	return event.Controller(0x10 + uint8(v)), true
}

// DisplayModeKind is the LED-ring fill shape; unit positions map onto
// the 11-LED ring at round(unit*10).
type DisplayModeKind uint8

const (
	DisplayAllOff DisplayModeKind = iota
	DisplaySingle
	DisplayLeftAnchor
	DisplayCenterAnchor
	DisplayCenterRadius
)

// DisplayMode is a V-Pot's requested LED-ring appearance.
type DisplayMode struct {
	Kind DisplayModeKind
	Unit float64 // meaningful for every Kind except DisplayAllOff
}

const ringLEDCount = 11 // positions 0..10
const ringCenterIndex = 5

func unitToPosIndex(unit float64) uint8 {
	if unit < 0 {
		unit = 0
	}
	if unit > 1 {
		unit = 1
	}
	return uint8(unit*float64(ringLEDCount-1) + 0.5)
}

// LEDPattern is the resolved 11-LED ring plus lower/centre LED state,
// packed as bits 0-10 (ring, position-indexed) and bit 11 (centre).
type LEDPattern uint16

const ledCenterBit LEDPattern = 1 << 11

// Pattern resolves a DisplayMode into its LED bit pattern.
func (m DisplayMode) Pattern() LEDPattern {
	if m.Kind == DisplayAllOff {
		return 0
	}
	pos := unitToPosIndex(m.Unit)
	var p LEDPattern
	switch m.Kind {
	case DisplaySingle:
		p = 1 << pos
	case DisplayLeftAnchor:
		for i := uint8(0); i <= pos; i++ {
			p |= 1 << i
		}
	case DisplayCenterAnchor:
		lo, hi := ringCenterIndex, int(pos)
		if hi < lo {
			lo, hi = hi, lo
		}
		for i := lo; i <= hi; i++ {
			p |= 1 << uint8(i)
		}
	case DisplayCenterRadius:
		radius := int(pos) - ringCenterIndex
		if radius < 0 {
			radius = -radius
		}
		lo, hi := ringCenterIndex-radius, ringCenterIndex+radius
		if lo < 0 {
			lo = 0
		}
		if hi > ringLEDCount-1 {
			hi = ringLEDCount - 1
		}
		for i := lo; i <= hi; i++ {
			p |= 1 << uint8(i)
		}
	}
	return p | ledCenterBit
}

// the display wire value space (values >= 16) is disjoint from the
// rotation-delta space (values 0-15), so both travel over the same CC.
const (
	displayCodeBase  = 16
	displayKindCount = 5
)

// EncodeVPotDisplay produces the CC event a host sends to set a
// channel-strip V-Pot's LED ring. ok is false for an encoder with no
// direct per-strip CC (master/aux/scroll); no display message of any
// kind is produced for those encoders.
func EncodeVPotDisplay(v VPotIndex, mode DisplayMode, group values.U4, channel values.U4) (event.CC, bool) {
	cc, ok := v.vpotCC()
	if !ok {
		return event.CC{}, false
	}
	pos := uint8(0)
	if mode.Kind != DisplayAllOff {
		pos = unitToPosIndex(mode.Unit)
	}
	code := displayCodeBase + int(mode.Kind)*ringLEDCount + int(pos)
	return event.CC{
		GroupValue:   group,
		ChannelValue: channel,
		Controller:   cc,
		Value:        event.V7(values.NewU7(uint8(code))),
	}, true
}

// EncodeVPotRotation produces the CC event a surface sends to report a
// V-Pot's rotation delta, in [-7, 7] clicks.
func EncodeVPotRotation(v VPotIndex, delta int8, group values.U4, channel values.U4) (event.CC, bool) {
	cc, ok := v.vpotCC()
	if !ok {
		return event.CC{}, false
	}
	return event.CC{
		GroupValue:   group,
		ChannelValue: channel,
		Controller:   cc,
		Value:        event.V7(values.NewU7(bitpack.PackSignMagnitude4(delta))),
	}, true
}

// DecodeVPotCC splits a V-Pot CC event's value back into either a
// rotation delta or a display mode, whichever it encodes.
func DecodeVPotCC(cc event.CC) (strip int, rotation int8, isRotation bool, mode DisplayMode, isDisplay bool) {
	if cc.Controller < 0x10 || cc.Controller > 0x17 {
		return 0, 0, false, DisplayMode{}, false
	}
	strip = int(cc.Controller - 0x10)
	raw := uint8(cc.Value.AsU7())
	if raw < displayCodeBase {
		return strip, bitpack.UnpackSignMagnitude4(raw), true, DisplayMode{}, false
	}
	code := int(raw) - displayCodeBase
	kind := DisplayModeKind(code / ringLEDCount)
	pos := code % ringLEDCount
	if int(kind) >= displayKindCount {
		return strip, 0, false, DisplayMode{}, false
	}
	unit := float64(pos) / float64(ringLEDCount-1)
	if kind == DisplayAllOff {
		unit = 0
	}
	return strip, 0, false, DisplayMode{Kind: kind, Unit: unit}, true
}
