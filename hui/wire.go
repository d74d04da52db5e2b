package hui

import (
	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/values"
)

const (
	ccZoneSelect = 0x0C
	ccPortSelect = 0x0D
)

// EncodeSwitch produces the CC 0x0C/0x0D pair that selects a switch's
// zone and reports its port and state in one transaction.
func EncodeSwitch(sw Switch, down bool, group values.U4, channel values.U4) [2]event.CC {
	state := uint8(0)
	if down {
		state = 0x10
	}
	return [2]event.CC{
		{GroupValue: group, ChannelValue: channel, Controller: ccZoneSelect, Value: event.V7(sw.Zone)},
		{GroupValue: group, ChannelValue: channel, Controller: ccPortSelect, Value: event.V7(values.NewU7(uint8(sw.Port) | state))},
	}
}

// switchDecoder accumulates the zone half of the CC 0x0C/0x0D pair
// until the matching port/state CC arrives, per channel: HUI sends
// zone and port as two separate CC messages that together address one
// switch.
type switchDecoder struct {
	haveZone map[values.U4]values.U7
}

func newSwitchDecoder() *switchDecoder {
	return &switchDecoder{haveZone: make(map[values.U4]values.U7)}
}

// Feed processes one CC event and returns a resolved SwitchEvent once
// both halves of a (zone, port) pair have arrived on the same channel.
func (d *switchDecoder) Feed(cc event.CC) (SwitchEvent, bool) {
	switch cc.Controller {
	case ccZoneSelect:
		d.haveZone[cc.ChannelValue] = cc.Value.AsU7()
		return SwitchEvent{}, false
	case ccPortSelect:
		zone, ok := d.haveZone[cc.ChannelValue]
		if !ok {
			return SwitchEvent{}, false
		}
		raw := uint8(cc.Value.AsU7())
		port := values.NewU4(raw & 0xF)
		down := raw&0x10 != 0
		sw := Switch{Zone: zone, Port: port}
		name, known := LookupSwitch(sw)
		return SwitchEvent{Switch: sw, Name: name, Known: known, Down: down}, true
	default:
		return SwitchEvent{}, false
	}
}

// EncodeFader produces the pitch-bend event a HUI fader position maps
// to: HUI faders ride the channel pitch-bend wheel one channel per
// mixer strip.
func EncodeFader(strip int, position values.U14, group values.U4) event.PitchBend {
	return event.PitchBend{
		GroupValue:   group,
		ChannelValue: values.NewU4(uint8(strip) & 0xF),
		Value:        event.WideValue14(position),
	}
}

// DecodeFader extracts a fader position from a pitch-bend event.
func DecodeFader(pb event.PitchBend) (strip int, position values.U14) {
	return int(pb.ChannelValue), pb.Value.AsU14()
}
