package ump

import (
	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/midierr"
	"github.com/PKsong/MIDIKit/values"
)

// MT1 (System) word layout: byte0 = 0x1|group, byte1 = the MIDI 1.0
// system-common/real-time status byte verbatim, byte2/3 = its data bytes.
const (
	sysMTCQuarter    = 0xF1
	sysSongPosition  = 0xF2
	sysSongSelect    = 0xF3
	sysTuneRequest   = 0xF6
	sysTimingClock   = 0xF8
	sysStart         = 0xFA
	sysContinue      = 0xFB
	sysStop          = 0xFC
	sysActiveSensing = 0xFE
	sysSystemReset   = 0xFF
)

func decodeSystem(grp uint8, w uint32) (event.Event, error) {
	status := byte1(w)
	d1, d2 := byte2(w), byte3(w)
	g := u4(grp)
	switch status {
	case sysMTCQuarter:
		return event.TimecodeQuarterFrame{GroupValue: g, DataByte: u7(d1)}, nil
	case sysSongSelect:
		return event.SongSelect{GroupValue: g, Number: u7(d1)}, nil
	case sysSongPosition:
		return event.SongPositionPointer{GroupValue: g, Beat: values.FromPair(u7(d2), u7(d1))}, nil
	case sysTuneRequest:
		return event.TuneRequest{GroupValue: g}, nil
	case sysTimingClock:
		return event.TimingClock{GroupValue: g}, nil
	case sysStart:
		return event.Start{GroupValue: g}, nil
	case sysContinue:
		return event.Continue{GroupValue: g}, nil
	case sysStop:
		return event.Stop{GroupValue: g}, nil
	case sysActiveSensing:
		return event.ActiveSensing{GroupValue: g}, nil
	case sysSystemReset:
		return event.SystemReset{GroupValue: g}, nil
	}
	return nil, midierr.NewMalformedf("ump.System", -1, "unknown system status byte 0x%02X", status)
}

func encodeSystem(e event.Event) (uint32, error) {
	head := func(grp values.U4) uint8 { return byte(MTSystem)<<4 | byte(grp) }
	switch ev := e.(type) {
	case event.TimecodeQuarterFrame:
		return makeWord(head(ev.GroupValue), sysMTCQuarter, byte(ev.DataByte), 0), nil
	case event.SongSelect:
		return makeWord(head(ev.GroupValue), sysSongSelect, byte(ev.Number), 0), nil
	case event.SongPositionPointer:
		pair := ev.Beat.IntoPair()
		return makeWord(head(ev.GroupValue), sysSongPosition, byte(pair.LSB), byte(pair.MSB)), nil
	case event.TuneRequest:
		return makeWord(head(ev.GroupValue), sysTuneRequest, 0, 0), nil
	case event.TimingClock:
		return makeWord(head(ev.GroupValue), sysTimingClock, 0, 0), nil
	case event.Start:
		return makeWord(head(ev.GroupValue), sysStart, 0, 0), nil
	case event.Continue:
		return makeWord(head(ev.GroupValue), sysContinue, 0, 0), nil
	case event.Stop:
		return makeWord(head(ev.GroupValue), sysStop, 0, 0), nil
	case event.ActiveSensing:
		return makeWord(head(ev.GroupValue), sysActiveSensing, 0, 0), nil
	case event.SystemReset:
		return makeWord(head(ev.GroupValue), sysSystemReset, 0, 0), nil
	}
	return 0, midierr.NewUnsupported("event has no UMP system representation")
}
