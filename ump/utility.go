package ump

import (
	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/midierr"
	"github.com/PKsong/MIDIKit/values"
)

// MT0 (Utility) word layout: byte0 = 0x0|group, byte1 = status<<4,
// byte2:byte3 = 16-bit payload for JRClock/JRTimestamp.
const (
	utilityNoOp        = 0x0
	utilityJRClock     = 0x1
	utilityJRTimestamp = 0x2
)

func decodeUtility(grp uint8, w uint32) (event.Event, error) {
	status := byte1(w) >> 4
	payload := uint16(byte2(w))<<8 | uint16(byte3(w))
	switch status {
	case utilityNoOp:
		return event.NoOp{GroupValue: u4(grp)}, nil
	case utilityJRClock:
		return event.JRClock{GroupValue: u4(grp), Time: values.NewU16(payload)}, nil
	case utilityJRTimestamp:
		return event.JRTimestamp{GroupValue: u4(grp), Time: values.NewU16(payload)}, nil
	}
	return nil, midierr.NewMalformedf("ump.Utility", -1, "unknown utility status nibble 0x%X", status)
}

func encodeUtility(e event.Event) (uint32, error) {
	switch ev := e.(type) {
	case event.NoOp:
		return makeWord(byte(MTUtility)<<4|byte(ev.GroupValue), utilityNoOp<<4, 0, 0), nil
	case event.JRClock:
		return makeWord(byte(MTUtility)<<4|byte(ev.GroupValue), utilityJRClock<<4, byte(ev.Time>>8), byte(ev.Time)), nil
	case event.JRTimestamp:
		return makeWord(byte(MTUtility)<<4|byte(ev.GroupValue), utilityJRTimestamp<<4, byte(ev.Time>>8), byte(ev.Time)), nil
	}
	return 0, midierr.NewUnsupported("event has no UMP utility representation")
}
