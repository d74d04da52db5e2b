package event

import "github.com/PKsong/MIDIKit/values"

// UniversalSysExKind distinguishes the two MMA Universal System Exclusive
// families: real-time (0x7F) and non-real-time (0x7E).
type UniversalSysExKind uint8

const (
	UniversalRealTime UniversalSysExKind = iota
	UniversalNonRealTime
)

// SysEx7 is a manufacturer system-exclusive message carrying 7-bit data
// bytes, framed on the wire as 0xF0 <manufacturer> <data...> 0xF7.
type SysEx7 struct {
	GroupValue   values.U4
	Manufacturer ManufacturerID
	Data         []byte
}

func (e SysEx7) Kind() Kind       { return KindSysEx7 }
func (e SysEx7) Group() values.U4 { return e.GroupValue }

// UniversalSysEx7 is an MMA Universal System Exclusive message: the
// manufacturer slot is 0x7E/0x7F and the payload starts with a device ID
// and two sub-IDs identifying the universal message.
type UniversalSysEx7 struct {
	GroupValue values.U4
	Kind_      UniversalSysExKind
	DeviceID   values.U7
	SubID1     values.U7
	SubID2     values.U7
	Data       []byte
}

func (e UniversalSysEx7) Kind() Kind               { return KindUniversalSysEx7 }
func (e UniversalSysEx7) Group() values.U4         { return e.GroupValue }
func (e UniversalSysEx7) UniversalKind() UniversalSysExKind { return e.Kind_ }

// SysEx8 is the UMP-only 8-bit-clean system-exclusive variant: it has no
// MIDI 1.0 wire representation and carries a stream ID used to
// distinguish interleaved SysEx8 streams within one UMP group.
type SysEx8 struct {
	GroupValue values.U4
	StreamID   uint8
	Data       []byte
}

func (e SysEx8) Kind() Kind       { return KindSysEx8 }
func (e SysEx8) Group() values.U4 { return e.GroupValue }

// UniversalSysEx8 is the SysEx8 counterpart to UniversalSysEx7.
type UniversalSysEx8 struct {
	GroupValue values.U4
	Kind_      UniversalSysExKind
	DeviceID   values.U7
	SubID1     values.U7
	SubID2     values.U7
	StreamID   uint8
	Data       []byte
}

func (e UniversalSysEx8) Kind() Kind               { return KindUniversalSysEx8 }
func (e UniversalSysEx8) Group() values.U4         { return e.GroupValue }
func (e UniversalSysEx8) UniversalKind() UniversalSysExKind { return e.Kind_ }
