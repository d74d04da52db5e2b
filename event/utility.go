package event

import "github.com/PKsong/MIDIKit/values"

// NoOp is the MIDI 2.0 utility no-operation message: present purely to
// occupy a UMP slot (e.g. for timing padding) with no semantic effect.
type NoOp struct{ GroupValue values.U4 }

func (e NoOp) Kind() Kind       { return KindNoOp }
func (e NoOp) Group() values.U4 { return e.GroupValue }

// JRClock carries a Jitter Reduction clock timestamp: a 16-bit count of
// 1/31250-second ticks since the last JRClock wraparound.
type JRClock struct {
	GroupValue values.U4
	Time       values.U16
}

func (e JRClock) Kind() Kind       { return KindJRClock }
func (e JRClock) Group() values.U4 { return e.GroupValue }

// JRTimestamp carries a Jitter Reduction sender timestamp, used to
// recover the intended transmission time of the messages that follow it.
type JRTimestamp struct {
	GroupValue values.U4
	Time       values.U16
}

func (e JRTimestamp) Kind() Kind       { return KindJRTimestamp }
func (e JRTimestamp) Group() values.U4 { return e.GroupValue }
