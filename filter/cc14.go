package filter

import (
	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/values"
)

// KindCC14 discriminates CC14, the combiner's synthesized event, from
// event.Kind's own enumeration. It lives in its own range the way
// event.KindUnrecognizedUMP does, to avoid colliding with a future
// addition to the event package.
const KindCC14 event.Kind = 2000

// CC14 is a 14-bit controller value produced by combining a MIDI 1.0
// MSB/LSB CC pair (controller n, 0-31, paired with controller n+32). A
// 14-bit combiner coalesces MSB+LSB pairs into a single CC14 logical
// event, alongside the two raw CC events — the same both/and pattern
// midi1.rpnCombiner uses for RPN/NRPN.
type CC14 struct {
	GroupValue   values.U4
	ChannelValue values.U4
	Controller   event.Controller // the MSB's controller number, 0-31
	Value        values.U14
}

func (e CC14) Kind() event.Kind   { return KindCC14 }
func (e CC14) Group() values.U4   { return e.GroupValue }
func (e CC14) Channel() values.U4 { return e.ChannelValue }

type cc14Key struct {
	group, channel values.U4
	msb            event.Controller
}

// ByCC14Coalesced scans events in order, and for every LSB CC (32-63)
// whose matching MSB CC (its number minus 32) was seen earlier on the
// same group/channel, appends a synthesized CC14 event right after the
// LSB's raw CC event. Every other event, including unpaired CCs, passes
// through unchanged. This is stateful across the whole input and so is a
// function over []event.Event rather than a Predicate.
func ByCC14Coalesced(events []event.Event) []event.Event {
	pending := make(map[cc14Key]values.U7)
	out := make([]event.Event, 0, len(events))
	for _, e := range events {
		cc, ok := e.(event.CC)
		if !ok {
			out = append(out, e)
			continue
		}
		num := cc.Controller
		switch {
		case num < 32:
			pending[cc14Key{cc.GroupValue, cc.ChannelValue, num}] = cc.Value.AsU7()
			out = append(out, e)
		case num < 64:
			msb := num - 32
			key := cc14Key{cc.GroupValue, cc.ChannelValue, msb}
			out = append(out, e)
			if msbVal, ok := pending[key]; ok {
				delete(pending, key)
				out = append(out, CC14{
					GroupValue:   cc.GroupValue,
					ChannelValue: cc.ChannelValue,
					Controller:   msb,
					Value:        values.FromPair(msbVal, cc.Value.AsU7()),
				})
			}
		default:
			out = append(out, e)
		}
	}
	return out
}
