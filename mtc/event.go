package mtc

import "github.com/PKsong/MIDIKit/event"

// FeedEvent accepts any decoded event.Event and routes it to
// FeedQuarterFrame or FeedFullFrameSysEx as appropriate. handled is
// false for events unrelated to MTC, which the caller should treat as
// plain pass-through; ok is false when handled is true but the event
// produced no emission (buffer still filling, or a short SysEx payload).
func (d *Decoder) FeedEvent(e event.Event) (em Emission, ok bool, handled bool) {
	if qf, isQF := e.(event.TimecodeQuarterFrame); isQF {
		em, ok = d.FeedQuarterFrame(uint8(qf.DataByte.Value()))
		return em, ok, true
	}
	em, ok, handled = d.FeedFullFrameSysEx(e)
	return em, ok, handled
}
