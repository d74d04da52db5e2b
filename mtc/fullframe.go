package mtc

import "github.com/PKsong/MIDIKit/event"

const (
	mtcSubID1 = 0x01 // MIDI Time Code
	mtcSubID2 = 0x01 // full frame
)

// FeedFullFrame processes a full-frame MTC payload (the 4 bytes hr mn sc
// fr that follow sub-ID2 in a MIDI Time Code Universal SysEx message,
// per the MMA Universal Real Time format). It snaps the decoder's state
// directly to the given timecode without touching or requiring a
// complete quarter-frame buffer, and always emits.
func (d *Decoder) FeedFullFrame(payload []byte) (Emission, bool) {
	if len(payload) < 4 {
		d.log.Warn("mtc: full-frame payload too short, dropping")
		return Emission{}, false
	}

	hr, mn, sc, fr := payload[0], payload[1], payload[2], payload[3]
	tc := Timecode{
		Rate:    FrameRate((hr >> 5) & 0x3),
		Hours:   hr & 0x1F,
		Minutes: mn & 0x3F,
		Seconds: sc & 0x3F,
		Frames:  fr & 0x1F,
	}

	d.captured = tc
	d.captureDirection = DirectionAmbiguous
	d.deltaQFsSinceCapture = 0
	d.haveCaptured = true

	changed := !d.haveEmitted || frameFieldsDiffer(tc, d.lastEmitted)
	d.lastEmitted = tc
	d.haveEmitted = true

	em := Emission{Timecode: tc, Source: SourceFullFrame, Direction: DirectionAmbiguous, FrameChanged: changed}
	if d.onEmit != nil {
		d.onEmit(em)
	}
	return em, true
}

// FeedFullFrameSysEx is a convenience wrapper over FeedFullFrame for
// callers holding a decoded UniversalSysEx7/UniversalSysEx8 event. It
// reports ok=false, with no emission, for anything that isn't a MIDI
// Time Code full-frame message (sub-ID1/2 mismatch, or the wrong
// universal kind) rather than treating it as malformed: a decoder fed a
// mixed SysEx stream should pass non-MTC messages through untouched.
func (d *Decoder) FeedFullFrameSysEx(e event.Event) (Emission, bool, bool) {
	var subID1, subID2 uint8
	var data []byte
	switch m := e.(type) {
	case event.UniversalSysEx7:
		if m.Kind_ != event.UniversalRealTime {
			return Emission{}, false, false
		}
		subID1, subID2, data = uint8(m.SubID1.Value()), uint8(m.SubID2.Value()), m.Data
	case event.UniversalSysEx8:
		if m.Kind_ != event.UniversalRealTime {
			return Emission{}, false, false
		}
		subID1, subID2, data = uint8(m.SubID1.Value()), uint8(m.SubID2.Value()), m.Data
	default:
		return Emission{}, false, false
	}

	if subID1 != mtcSubID1 || subID2 != mtcSubID2 {
		return Emission{}, false, false
	}
	em, ok := d.FeedFullFrame(data)
	return em, ok, true
}
