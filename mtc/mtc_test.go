package mtc_test

import (
	"testing"

	"github.com/PKsong/MIDIKit/mtc"
)

// the piece indices match the wire order: frames LSB/MSB, seconds
// LSB/MSB, minutes LSB/MSB, hours LSB/MSB+rate.
const (
	pFramesLSB = 0
	pFramesMSB = 1
	pSecsLSB   = 2
	pSecsMSB   = 3
	pMinsLSB   = 4
	pMinsMSB   = 5
	pHoursLSB  = 6
	pRateHours = 7
)

// quarterFrameBytes returns the 8 quarter-frame data bytes (piece order
// 0..7) that encode tc.
func quarterFrameBytes(tc mtc.Timecode, rate mtc.FrameRate) [8]byte {
	var nibble [8]byte
	nibble[pFramesLSB] = tc.Frames & 0xF
	nibble[pFramesMSB] = (tc.Frames >> 4) & 0x1
	nibble[pSecsLSB] = tc.Seconds & 0xF
	nibble[pSecsMSB] = (tc.Seconds >> 4) & 0x3
	nibble[pMinsLSB] = tc.Minutes & 0xF
	nibble[pMinsMSB] = (tc.Minutes >> 4) & 0x3
	nibble[pHoursLSB] = tc.Hours & 0xF
	nibble[pRateHours] = (uint8(rate)&0x3)<<1 | (tc.Hours>>4)&0x1

	var b [8]byte
	for i, n := range nibble {
		b[i] = byte(i)<<4 | n
	}
	return b
}

func TestForwardGroupCompletionAppliesTwoFrameOffset(t *testing.T) {
	base := mtc.Timecode{Hours: 1, Minutes: 2, Seconds: 3, Frames: 10, Rate: mtc.Rate30}
	frames := quarterFrameBytes(base, mtc.Rate30)

	d := mtc.NewDecoder()
	var last mtc.Emission
	var gotEmission bool
	for _, raw := range frames {
		em, ok := d.FeedQuarterFrame(raw)
		if ok {
			last, gotEmission = em, true
		}
	}

	if !gotEmission {
		t.Fatal("expected an emission once the 8-piece buffer filled")
	}
	want := mtc.Timecode{Hours: 1, Minutes: 2, Seconds: 3, Frames: 12, Rate: mtc.Rate30}
	if last.Timecode != want {
		t.Fatalf("got %+v, want %+v", last.Timecode, want)
	}
	if last.Direction != mtc.DirectionForwards {
		t.Fatalf("got direction %v, want Forwards", last.Direction)
	}
	if last.Source != mtc.SourceQuarterFrame {
		t.Fatalf("got source %v, want SourceQuarterFrame", last.Source)
	}
	if !last.FrameChanged {
		t.Fatal("first emission should report FrameChanged")
	}
}

func TestQuarterFramePieceZeroRecaptureResetsSubframes(t *testing.T) {
	base := mtc.Timecode{Rate: mtc.Rate25}
	frames := quarterFrameBytes(base, mtc.Rate25)

	d := mtc.NewDecoder()
	for _, raw := range frames {
		d.FeedQuarterFrame(raw)
	}

	// Piece 0 of the next group restarts the capture at the same base
	// timecode, so the quarter-frame count since capture is back to zero
	// and no subframes are added.
	em, ok := d.FeedQuarterFrame(frames[pFramesLSB])
	if !ok {
		t.Fatal("expected an emission, buffer was already complete")
	}
	want := mtc.Timecode{Frames: 2, Subframes: 0, Rate: mtc.Rate25}
	if em.Timecode != want {
		t.Fatalf("got %+v, want %+v", em.Timecode, want)
	}
}

func TestBackwardSequenceAppliesNegativeOffset(t *testing.T) {
	base := mtc.Timecode{Seconds: 10, Frames: 5, Rate: mtc.Rate30}
	frames := quarterFrameBytes(base, mtc.Rate30)

	d := mtc.NewDecoder()
	var last mtc.Emission
	var gotEmission bool
	for i := 7; i >= 0; i-- {
		em, ok := d.FeedQuarterFrame(frames[i])
		if ok {
			last, gotEmission = em, true
		}
	}

	if !gotEmission {
		t.Fatal("expected emission once backward-fed buffer completed")
	}
	want := mtc.Timecode{Seconds: 10, Frames: 3, Rate: mtc.Rate30}
	if last.Timecode != want {
		t.Fatalf("got %+v, want %+v", last.Timecode, want)
	}
	if last.Direction != mtc.DirectionBackwards {
		t.Fatalf("got direction %v, want Backwards", last.Direction)
	}
}

func TestSequenceBreakDelaysNextEmission(t *testing.T) {
	d := mtc.NewDecoder()
	d.FeedQuarterFrame(byte(0)<<4 | 0x0)
	d.FeedQuarterFrame(byte(1)<<4 | 0x1)
	// Jumping from piece 1 to piece 5 is neither +1 nor -1 mod 8: the
	// in-progress buffer is discarded, so completing it now requires
	// pieces 6, 7, 0..4 in addition to this one.
	if _, ok := d.FeedQuarterFrame(byte(5)<<4 | 0x3); ok {
		t.Fatal("did not expect an emission right after a sequence break")
	}
	for _, piece := range []byte{6, 7, 0, 1, 2, 3, 4} {
		if _, ok := d.FeedQuarterFrame(piece << 4); ok && piece != 4 {
			t.Fatalf("unexpected emission before the post-break buffer refilled, at piece %d", piece)
		}
	}
}

func TestFullFrameSnapsImmediatelyWithoutQuarterFrames(t *testing.T) {
	d := mtc.NewDecoder()
	// hr byte: rate bits 01 (Rate25) in bits 6-5, hours=9 in bits 4-0.
	payload := []byte{0x29, 0x15, 0x3B, 0x07}
	em, ok := d.FeedFullFrame(payload)
	if !ok {
		t.Fatal("expected an emission from a full frame message")
	}
	want := mtc.Timecode{Hours: 9, Minutes: 21, Seconds: 59, Frames: 7, Rate: mtc.Rate25}
	if em.Timecode != want {
		t.Fatalf("got %+v, want %+v", em.Timecode, want)
	}
	if em.Source != mtc.SourceFullFrame {
		t.Fatalf("got source %v, want SourceFullFrame", em.Source)
	}
}

func TestFullFrameShortPayloadIsIgnored(t *testing.T) {
	d := mtc.NewDecoder()
	if _, ok := d.FeedFullFrame([]byte{0x01, 0x02}); ok {
		t.Fatal("expected no emission for a truncated full-frame payload")
	}
}

func TestCallbackOptionInvokedOnEmission(t *testing.T) {
	var got []mtc.Emission
	d := mtc.NewDecoder(mtc.WithCallback(func(em mtc.Emission) { got = append(got, em) }))
	for _, raw := range quarterFrameBytes(mtc.Timecode{Frames: 1, Rate: mtc.Rate24}, mtc.Rate24) {
		d.FeedQuarterFrame(raw)
	}
	if len(got) != 1 {
		t.Fatalf("got %d callback invocations, want 1", len(got))
	}
}

func TestResetRequiresFullBufferAgain(t *testing.T) {
	d := mtc.NewDecoder()
	for _, raw := range quarterFrameBytes(mtc.Timecode{Frames: 5, Rate: mtc.Rate30}, mtc.Rate30) {
		d.FeedQuarterFrame(raw)
	}
	d.Reset()
	// A single quarter frame after Reset should not be enough on its
	// own to re-emit, since the captured timecode was discarded too.
	if _, ok := d.FeedQuarterFrame(0x00); ok {
		t.Fatal("did not expect an emission immediately after Reset")
	}
}
