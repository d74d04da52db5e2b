// Package mtc implements the MIDI Time Code quarter-frame decoder:
// an 8-register state machine that reassembles a running timecode from
// TimecodeQuarterFrame events, plus full-frame SysEx snap handling. The
// decoder never errors: a frame it cannot make sense of is logged, if a
// logger was supplied, and otherwise silently dropped.
package mtc

import (
	"github.com/PKsong/MIDIKit/internal/diag"
	"github.com/PKsong/MIDIKit/sdk/contracts"
)

// FrameRate is the four rates MTC distinguishes via the quarter-frame
// piece-7 rate bits.
type FrameRate uint8

const (
	Rate24 FrameRate = iota
	Rate25
	Rate29_97DropFrame
	Rate30
)

// FPS returns the rate's nominal frames-per-second count (29.97 for the
// drop-frame rate, rounded down since Timecode.Frames is an integer).
func (r FrameRate) FPS() int {
	switch r {
	case Rate24:
		return 24
	case Rate25:
		return 25
	case Rate29_97DropFrame:
		return 29
	case Rate30:
		return 30
	}
	return 30
}

// Direction reports whether successive quarter frames are advancing, if
// that could be inferred from the piece-index sequence.
type Direction uint8

const (
	DirectionAmbiguous Direction = iota
	DirectionForwards
	DirectionBackwards
)

// Source distinguishes a timecode assembled from quarter frames from one
// snapped directly from a full-frame SysEx message.
type Source uint8

const (
	SourceQuarterFrame Source = iota
	SourceFullFrame
)

// Timecode is a fully resolved MTC timecode.
type Timecode struct {
	Hours     uint8
	Minutes   uint8
	Seconds   uint8
	Frames    uint8
	Subframes uint8 // 1/100 of a frame
	Rate      FrameRate
}

// Emission is what a Decoder's callback receives each time it has a new
// timecode to report.
type Emission struct {
	Timecode     Timecode
	Source       Source
	Direction    Direction
	FrameChanged bool
}

// Callback receives every Emission a Decoder produces.
type Callback func(Emission)

// the 8 quarter-frame pieces, indexed 0..7.
const (
	pieceFramesLSB = iota
	pieceFramesMSB
	pieceSecondsLSB
	pieceSecondsMSB
	pieceMinutesLSB
	pieceMinutesMSB
	pieceHoursLSB
	pieceRateAndHoursMSB
)

// Decoder reassembles MTC quarter frames into Timecode emissions.
type Decoder struct {
	registers [8]uint8
	received  [8]bool
	havePiece bool
	lastPiece int

	direction Direction

	haveCaptured         bool
	captured             Timecode
	captureDirection     Direction
	deltaQFsSinceCapture int

	haveEmitted bool
	lastEmitted Timecode

	log    contracts.Logger
	onEmit Callback
}

// NewDecoder constructs a Decoder with the given options applied.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{lastPiece: -1, log: diag.NopLogger{}}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// resetQFBuffer clears every register and received flag without
// touching the last-captured timecode, for a piece arriving out of the
// expected sequence.
func (d *Decoder) resetQFBuffer() {
	d.registers = [8]uint8{}
	d.received = [8]bool{}
	d.havePiece = false
	d.lastPiece = -1
	d.direction = DirectionAmbiguous
}

// resetTimecodeValues additionally drops the last-captured timecode and
// emission history, for a gap long enough that resuming from it would be
// misleading (callers decide when that is via Reset).
func (d *Decoder) resetTimecodeValues() {
	d.resetQFBuffer()
	d.haveCaptured = false
	d.captured = Timecode{}
	d.deltaQFsSinceCapture = 0
	d.haveEmitted = false
	d.lastEmitted = Timecode{}
}

// Reset discards all decoder state, as if newly constructed.
func (d *Decoder) Reset() {
	d.resetTimecodeValues()
	if d.log != nil {
		d.log.Debug("mtc: decoder reset")
	}
}

func (d *Decoder) bufferComplete() bool {
	for _, r := range d.received {
		if !r {
			return false
		}
	}
	return true
}
