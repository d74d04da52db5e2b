package mtc

import "github.com/PKsong/MIDIKit/internal/bitpack"

const subframesPerFrame = 100
const subframesPerQuarterFrame = subframesPerFrame / 4

// FeedQuarterFrame processes one TimecodeQuarterFrame data byte (the
// 0nnn dddd form described by event.TimecodeQuarterFrame.DataByte). It
// returns false while the 8-piece buffer is not complete (before it first
// fills, or after a sequence break or Reset cleared it); once complete,
// every piece produces an emission.
func (d *Decoder) FeedQuarterFrame(raw uint8) (Emission, bool) {
	piece, nibble := bitpack.UnpackQuarterFrame(raw)
	if piece > 7 {
		d.warnMalformed("quarter-frame piece index out of range", piece)
		return Emission{}, false
	}

	d.updateDirection(int(piece))
	d.registers[piece] = nibble
	d.received[piece] = true
	d.lastPiece = int(piece)
	d.havePiece = true

	if !d.bufferComplete() {
		return Emission{}, false
	}

	if piece == pieceFramesLSB && d.haveCaptured {
		// A new group is starting: snapshot the timecode the buffer now
		// holds and begin counting quarter frames from zero again.
		d.captured = d.decodeRegisters()
		d.captureDirection = d.direction
		d.deltaQFsSinceCapture = 0
	} else if !d.haveCaptured {
		d.captured = d.decodeRegisters()
		d.captureDirection = d.direction
		d.deltaQFsSinceCapture = 0
		d.haveCaptured = true
	} else {
		d.deltaQFsSinceCapture++
	}

	tc := d.interpolate()
	changed := !d.haveEmitted || frameFieldsDiffer(tc, d.lastEmitted)
	d.lastEmitted = tc
	d.haveEmitted = true

	em := Emission{
		Timecode:     tc,
		Source:       SourceQuarterFrame,
		Direction:    d.captureDirection,
		FrameChanged: changed,
	}
	if d.onEmit != nil {
		d.onEmit(em)
	}
	return em, true
}

// updateDirection infers Forwards/Backwards from consecutive piece
// indices, mod 8; any other jump makes the run Ambiguous and restarts
// the buffer, since the pieces collected so far may span two unrelated
// transport positions.
func (d *Decoder) updateDirection(piece int) {
	if !d.havePiece {
		return
	}
	switch {
	case piece == (d.lastPiece+1)%8:
		d.direction = DirectionForwards
	case piece == (d.lastPiece+8-1)%8:
		d.direction = DirectionBackwards
	default:
		d.log.Debug("mtc: quarter-frame sequence break, resetting buffer")
		d.resetQFBuffer()
		d.direction = DirectionAmbiguous
	}
}

func (d *Decoder) decodeRegisters() Timecode {
	r := d.registers
	frames := (r[pieceFramesMSB]&0x1)<<4 | (r[pieceFramesLSB] & 0xF)
	seconds := (r[pieceSecondsMSB]&0x3)<<4 | (r[pieceSecondsLSB] & 0xF)
	minutes := (r[pieceMinutesMSB]&0x3)<<4 | (r[pieceMinutesLSB] & 0xF)
	hours := (r[pieceRateAndHoursMSB]&0x1)<<4 | (r[pieceHoursLSB] & 0xF)
	rate := FrameRate((r[pieceRateAndHoursMSB] >> 1) & 0x3)
	return Timecode{Hours: hours, Minutes: minutes, Seconds: seconds, Frames: frames, Rate: rate}
}

// interpolate derives the current emission from the last captured whole
// timecode, the quarter frames received since, and the ±2-frame offset
// convention: an assembled group represents the time two frames before
// (running forwards) or after (running backwards) its first piece.
func (d *Decoder) interpolate() Timecode {
	baseOffsetFrames := 0
	switch d.captureDirection {
	case DirectionForwards:
		baseOffsetFrames = 2
	case DirectionBackwards:
		baseOffsetFrames = -2
	}

	totalSubframes := d.deltaQFsSinceCapture * subframesPerQuarterFrame
	frameAdvance := totalSubframes / subframesPerFrame
	subframe := totalSubframes % subframesPerFrame

	tc := addFrames(d.captured, baseOffsetFrames+frameAdvance)
	tc.Subframes = uint8(subframe)
	return tc
}

// addFrames advances (or rewinds, for a negative delta) a timecode by a
// whole number of frames, carrying into seconds/minutes/hours at the
// rate's frames-per-second boundary. Subframes are left as-is; callers
// set them separately.
func addFrames(tc Timecode, delta int) Timecode {
	fps := tc.Rate.FPS()
	total := int(tc.Hours)*3600*fps + int(tc.Minutes)*60*fps + int(tc.Seconds)*fps + int(tc.Frames) + delta
	for total < 0 {
		total += 24 * 3600 * fps
	}
	total %= 24 * 3600 * fps

	frames := total % fps
	totalSeconds := total / fps
	seconds := totalSeconds % 60
	totalMinutes := totalSeconds / 60
	minutes := totalMinutes % 60
	hours := totalMinutes / 60

	return Timecode{
		Hours:   uint8(hours),
		Minutes: uint8(minutes),
		Seconds: uint8(seconds),
		Frames:  uint8(frames),
		Rate:    tc.Rate,
	}
}

func frameFieldsDiffer(a, b Timecode) bool {
	return a.Hours != b.Hours || a.Minutes != b.Minutes || a.Seconds != b.Seconds || a.Frames != b.Frames
}

func (d *Decoder) warnMalformed(why string, piece uint8) {
	d.log.Warn("mtc: malformed quarter-frame, dropping", d.log.Field().Uint8("piece", piece), d.log.Field().String("why", why))
}
