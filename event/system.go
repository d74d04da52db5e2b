package event

import "github.com/PKsong/MIDIKit/values"

// TimecodeQuarterFrame carries one eighth of an MTC timecode; see the mtc
// package for the decoder state machine that reassembles these.
type TimecodeQuarterFrame struct {
	GroupValue values.U4
	DataByte   values.U7
}

func (e TimecodeQuarterFrame) Kind() Kind       { return KindTimecodeQuarterFrame }
func (e TimecodeQuarterFrame) Group() values.U4 { return e.GroupValue }

// SongPositionPointer reports the current position, in MIDI beats
// (sixteenth notes), from the start of the song.
type SongPositionPointer struct {
	GroupValue values.U4
	Beat       values.U14
}

func (e SongPositionPointer) Kind() Kind       { return KindSongPositionPointer }
func (e SongPositionPointer) Group() values.U4 { return e.GroupValue }

// SongSelect selects one of 128 songs or sequences.
type SongSelect struct {
	GroupValue values.U4
	Number     values.U7
}

func (e SongSelect) Kind() Kind       { return KindSongSelect }
func (e SongSelect) Group() values.U4 { return e.GroupValue }

// TuneRequest asks analog-oscillator instruments to tune themselves.
type TuneRequest struct {
	GroupValue values.U4
}

func (e TuneRequest) Kind() Kind       { return KindTuneRequest }
func (e TuneRequest) Group() values.U4 { return e.GroupValue }

// TimingClock is the system real-time clock tick, 24 per quarter note.
type TimingClock struct{ GroupValue values.U4 }

func (e TimingClock) Kind() Kind       { return KindTimingClock }
func (e TimingClock) Group() values.U4 { return e.GroupValue }

// Start begins playback of the current sequence from its start.
type Start struct{ GroupValue values.U4 }

func (e Start) Kind() Kind       { return KindStart }
func (e Start) Group() values.U4 { return e.GroupValue }

// Continue resumes playback from the point it was stopped.
type Continue struct{ GroupValue values.U4 }

func (e Continue) Kind() Kind       { return KindContinue }
func (e Continue) Group() values.U4 { return e.GroupValue }

// Stop halts playback.
type Stop struct{ GroupValue values.U4 }

func (e Stop) Kind() Kind       { return KindStop }
func (e Stop) Group() values.U4 { return e.GroupValue }

// ActiveSensing signals link liveness; absence for ~300ms indicates a
// disconnection.
type ActiveSensing struct{ GroupValue values.U4 }

func (e ActiveSensing) Kind() Kind       { return KindActiveSensing }
func (e ActiveSensing) Group() values.U4 { return e.GroupValue }

// SystemReset asks every receiver to return to its power-up state.
type SystemReset struct{ GroupValue values.U4 }

func (e SystemReset) Kind() Kind       { return KindSystemReset }
func (e SystemReset) Group() values.U4 { return e.GroupValue }
