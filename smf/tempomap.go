package smf

// TempoMap records every tempo change in a track (in tick order) so a
// consumer can convert a tick position into elapsed wall-clock time
// without re-scanning the track itself: a tempo map is built by
// scanning tempo meta-events once, up front, and packaged as a
// reusable helper.
type TempoMap struct {
	points []tempoPoint
}

type tempoPoint struct {
	tick   uint32
	micros uint32
}

// NewTempoMap scans a track's Tempo meta-events in order, defaulting to
// 120 BPM (500000 microseconds per quarter note, the MIDI default) before
// the first one.
func NewTempoMap(track []TrackEvent) *TempoMap {
	tm := &TempoMap{points: []tempoPoint{{tick: 0, micros: 500000}}}
	var tick uint32
	for _, ev := range track {
		tick += ev.DeltaTime()
		if t, ok := ev.(Tempo); ok {
			tm.points = append(tm.points, tempoPoint{tick: tick, micros: t.MicrosecondsPerQuarter})
		}
	}
	return tm
}

// TicksToMicros converts an absolute tick position into elapsed
// microseconds since the start of the track, honouring every tempo
// change recorded before that tick.
func (tm *TempoMap) TicksToMicros(tick uint32, ticksPerQuarter uint16) uint64 {
	var elapsed uint64
	last := tm.points[0]
	for _, p := range tm.points[1:] {
		if p.tick >= tick {
			break
		}
		elapsed += microsBetween(last.tick, p.tick, last.micros, ticksPerQuarter)
		last = p
	}
	elapsed += microsBetween(last.tick, tick, last.micros, ticksPerQuarter)
	return elapsed
}

func microsBetween(fromTick, toTick, micros uint32, ticksPerQuarter uint16) uint64 {
	if toTick <= fromTick || ticksPerQuarter == 0 {
		return 0
	}
	delta := uint64(toTick - fromTick)
	return delta * uint64(micros) / uint64(ticksPerQuarter)
}
