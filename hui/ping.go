package hui

import (
	"time"

	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/values"
)

// PingInterval is how often the host must send a ping while connected.
const PingInterval = 1 * time.Second

// AbsenceTimeout is how long the host waits for a ping response before
// marking the surface absent.
const AbsenceTimeout = 3 * time.Second

// pingNote is the note number HUI's keep-alive ping rides on; both
// directions use the same note, distinguished only by which side sent
// it.
const pingNote = 0

// EncodePing builds the NoteOn a host (or, on connect, a surface)
// sends as a keep-alive.
func EncodePing(group values.U4, channel values.U4) event.NoteOn {
	return event.NoteOn{
		GroupValue:   group,
		ChannelValue: channel,
		Note:         values.NewU7(pingNote),
		Velocity:     event.V7(values.NewU7(0x7F)),
	}
}

// IsPing reports whether e is a HUI ping message.
func IsPing(e event.Event) bool {
	n, ok := e.(event.NoteOn)
	return ok && n.Note == pingNote
}

// PingState is the liveness state PingMonitor reports.
type PingState int

const (
	PingUnknown PingState = iota
	PingAlive
	PingAbsent
)

// PingMonitor tracks the most recent ping and reports liveness against
// AbsenceTimeout. It takes the current time from its caller rather
// than reading the clock itself, keeping it a pure, deterministically
// testable component like the rest of the codec layer.
type PingMonitor struct {
	lastSeen time.Time
	haveSeen bool
}

// NewPingMonitor returns a monitor that hasn't seen a ping yet.
func NewPingMonitor() *PingMonitor { return &PingMonitor{} }

// Received records a ping observed at now.
func (m *PingMonitor) Received(now time.Time) {
	m.lastSeen = now
	m.haveSeen = true
}

// State reports liveness as of now: PingUnknown before any ping has
// ever arrived, PingAbsent once AbsenceTimeout has elapsed since the
// last one, PingAlive otherwise.
func (m *PingMonitor) State(now time.Time) PingState {
	if !m.haveSeen {
		return PingUnknown
	}
	if now.Sub(m.lastSeen) > AbsenceTimeout {
		return PingAbsent
	}
	return PingAlive
}
