// Command example is a minimal decode-and-print demonstration of the
// sdk/contracts boundary: it reads raw MIDI 1.0 bytes from stdin, feeds
// them through midi1.Decoder, and logs each decoded event. It exists to
// show how a transport (a serial port, a file, a test harness) sits on
// the ByteSink/EventSource side of the library without MIDIKit itself
// binding to any OS MIDI API.
package main

import (
	"io"
	"os"

	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/filter"
	"github.com/PKsong/MIDIKit/internal/diag"
	"github.com/PKsong/MIDIKit/midi1"
	"github.com/PKsong/MIDIKit/sdk/contracts"
)

// stdinSource adapts a byte stream into a contracts.EventSource by
// running a midi1.Decoder over it on its own goroutine. It is the
// example's only OS-facing piece; everything downstream of Events()
// talks to the library purely through decoded event.Event values.
type stdinSource struct {
	events chan event.Event
	closed chan struct{}
}

func newStdinSource(r io.Reader, log contracts.Logger, pred filter.Predicate) *stdinSource {
	s := &stdinSource{
		events: make(chan event.Event, 64),
		closed: make(chan struct{}),
	}
	go s.run(r, log, pred)
	return s
}

func (s *stdinSource) run(r io.Reader, log contracts.Logger, pred filter.Predicate) {
	defer close(s.events)

	dec := midi1.NewDecoder()
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		for i := 0; i < n; i++ {
			evs, decErr := dec.Feed(buf[i])
			if decErr != nil {
				log.Warn("midi1 decode error", log.Field().Error("err", decErr))
				continue
			}
			for _, ev := range evs {
				if pred != nil && !pred(ev) {
					continue
				}
				select {
				case s.events <- ev:
				case <-s.closed:
					return
				}
			}
		}
		if err != nil {
			return
		}
		select {
		case <-s.closed:
			return
		default:
		}
	}
}

func (s *stdinSource) Events() <-chan event.Event { return s.events }

func (s *stdinSource) Close() error {
	close(s.closed)
	return nil
}

var _ contracts.EventSource = (*stdinSource)(nil)
var _ contracts.ByteSink = (*os.File)(nil)

func main() {
	log := diag.NewZapLogger()

	opts := contracts.ClientOptions{
		Logger:      log,
		LogLevel:    contracts.InfoLevel,
		EventFilter: filter.All(),
	}
	for _, opt := range []contracts.Option{
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.InfoLevel),
	} {
		opt(&opts)
	}

	src := newStdinSource(os.Stdin, opts.Logger, opts.EventFilter)
	defer src.Close()

	for ev := range src.Events() {
		logEvent(opts.Logger, ev)
	}
}

func logEvent(log contracts.Logger, ev event.Event) {
	switch e := ev.(type) {
	case event.NoteOn:
		log.Info("NoteOn",
			log.Field().Int("channel", int(e.ChannelValue)),
			log.Field().String("note", event.NoteName(e.Note)),
			log.Field().Int("velocity", int(e.Velocity.AsU7())),
		)
	case event.NoteOff:
		log.Info("NoteOff",
			log.Field().Int("channel", int(e.ChannelValue)),
			log.Field().String("note", event.NoteName(e.Note)),
			log.Field().Int("velocity", int(e.Velocity.AsU7())),
		)
	case event.CC:
		log.Info("CC",
			log.Field().Int("channel", int(e.ChannelValue)),
			log.Field().Int("controller", int(e.Controller)),
			log.Field().Int("value", int(e.Value.AsU7())),
		)
	case event.PitchBend:
		log.Info("PitchBend",
			log.Field().Int("channel", int(e.ChannelValue)),
			log.Field().Int("value", int(e.Value.AsU14())),
		)
	default:
		log.Info("Event", log.Field().Int("kind", int(e.Kind())))
	}
}
