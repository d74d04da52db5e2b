package contracts

import "github.com/PKsong/MIDIKit/event"

// ByteSink accepts raw wire bytes for transmission over some
// byte-oriented MIDI transport: a MIDI 1.0 serial/USB link, a pipe to a
// file, a test buffer. MIDIKit's codecs produce bytes (midi1.Encode,
// smf.Encode); writing them anywhere is the sink's job, not the
// library's — this package never binds to an OS MIDI I/O API.
type ByteSink interface {
	Write(p []byte) (n int, err error)
}

// EventSource produces a stream of already-decoded events: the
// consumption side of the same boundary, for a caller that wants events
// without driving a Decoder directly (e.g. example/'s CLI). Events
// closes the channel once the source is exhausted or Close is called.
type EventSource interface {
	Events() <-chan event.Event
	Close() error
}
