package midi1

// Option configures a Decoder. Mirrors the functional-options idiom used
// throughout MIDIKit's constructors (see sdk/contracts for the library's
// own option surface).
type Option func(*Decoder)

// WithVelocityZeroAsNoteOff controls whether a NoteOn with velocity 0
// is normalised to NoteOff on decode. Default true.
func WithVelocityZeroAsNoteOff(enabled bool) Option {
	return func(d *Decoder) { d.velocityZeroAsNoteOff = enabled }
}

// WithRPNCombining controls whether RPN/NRPN CC transactions are folded
// into event.RPN/event.NRPN events in addition to the raw CC events.
// Default true.
func WithRPNCombining(enabled bool) Option {
	return func(d *Decoder) { d.combineRPN = enabled }
}

// WithSysExByteCap overrides the maximum number of bytes buffered for a
// single in-progress SysEx message before decoding fails with Malformed.
// Default 65536, matching the UMP reassembler's bound.
func WithSysExByteCap(n int) Option {
	return func(d *Decoder) { d.sysExByteCap = n }
}
