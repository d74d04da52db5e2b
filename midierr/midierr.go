// Package midierr defines the three error kinds shared by every MIDIKit
// codec: Malformed, Unsupported, and OutOfRange. Codecs never log (the
// caller decides what to do with a returned error); these types exist so
// callers can distinguish "bad bytes" from "bad value" from "valid bytes,
// unsupported configuration" with errors.As instead of string matching.
package midierr

import "fmt"

// Malformed reports that input bytes or words violate the wire format:
// bad magic, truncated chunk, an over-long VLQ, and similar structural
// failures. Where is a short description of the decoding stage ("smf.MThd",
// "ump.word[2]", ...); Offset is the byte or word index the decoder had
// reached, for diagnostics.
type Malformed struct {
	Where  string
	Why    string
	Offset int
}

func (e *Malformed) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("malformed %s at offset %d: %s", e.Where, e.Offset, e.Why)
	}
	return fmt.Sprintf("malformed %s: %s", e.Where, e.Why)
}

// NewMalformed builds a Malformed with a known offset.
func NewMalformed(where string, offset int, why string) *Malformed {
	return &Malformed{Where: where, Why: why, Offset: offset}
}

// NewMalformedf builds a Malformed with a known offset and formatted reason.
func NewMalformedf(where string, offset int, format string, args ...interface{}) *Malformed {
	return &Malformed{Where: where, Why: fmt.Sprintf(format, args...), Offset: offset}
}

// Unsupported reports well-formed input that falls outside the spec level
// the decoder was configured for, e.g. a UMP message type reserved for
// flex data when flex-data support is disabled.
type Unsupported struct {
	What string
}

func (e *Unsupported) Error() string {
	return fmt.Sprintf("unsupported: %s", e.What)
}

// NewUnsupported builds an Unsupported error.
func NewUnsupported(what string) *Unsupported {
	return &Unsupported{What: what}
}

// OutOfRange reports that a numeric constructor rejected a value outside
// its declared bit width.
type OutOfRange struct {
	Field string
	Value int64
	Bound int64
}

func (e *OutOfRange) Error() string {
	return fmt.Sprintf("%s value %d out of range [0, %d]", e.Field, e.Value, e.Bound)
}

// NewOutOfRange builds an OutOfRange error.
func NewOutOfRange(field string, value, bound int64) *OutOfRange {
	return &OutOfRange{Field: field, Value: value, Bound: bound}
}
