package mtc

import "github.com/PKsong/MIDIKit/sdk/contracts"

// Option configures a Decoder, matching the functional-options pattern
// used by midi1.Decoder and ump.Decoder.
type Option func(*Decoder)

// WithLogger installs a diagnostic logger. The decoder never errors;
// the logger only receives Debug/Warn reports of dropped or malformed
// input, so a caller uninterested in diagnostics can omit this.
func WithLogger(l contracts.Logger) Option {
	return func(d *Decoder) {
		if l != nil {
			d.log = l
		}
	}
}

// WithCallback installs the function invoked for every Emission.
// FeedQuarterFrame and FeedFullFrame also return the emission directly,
// so a caller may use either style or both.
func WithCallback(cb Callback) Option {
	return func(d *Decoder) { d.onEmit = cb }
}
