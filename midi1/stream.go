package midi1

import "github.com/PKsong/MIDIKit/event"

// DecodeStream decodes an entire byte slice at once. It returns every
// event produced and every error encountered along the way; a
// malformed byte does not stop decoding of the bytes that follow it,
// since the underlying Decoder resets its local state on error.
func DecodeStream(data []byte) ([]event.Event, []error) {
	d := NewDecoder()
	var events []event.Event
	var errs []error
	for _, b := range data {
		evs, err := d.Feed(b)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		events = append(events, evs...)
	}
	return events, errs
}
