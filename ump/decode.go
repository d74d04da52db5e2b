package ump

import (
	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/midierr"
)

// Decoder decodes a sequence of UMP words into events. It owns the
// SysEx7/SysEx8 reassembly state, so the same Decoder should be reused
// across calls to Decode for a single logical stream.
type Decoder struct {
	sysex7        *reassembler
	sysex8        *reassembler
	allowFlexData bool
	allowStream   bool
}

// NewDecoder constructs a Decoder with the given options applied over the
// defaults: 64KiB SysEx byte cap, flex-data and stream messages passed
// through as event.Unrecognized.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		sysex7:        newReassembler(defaultByteCap),
		sysex8:        newReassembler(defaultByteCap),
		allowFlexData: true,
		allowStream:   true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode consumes every word in the slice, never peeking beyond the word
// count its message type declares, and returns every event produced plus
// every error encountered. It is the package-level equivalent of
// feeding every word through a fresh Decoder.
func Decode(words []uint32) ([]event.Event, []error) {
	return NewDecoder().Decode(words)
}

// Decode is the Decoder method form, preserving reassembly state across
// calls.
func (d *Decoder) Decode(words []uint32) ([]event.Event, []error) {
	var events []event.Event
	var errs []error

	i := 0
	for i < len(words) {
		mt := messageType(words[i])
		wc, err := WordCount(mt)
		if err != nil {
			errs = append(errs, err)
			i++
			continue
		}
		if i+wc > len(words) {
			errs = append(errs, midierr.NewMalformedf("ump.Decode", i, "truncated message: need %d words, have %d", wc, len(words)-i))
			break
		}
		chunk := words[i : i+wc]
		i += wc

		ev, err := d.decodeOne(mt, chunk)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ev != nil {
			events = append(events, ev)
		}
	}
	return events, errs
}

func (d *Decoder) decodeOne(mt MessageType, words []uint32) (event.Event, error) {
	grp := group(words[0])
	switch mt {
	case MTUtility:
		return decodeUtility(grp, words[0])
	case MTSystem:
		return decodeSystem(grp, words[0])
	case MTMIDI1ChanVoice:
		return decodeMIDI1ChanVoice(grp, words[0])
	case MTSysEx7:
		return d.decodeSysEx7(grp, words)
	case MTMIDI2ChanVoice:
		return decodeMIDI2ChanVoice(grp, words)
	case MTSysEx8:
		return d.decodeSysEx8(grp, words)
	case MTFlexData:
		if !d.allowFlexData {
			return nil, midierr.NewUnsupported("UMP flex data (MT 0xD) disabled")
		}
		return passthrough(grp, mt, words), nil
	case MTStream:
		if !d.allowStream {
			return nil, midierr.NewUnsupported("UMP stream messages (MT 0xF) disabled")
		}
		return passthrough(grp, mt, words), nil
	}
	return nil, midierr.NewUnsupported("UMP message type")
}

func passthrough(grp uint8, mt MessageType, words []uint32) event.Event {
	return event.Unrecognized{
		GroupValue:  u4(grp),
		MessageType: uint8(mt),
		Words:       append([]uint32(nil), words...),
	}
}
