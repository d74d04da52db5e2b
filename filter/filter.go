// Package filter implements order-preserving predicate combinators over
// event.Event streams: Only/Keep/Drop composed with By* selectors. A
// Predicate never reorders, merges, or splits events — Apply and Seq,
// operating on a slice or an
// iter.Seq[event.Event], visit each input event exactly once and either
// pass it through unchanged or drop it. ByCC14Coalesced is the exception:
// it adds a synthesized 14-bit event after each completed MSB/LSB pair.
package filter

import (
	"iter"

	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/values"
)

// Predicate reports whether an event should be kept.
type Predicate func(event.Event) bool

// All matches every event.
func All() Predicate {
	return func(event.Event) bool { return true }
}

// ByType matches events whose Kind is one of kinds.
func ByType(kinds ...event.Kind) Predicate {
	set := make(map[event.Kind]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	return func(e event.Event) bool { return set[e.Kind()] }
}

// ByChannel matches channel-voice events on one of channels. Events with
// no channel (system, SysEx, utility) never match.
func ByChannel(channels ...values.U4) Predicate {
	set := make(map[values.U4]bool, len(channels))
	for _, c := range channels {
		set[c] = true
	}
	return func(e event.Event) bool {
		ch, ok := e.(event.ChannelEvent)
		return ok && set[ch.Channel()]
	}
}

// ByCCNumber matches CC events whose controller number is one of numbers.
func ByCCNumber(numbers ...event.Controller) Predicate {
	set := make(map[event.Controller]bool, len(numbers))
	for _, n := range numbers {
		set[n] = true
	}
	return func(e event.Event) bool {
		cc, ok := e.(event.CC)
		return ok && set[cc.Controller]
	}
}

// NoteRange is an inclusive [Low, High] note-number window.
type NoteRange struct {
	Low, High values.U7
}

func (r NoteRange) contains(n values.U7) bool { return n >= r.Low && n <= r.High }

// ByNoteRange matches NoteOn/NoteOff/NotePressure events whose note falls
// in any of ranges.
func ByNoteRange(ranges ...NoteRange) Predicate {
	return func(e event.Event) bool {
		var note values.U7
		switch ev := e.(type) {
		case event.NoteOn:
			note = ev.Note
		case event.NoteOff:
			note = ev.Note
		case event.NotePressure:
			note = ev.Note
		default:
			return false
		}
		for _, r := range ranges {
			if r.contains(note) {
				return true
			}
		}
		return false
	}
}

// ByGroup matches events whose UMP group is one of groups.
func ByGroup(groups ...values.U4) Predicate {
	set := make(map[values.U4]bool, len(groups))
	for _, g := range groups {
		set[g] = true
	}
	return func(e event.Event) bool { return set[e.Group()] }
}

// Only keeps events matching p, dropping everything else. It is the
// identity on Predicate; the name exists so call sites read naturally:
// filter.Only(filter.ByType(...)).
func Only(p Predicate) Predicate { return p }

// Keep is a synonym for Only.
func Keep(p Predicate) Predicate { return p }

// Drop keeps every event p does NOT match.
func Drop(p Predicate) Predicate {
	return func(e event.Event) bool { return !p(e) }
}

// Apply filters a slice, preserving order, without mutating the input.
func Apply(p Predicate, events []event.Event) []event.Event {
	out := make([]event.Event, 0, len(events))
	for _, e := range events {
		if p(e) {
			out = append(out, e)
		}
	}
	return out
}

// Seq filters an iter.Seq[event.Event] lazily, for streaming use.
func Seq(p Predicate, src iter.Seq[event.Event]) iter.Seq[event.Event] {
	return func(yield func(event.Event) bool) {
		for e := range src {
			if p(e) {
				if !yield(e) {
					return
				}
			}
		}
	}
}
