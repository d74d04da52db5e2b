package filter_test

import (
	"testing"

	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/filter"
	"github.com/PKsong/MIDIKit/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []event.Event {
	return []event.Event{
		event.NoteOn{ChannelValue: values.NewU4(0), Note: values.NewU7(60), Velocity: event.V7(values.NewU7(100))},
		event.CC{ChannelValue: values.NewU4(0), Controller: event.ControllerSustainPedal, Value: event.V7(values.NewU7(127))},
		event.NoteOn{ChannelValue: values.NewU4(1), Note: values.NewU7(72), Velocity: event.V7(values.NewU7(80))},
		event.PitchBend{ChannelValue: values.NewU4(0), Value: event.WideValue14(values.NewU14(8192))},
	}
}

// Property 9: filter(only(all)) = identity, filter(drop(nothing)) = identity.
func TestOnlyAllAndDropNoneAreIdentity(t *testing.T) {
	events := sample()
	assert.Equal(t, events, filter.Apply(filter.Only(filter.All()), events))

	nothing := filter.Predicate(func(event.Event) bool { return false })
	assert.Equal(t, events, filter.Apply(filter.Drop(nothing), events))
}

func TestByTypeKeepsOnlyMatchingKinds(t *testing.T) {
	got := filter.Apply(filter.Only(filter.ByType(event.KindNoteOn)), sample())
	require.Len(t, got, 2)
	for _, e := range got {
		assert.Equal(t, event.KindNoteOn, e.Kind())
	}
}

func TestByChannelOrderPreserving(t *testing.T) {
	got := filter.Apply(filter.Only(filter.ByChannel(values.NewU4(0))), sample())
	require.Len(t, got, 3)
	assert.Equal(t, event.KindNoteOn, got[0].Kind())
	assert.Equal(t, event.KindCC, got[1].Kind())
	assert.Equal(t, event.KindPitchBend, got[2].Kind())
}

func TestDropByCCNumberRemovesOnlyThatController(t *testing.T) {
	got := filter.Apply(filter.Drop(filter.ByCCNumber(event.ControllerSustainPedal)), sample())
	require.Len(t, got, 3)
	for _, e := range got {
		assert.NotEqual(t, event.KindCC, e.Kind())
	}
}

func TestByNoteRange(t *testing.T) {
	got := filter.Apply(filter.Only(filter.ByNoteRange(filter.NoteRange{Low: values.NewU7(0), High: values.NewU7(63)})), sample())
	require.Len(t, got, 1)
	on, ok := got[0].(event.NoteOn)
	require.True(t, ok)
	assert.Equal(t, values.NewU7(60), on.Note)
}

func TestByGroup(t *testing.T) {
	events := []event.Event{
		event.NoteOn{GroupValue: values.NewU4(0), Note: values.NewU7(1), Velocity: event.V7(values.NewU7(1))},
		event.NoteOn{GroupValue: values.NewU4(3), Note: values.NewU7(2), Velocity: event.V7(values.NewU7(1))},
	}
	got := filter.Apply(filter.Only(filter.ByGroup(values.NewU4(3))), events)
	require.Len(t, got, 1)
	assert.Equal(t, values.NewU4(3), got[0].Group())
}

func TestSeqFiltersLazily(t *testing.T) {
	src := func(yield func(event.Event) bool) {
		for _, e := range sample() {
			if !yield(e) {
				return
			}
		}
	}
	var got []event.Event
	for e := range filter.Seq(filter.Only(filter.ByType(event.KindNoteOn)), src) {
		got = append(got, e)
	}
	require.Len(t, got, 2)
}

// CC1=0x40 then CC33=0x00 on the same channel combine to CC14 value
// 0x2000, alongside both raw CC events.
func TestS6CC14Combiner(t *testing.T) {
	events := []event.Event{
		event.CC{ChannelValue: values.NewU4(0), Controller: event.ControllerModulationWheelMSB, Value: event.V7(values.NewU7(0x40))},
		event.CC{ChannelValue: values.NewU4(0), Controller: event.ControllerModulationWheelLSB, Value: event.V7(values.NewU7(0x00))},
	}
	got := filter.ByCC14Coalesced(events)
	require.Len(t, got, 3)
	assert.Equal(t, event.KindCC, got[0].Kind())
	assert.Equal(t, event.KindCC, got[1].Kind())
	cc14, ok := got[2].(filter.CC14)
	require.True(t, ok)
	assert.Equal(t, values.NewU14(0x2000), cc14.Value)
}

func TestCC14CombinerLeavesUnpairedCCAlone(t *testing.T) {
	events := []event.Event{
		event.CC{ChannelValue: values.NewU4(0), Controller: event.ControllerModulationWheelLSB, Value: event.V7(values.NewU7(0x10))},
	}
	got := filter.ByCC14Coalesced(events)
	require.Len(t, got, 1)
	assert.Equal(t, event.KindCC, got[0].Kind())
}
