// Package hui implements the Mackie/Logic-compatible HUI control-surface
// protocol over MIDI 1.0 channel voice and SysEx: zone/port switch
// addressing, V-Pot rotation and LED-ring encode/decode, pitch-bend
// faders, LCD text SysEx, and a SurfaceModel that aggregates decoded
// messages into named state with change notifications.
package hui

import "github.com/PKsong/MIDIKit/values"

// Switch identifies one addressable control-surface button or LED by
// its wire (zone, port) coordinate.
type Switch struct {
	Zone values.U7
	Port values.U4
}

// Section groups named switches the way the HUI wire protocol groups
// its zones: by control-surface area rather than by zone number alone.
type Section int

const (
	SectionAssign Section = iota
	SectionAutoEnable
	SectionAutoMode
	SectionBankMove
	SectionControlRoom
	SectionCursor
	SectionEdit
	SectionFunctionKey
	SectionHotKey
	SectionNumPad
	SectionParamEdit
	SectionStatusAndGroup
	SectionTransport
	SectionWindow
	SectionChannelStrip
)

func (s Section) String() string {
	switch s {
	case SectionAssign:
		return "Assign"
	case SectionAutoEnable:
		return "AutoEnable"
	case SectionAutoMode:
		return "AutoMode"
	case SectionBankMove:
		return "BankMove"
	case SectionControlRoom:
		return "ControlRoom"
	case SectionCursor:
		return "Cursor"
	case SectionEdit:
		return "Edit"
	case SectionFunctionKey:
		return "FunctionKey"
	case SectionHotKey:
		return "HotKey"
	case SectionNumPad:
		return "NumPad"
	case SectionParamEdit:
		return "ParamEdit"
	case SectionStatusAndGroup:
		return "StatusAndGroup"
	case SectionTransport:
		return "Transport"
	case SectionWindow:
		return "Window"
	case SectionChannelStrip:
		return "ChannelStrip"
	}
	return "Unknown"
}

// SwitchName describes one named switch: its section, its human name,
// and (for channel-strip switches) which of the 8 mixer strips it
// belongs to.
type SwitchName struct {
	Section Section
	Name    string
	Strip   int // -1 for switches that aren't per-strip
}

// SwitchEvent is a decoded switch message: the addressed coordinate,
// its resolved name (the zero SwitchName, with Known false, if
// unknown), and the button state.
type SwitchEvent struct {
	Switch Switch
	Name   SwitchName
	Known  bool
	Down   bool
}

// LookupSwitch resolves a wire coordinate against the section tables.
// Unknown coordinates return Known=false rather than failing: a bad
// (zone, port) pair is tolerated, not rejected.
func LookupSwitch(sw Switch) (SwitchName, bool) {
	name, ok := switchTable[sw]
	return name, ok
}
