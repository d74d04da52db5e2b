package hui

import "github.com/PKsong/MIDIKit/values"

func sw(zone, port uint8) Switch {
	return Switch{Zone: values.NewU7(zone), Port: values.NewU4(port)}
}

// switchTable is the (zone, port) -> name lookup built by section. It
// follows HUI's convention of grouping related controls under one zone
// byte with a port nibble distinguishing members of the group.
var switchTable = buildSwitchTable()

func buildSwitchTable() map[Switch]SwitchName {
	t := make(map[Switch]SwitchName)

	add := func(zone, port uint8, section Section, name string, strip int) {
		t[sw(zone, port)] = SwitchName{Section: section, Name: name, Strip: strip}
	}

	// Assign (zone 0x00): the five assign-section function buttons above
	// the channel strips plus the global "Default" button.
	assign := []string{"Output", "Input", "Pan", "SendMute", "Send", "Default"}
	for i, name := range assign {
		add(0x00, uint8(i), SectionAssign, name, -1)
	}

	// AutoEnable (zone 0x01): per-automation-mode enable toggles.
	autoEnable := []string{"Plugin", "Pan", "Fader", "SendMute", "Send", "Mute"}
	for i, name := range autoEnable {
		add(0x01, uint8(i), SectionAutoEnable, name, -1)
	}

	// AutoMode (zone 0x02): the global automation mode radio group.
	autoMode := []string{"Trim", "Latch", "Read", "Off", "Write", "Touch"}
	for i, name := range autoMode {
		add(0x02, uint8(i), SectionAutoMode, name, -1)
	}

	// BankMove (zone 0x03): channel bank and fader-bank navigation.
	bankMove := []string{"ChannelLeft", "BankLeft", "ChannelRight", "BankRight"}
	for i, name := range bankMove {
		add(0x03, uint8(i), SectionBankMove, name, -1)
	}

	// ControlRoom (zone 0x04): monitor path switching.
	controlRoom := []string{"Mono", "Dim", "MuteTalkback", "Talkback"}
	for i, name := range controlRoom {
		add(0x04, uint8(i), SectionControlRoom, name, -1)
	}

	// Cursor (zone 0x05): the arrow-key cluster plus enter/scrub/zoom.
	cursor := []string{"Up", "Down", "Left", "Right", "Enter", "Scrub", "Zoom"}
	for i, name := range cursor {
		add(0x05, uint8(i), SectionCursor, name, -1)
	}

	// Edit (zone 0x06): cut/copy/paste/undo cluster.
	edit := []string{"Cut", "Copy", "Paste", "Undo", "Delete"}
	for i, name := range edit {
		add(0x06, uint8(i), SectionEdit, name, -1)
	}

	// FunctionKey (zone 0x07): F1..F8.
	for i := 0; i < 8; i++ {
		add(0x07, uint8(i), SectionFunctionKey, "F"+string(rune('1'+i)), -1)
	}

	// HotKey (zone 0x08): modifier keys (Ctrl/Shift/Alt/...).
	hotKey := []string{"Ctrl", "Shift", "Alt", "Option", "CmdStart", "Relay"}
	for i, name := range hotKey {
		add(0x08, uint8(i), SectionHotKey, name, -1)
	}

	// NumPad (zone 0x09): transport numeric keypad.
	numPad := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "Clr", "Enter"}
	for i, name := range numPad {
		add(0x09, uint8(i%16), SectionNumPad, name, -1)
	}

	// ParamEdit (zone 0x0A): the assign-panel parameter-edit cluster
	// used together with V-Pot to dial in plugin/EQ parameters.
	paramEdit := []string{"Insert", "Assign", "Select", "Compare", "Bypass"}
	for i, name := range paramEdit {
		add(0x0A, uint8(i), SectionParamEdit, name, -1)
	}

	// StatusAndGroup (zone 0x0B): global status and group toggles.
	statusGroup := []string{"AutoGlide", "Group", "Shift", "ClickDigital", "Relay"}
	for i, name := range statusGroup {
		add(0x0B, uint8(i), SectionStatusAndGroup, name, -1)
	}

	// Transport (zone 0x0C): tape-style transport.
	transport := []string{"Rewind", "FastForward", "Stop", "Play", "Record"}
	for i, name := range transport {
		add(0x0C, uint8(i), SectionTransport, name, -1)
	}

	// Window (zone 0x0D): window/view switching.
	window := []string{"Mix", "Edit", "Transport", "Memory", "Status", "Alt"}
	for i, name := range window {
		add(0x0D, uint8(i), SectionWindow, name, -1)
	}

	// ChannelStrip (zones 0x0E..0x15, one per strip 0..7): the
	// per-channel Select/Mute/Solo/RecordReady/VSelect/Insert buttons.
	stripSwitches := []string{"Select", "Mute", "Solo", "RecordReady", "VSelect", "Insert"}
	for strip := 0; strip < 8; strip++ {
		zone := uint8(0x0E + strip)
		for i, name := range stripSwitches {
			add(zone, uint8(i), SectionChannelStrip, name, strip)
		}
	}

	return t
}
