package hui

import (
	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/midierr"
	"github.com/PKsong/MIDIKit/values"
)

// mackieManufacturer is the 3-byte extended manufacturer ID HUI SysEx
// messages are framed under.
var mackieManufacturer = mustManufacturer()

func mustManufacturer() event.ManufacturerID {
	id, err := event.NewManufacturerID3Byte(0x00, 0x66)
	if err != nil {
		panic(err)
	}
	return id
}

// LCDTarget identifies which display a HUI LCD SysEx message addresses.
type LCDTarget uint8

const (
	LCDTimeDisplay LCDTarget = iota
	LCDChannelStrip4Char
	LCDLarge2x40
	LCDSelectAssign
)

// LCDUpdate is a decoded LCD text write: the target display, the byte
// offset within it (HUI addresses LCD text by starting column), and
// the text itself.
type LCDUpdate struct {
	Target LCDTarget
	Offset uint8
	Text   string
}

// EncodeLCD builds the SysEx7 event for an LCD text write.
func EncodeLCD(u LCDUpdate, group values.U4) event.SysEx7 {
	data := make([]byte, 0, len(u.Text)+2)
	data = append(data, byte(u.Target), u.Offset)
	data = append(data, []byte(u.Text)...)
	return event.SysEx7{GroupValue: group, Manufacturer: mackieManufacturer, Data: data}
}

// DecodeLCD parses an LCD text write out of a SysEx7 event. It rejects
// an unrecognised sub-id with Malformed; a truncated payload is
// rejected the same
// way.
func DecodeLCD(sx event.SysEx7) (LCDUpdate, error) {
	if len(sx.Data) < 2 {
		return LCDUpdate{}, midierr.NewMalformed("hui.DecodeLCD", 0, "LCD SysEx payload too short")
	}
	target := LCDTarget(sx.Data[0])
	if target > LCDSelectAssign {
		return LCDUpdate{}, midierr.NewMalformed("hui.DecodeLCD", 0, "unrecognised LCD target sub-id")
	}
	return LCDUpdate{
		Target: target,
		Offset: sx.Data[1],
		Text:   string(sx.Data[2:]),
	}, nil
}
