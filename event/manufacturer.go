package event

import (
	"fmt"

	"github.com/PKsong/MIDIKit/midierr"
)

// ManufacturerID identifies the owner of a SysEx7/SysEx8 payload: either a
// single reserved byte (0x01..0x7D) or a three-byte extended ID
// (0x00, msb, lsb). 0x7E and 0x7F are reserved for the MMA Universal
// System Exclusive families and are never valid manufacturer IDs.
type ManufacturerID struct {
	extended bool
	b0, b1   byte // only meaningful when extended
	id       byte // one-byte form
}

// NewManufacturerID1Byte validates and constructs a one-byte manufacturer
// ID. id must be in 0x01..0x7D.
func NewManufacturerID1Byte(id byte) (ManufacturerID, error) {
	if id == 0x00 || id > 0x7D {
		return ManufacturerID{}, midierr.NewOutOfRange("ManufacturerID", int64(id), 0x7D)
	}
	return ManufacturerID{id: id}, nil
}

// NewManufacturerID3Byte constructs the three-byte extended manufacturer
// ID 0x00 msb lsb. Any msb/lsb pair in 0x00..0x7F is valid; the MMA
// registry constrains which pairs are actually assigned, but that
// registry is not validated here.
func NewManufacturerID3Byte(msb, lsb byte) (ManufacturerID, error) {
	if msb > 0x7F || lsb > 0x7F {
		return ManufacturerID{}, midierr.NewOutOfRange("ManufacturerID", int64(msb)<<8|int64(lsb), 0x7F7F)
	}
	return ManufacturerID{extended: true, b0: msb, b1: lsb}, nil
}

// IsExtended reports whether this is a three-byte ID.
func (m ManufacturerID) IsExtended() bool { return m.extended }

// Bytes returns the wire encoding: one byte for a short ID, or
// {0x00, msb, lsb} for an extended one.
func (m ManufacturerID) Bytes() []byte {
	if m.extended {
		return []byte{0x00, m.b0, m.b1}
	}
	return []byte{m.id}
}

// ParseManufacturerID reads a manufacturer ID from the front of data,
// returning the ID and the number of bytes consumed (1 or 3).
func ParseManufacturerID(data []byte) (ManufacturerID, int, error) {
	if len(data) == 0 {
		return ManufacturerID{}, 0, midierr.NewMalformed("ManufacturerID", 0, "empty data")
	}
	if data[0] == 0x00 {
		if len(data) < 3 {
			return ManufacturerID{}, 0, midierr.NewMalformed("ManufacturerID", 0, "truncated extended ID")
		}
		id, err := NewManufacturerID3Byte(data[1], data[2])
		return id, 3, err
	}
	id, err := NewManufacturerID1Byte(data[0])
	return id, 1, err
}

func (m ManufacturerID) String() string {
	if m.extended {
		return fmt.Sprintf("00:%02X:%02X", m.b0, m.b1)
	}
	return fmt.Sprintf("%02X", m.id)
}
