package ump

import (
	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/midierr"
	"github.com/PKsong/MIDIKit/values"
)

const sysEx7MaxPayload = 6

// decodeSysEx7 feeds one MT3 packet (2 words) to the group's reassembler
// and, once a stream completes, parses the concatenated payload into a
// SysEx7 or UniversalSysEx7 event.
func (d *Decoder) decodeSysEx7(grp uint8, words []uint32) (event.Event, error) {
	w0, w1 := words[0], words[1]
	status := sysExStatus((byte1(w0) >> 4) & 0x3)
	numBytes := int(byte1(w0) & 0x0F)
	if numBytes > sysEx7MaxPayload {
		return nil, midierr.NewMalformed("ump.SysEx7", -1, "numBytes exceeds packet capacity")
	}
	all := []byte{byte2(w0), byte3(w0), byte0(w1), byte1(w1), byte2(w1), byte3(w1)}
	payload := all[:numBytes]

	data, complete, err := d.sysex7.Feed(uint16(grp), status, payload)
	if err != nil {
		return nil, err
	}
	if !complete {
		return nil, nil
	}
	return parseSysEx7Payload(u4(grp), data)
}

func parseSysEx7Payload(grp values.U4, data []byte) (event.Event, error) {
	if len(data) == 0 {
		return nil, midierr.NewMalformed("ump.SysEx7", -1, "empty SysEx7 payload")
	}
	if data[0] == 0x7E || data[0] == 0x7F {
		kind := event.UniversalNonRealTime
		if data[0] == 0x7F {
			kind = event.UniversalRealTime
		}
		if len(data) < 4 {
			return nil, midierr.NewMalformed("ump.SysEx7", -1, "truncated universal SysEx7 header")
		}
		return event.UniversalSysEx7{
			GroupValue: grp,
			Kind_:      kind,
			DeviceID:   u7(data[1]),
			SubID1:     u7(data[2]),
			SubID2:     u7(data[3]),
			Data:       append([]byte(nil), data[4:]...),
		}, nil
	}
	mfr, n, err := event.ParseManufacturerID(data)
	if err != nil {
		return nil, err
	}
	return event.SysEx7{GroupValue: grp, Manufacturer: mfr, Data: append([]byte(nil), data[n:]...)}, nil
}

func sysEx7Payload(e event.Event) (values.U4, []byte, bool) {
	switch ev := e.(type) {
	case event.SysEx7:
		payload := append([]byte(nil), ev.Manufacturer.Bytes()...)
		payload = append(payload, ev.Data...)
		return ev.GroupValue, payload, true
	case event.UniversalSysEx7:
		marker := byte(0x7E)
		if ev.Kind_ == event.UniversalRealTime {
			marker = 0x7F
		}
		payload := append([]byte{marker, byte(ev.DeviceID), byte(ev.SubID1), byte(ev.SubID2)}, ev.Data...)
		return ev.GroupValue, payload, true
	}
	return 0, nil, false
}

// encodeSysEx7Words chunks payload into 1..N MT3 packets of up to 6 bytes
// each, using Complete when it fits in one packet and Start/Continue/End
// otherwise.
func encodeSysEx7Words(grp values.U4, payload []byte) []uint32 {
	if len(payload) <= sysEx7MaxPayload {
		return []uint32{sysex7Word0(grp, sysExComplete, payload), sysex7Word1(payload)}
	}

	var words []uint32
	for off := 0; off < len(payload); off += sysEx7MaxPayload {
		end := off + sysEx7MaxPayload
		if end > len(payload) {
			end = len(payload)
		}
		chunk := payload[off:end]
		var status sysExStatus
		switch {
		case off == 0:
			status = sysExStart
		case end == len(payload):
			status = sysExEnd
		default:
			status = sysExContinue
		}
		words = append(words, sysex7Word0(grp, status, chunk), sysex7Word1(chunk))
	}
	return words
}

func sysex7Word0(grp values.U4, status sysExStatus, chunk []byte) uint32 {
	b2, b3 := byte(0), byte(0)
	if len(chunk) > 0 {
		b2 = chunk[0]
	}
	if len(chunk) > 1 {
		b3 = chunk[1]
	}
	return makeWord(byte(MTSysEx7)<<4|byte(grp), byte(status)<<4|byte(len(chunk)), b2, b3)
}

func sysex7Word1(chunk []byte) uint32 {
	var b [4]byte
	for i := 2; i < len(chunk) && i < 6; i++ {
		b[i-2] = chunk[i]
	}
	return makeWord(b[0], b[1], b[2], b[3])
}
