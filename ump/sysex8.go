package ump

import (
	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/midierr"
	"github.com/PKsong/MIDIKit/values"
)

const sysEx8MaxPayload = 13

// decodeSysEx8 mirrors decodeSysEx7 for MT5 (4-word, 16-byte) packets,
// which additionally carry a 1-byte stream ID distinguishing interleaved
// SysEx8 streams within one group.
func (d *Decoder) decodeSysEx8(grp uint8, words []uint32) (event.Event, error) {
	w0, w1, w2, w3 := words[0], words[1], words[2], words[3]
	status := sysExStatus((byte1(w0) >> 4) & 0x3)
	numBytes := int(byte1(w0) & 0x0F)
	streamID := byte2(w0)
	if numBytes > sysEx8MaxPayload {
		return nil, midierr.NewMalformed("ump.SysEx8", -1, "numBytes exceeds packet capacity")
	}
	all := []byte{
		byte3(w0),
		byte0(w1), byte1(w1), byte2(w1), byte3(w1),
		byte0(w2), byte1(w2), byte2(w2), byte3(w2),
		byte0(w3), byte1(w3), byte2(w3), byte3(w3),
	}
	payload := all[:numBytes]

	// Key reassembly by group and stream ID packed into one uint16: groups
	// only span 0..15, so the group occupies the high byte and the full
	// stream ID occupies the low byte, keeping every (group, stream ID)
	// combination distinct.
	key := uint16(grp)<<8 | uint16(streamID)
	data, complete, err := d.sysex8.Feed(key, status, payload)
	if err != nil {
		return nil, err
	}
	if !complete {
		return nil, nil
	}
	return parseSysEx8Payload(u4(grp), streamID, data)
}

func parseSysEx8Payload(grp values.U4, streamID uint8, data []byte) (event.Event, error) {
	if len(data) == 0 {
		return event.SysEx8{GroupValue: grp, StreamID: streamID, Data: nil}, nil
	}
	if data[0] == 0x7E || data[0] == 0x7F {
		kind := event.UniversalNonRealTime
		if data[0] == 0x7F {
			kind = event.UniversalRealTime
		}
		if len(data) < 4 {
			return nil, midierr.NewMalformed("ump.SysEx8", -1, "truncated universal SysEx8 header")
		}
		return event.UniversalSysEx8{
			GroupValue: grp,
			Kind_:      kind,
			DeviceID:   u7(data[1]),
			SubID1:     u7(data[2]),
			SubID2:     u7(data[3]),
			StreamID:   streamID,
			Data:       append([]byte(nil), data[4:]...),
		}, nil
	}
	return event.SysEx8{GroupValue: grp, StreamID: streamID, Data: append([]byte(nil), data...)}, nil
}

func sysEx8Payload(e event.Event) (values.U4, uint8, []byte, bool) {
	switch ev := e.(type) {
	case event.SysEx8:
		return ev.GroupValue, ev.StreamID, ev.Data, true
	case event.UniversalSysEx8:
		marker := byte(0x7E)
		if ev.Kind_ == event.UniversalRealTime {
			marker = 0x7F
		}
		payload := append([]byte{marker, byte(ev.DeviceID), byte(ev.SubID1), byte(ev.SubID2)}, ev.Data...)
		return ev.GroupValue, ev.StreamID, payload, true
	}
	return 0, 0, nil, false
}

func encodeSysEx8Words(grp values.U4, streamID uint8, payload []byte) []uint32 {
	if len(payload) <= sysEx8MaxPayload {
		return sysex8Packet(grp, sysExComplete, streamID, payload)
	}
	var words []uint32
	for off := 0; off < len(payload); off += sysEx8MaxPayload {
		end := off + sysEx8MaxPayload
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
		words = append(words, sysex8Packet(grp, status, streamID, chunk)...)
	}
	return words
}

func sysex8Packet(grp values.U4, status sysExStatus, streamID uint8, chunk []byte) []uint32 {
	var b [13]byte
	copy(b[:], chunk)
	w0 := makeWord(byte(MTSysEx8)<<4|byte(grp), byte(status)<<4|byte(len(chunk)), streamID, b[0])
	w1 := makeWord(b[1], b[2], b[3], b[4])
	w2 := makeWord(b[5], b[6], b[7], b[8])
	w3 := makeWord(b[9], b[10], b[11], b[12])
	return []uint32{w0, w1, w2, w3}
}
