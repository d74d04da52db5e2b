package ump

import "github.com/PKsong/MIDIKit/midierr"

// sysExStatus is the 2-bit stream-format field UMP SysEx7/SysEx8 packets
// carry in the top of their second byte.
type sysExStatus uint8

const (
	sysExComplete sysExStatus = 0
	sysExStart    sysExStatus = 1
	sysExContinue sysExStatus = 2
	sysExEnd      sysExStatus = 3
)

// reassembler buffers in-progress SysEx7/SysEx8 streams keyed by caller-
// supplied key (UMP group for SysEx7; group and stream ID packed together
// for SysEx8), enforcing a per-stream byte cap (default 64KiB). A Start
// without a terminating End within that cap, or a
// Continue/End without a preceding Start, resets that stream's buffer and
// reports Malformed; a malformed stream does not affect any other key.
type reassembler struct {
	byteCap int
	buffers map[uint16][]byte
	active  map[uint16]bool
}

func newReassembler(byteCap int) *reassembler {
	return &reassembler{
		byteCap: byteCap,
		buffers: make(map[uint16][]byte),
		active:  make(map[uint16]bool),
	}
}

// Feed appends payload for the given stream key and status. It returns
// (data, true, nil) when a complete message is assembled, (nil, false,
// nil) when more packets are expected, or a non-nil error on a malformed
// sequence (which also resets that key's buffer).
func (r *reassembler) Feed(key uint16, status sysExStatus, payload []byte) ([]byte, bool, error) {
	switch status {
	case sysExComplete:
		r.reset(key)
		return payload, true, nil
	case sysExStart:
		r.reset(key)
		if len(payload) > r.byteCap {
			return nil, false, midierr.NewMalformed("ump.SysEx", -1, "Start payload exceeds byte cap")
		}
		r.buffers[key] = append([]byte(nil), payload...)
		r.active[key] = true
		return nil, false, nil
	case sysExContinue:
		if !r.active[key] {
			return nil, false, midierr.NewMalformed("ump.SysEx", -1, "Continue without Start")
		}
		if len(r.buffers[key])+len(payload) > r.byteCap {
			r.reset(key)
			return nil, false, midierr.NewMalformed("ump.SysEx", -1, "stream exceeded byte cap")
		}
		r.buffers[key] = append(r.buffers[key], payload...)
		return nil, false, nil
	case sysExEnd:
		if !r.active[key] {
			return nil, false, midierr.NewMalformed("ump.SysEx", -1, "End without Start")
		}
		if len(r.buffers[key])+len(payload) > r.byteCap {
			r.reset(key)
			return nil, false, midierr.NewMalformed("ump.SysEx", -1, "stream exceeded byte cap")
		}
		data := append(r.buffers[key], payload...)
		r.reset(key)
		return data, true, nil
	}
	return nil, false, midierr.NewMalformed("ump.SysEx", -1, "unknown stream status")
}

func (r *reassembler) reset(key uint16) {
	delete(r.buffers, key)
	delete(r.active, key)
}
