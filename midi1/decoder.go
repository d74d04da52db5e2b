package midi1

import (
	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/midierr"
)

// state names the decoder's position in the MIDI 1.0 byte grammar:
// Idle, Data1Expected, Data2Expected, SysExBody.
type state int

const (
	stateIdle state = iota
	stateData1Expected
	stateData2Expected
	stateSysExBody
)

const defaultSysExByteCap = 65536

// Decoder is an explicit state machine decoding a MIDI 1.0 byte stream
// into events, one byte at a time via Feed. 0xF8-0xFF real-time bytes are
// accepted in any state and produce a side-band event without disturbing
// the current state.
type Decoder struct {
	st     state
	status byte
	data1  byte
	offset int

	sysExBuf     []byte
	sysExCap     int
	sysExByteCap int

	velocityZeroAsNoteOff bool
	combineRPN            bool

	rpn rpnCombiner
}

// NewDecoder constructs a Decoder with the given options applied over the
// defaults: velocity-zero-as-NoteOff enabled, RPN/NRPN combining enabled,
// 64KiB SysEx byte cap.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		velocityZeroAsNoteOff: true,
		combineRPN:            true,
		sysExByteCap:          defaultSysExByteCap,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Feed consumes one wire byte and returns zero or more events completed
// by it (normally zero or one; an RPN/NRPN-combining CC byte can complete
// both the underlying CC event and a synthesized RPN/NRPN event).
func (d *Decoder) Feed(b byte) ([]event.Event, error) {
	d.offset++

	if isRealTime(b) {
		if ev := realtimeEvent(b); ev != nil {
			return []event.Event{ev}, nil
		}
		return nil, nil
	}

	switch d.st {
	case stateSysExBody:
		return d.feedSysExBody(b)
	case stateData1Expected, stateData2Expected:
		return d.feedData(b)
	default:
		if isStatusByte(b) {
			return d.feedStatus(b)
		}
		return nil, midierr.NewMalformed("midi1.Decoder", d.offset, "unexpected data byte with no pending status")
	}
}

func (d *Decoder) feedStatus(b byte) ([]event.Event, error) {
	n, ok := dataByteCount(b)
	if !ok {
		return nil, midierr.NewMalformed("midi1.Decoder", d.offset, "unknown status byte")
	}
	d.status = b
	switch n {
	case -1: // SysEx start
		d.st = stateSysExBody
		d.sysExBuf = d.sysExBuf[:0]
		return nil, nil
	case 0:
		d.st = stateIdle
		ev, err := zeroDataEvent(b)
		return wrapSingle(ev, err)
	case 1:
		d.st = stateData1Expected
		return nil, nil
	case 2:
		d.st = stateData1Expected
		return nil, nil
	}
	return nil, midierr.NewMalformed("midi1.Decoder", d.offset, "unreachable data byte count")
}

func (d *Decoder) feedSysExBody(b byte) ([]event.Event, error) {
	if b == statusSysExEnd {
		data := append([]byte(nil), d.sysExBuf...)
		d.st = stateIdle
		ev, err := decodeSysEx(data)
		return wrapSingle(ev, err)
	}
	if isStatusByte(b) {
		d.st = stateIdle
		d.sysExBuf = d.sysExBuf[:0]
		return nil, midierr.NewMalformed("midi1.Decoder", d.offset, "SysEx terminated by status byte instead of 0xF7")
	}
	if len(d.sysExBuf) >= d.sysExByteCap {
		d.st = stateIdle
		d.sysExBuf = d.sysExBuf[:0]
		return nil, midierr.NewMalformed("midi1.Decoder", d.offset, "SysEx exceeded byte cap")
	}
	d.sysExBuf = append(d.sysExBuf, b)
	return nil, nil
}

func (d *Decoder) feedData(b byte) ([]event.Event, error) {
	if isStatusByte(b) {
		d.st = stateIdle
		return nil, midierr.NewMalformed("midi1.Decoder", d.offset, "data byte expected but status byte received")
	}

	n, _ := dataByteCount(d.status)
	if d.st == stateData1Expected && n == 2 {
		d.data1 = b
		d.st = stateData2Expected
		return nil, nil
	}

	d.st = stateIdle
	var data1, data2 byte
	if n == 1 {
		data1 = b
	} else {
		data1, data2 = d.data1, b
	}
	events, err := d.emitChannelVoice(d.status, data1, data2, n)
	return events, err
}

func wrapSingle(ev event.Event, err error) ([]event.Event, error) {
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, nil
	}
	return []event.Event{ev}, nil
}

func zeroDataEvent(status byte) (event.Event, error) {
	switch status {
	case statusTuneRequest:
		return event.TuneRequest{}, nil
	}
	return nil, midierr.NewMalformedf("midi1.Decoder", -1, "no zero-data handler for status 0x%02X", status)
}

func realtimeEvent(status byte) event.Event {
	switch status {
	case statusTimingClock:
		return event.TimingClock{}
	case statusStart:
		return event.Start{}
	case statusContinue:
		return event.Continue{}
	case statusStop:
		return event.Stop{}
	case statusActiveSensing:
		return event.ActiveSensing{}
	case statusSystemReset:
		return event.SystemReset{}
	}
	// Undefined real-time bytes (0xF9, 0xFD) still must not disturb state;
	// they decode to SystemReset's sibling only if recognised, otherwise
	// they are silently ignored as the spec does not define their
	// semantics and requires codecs to continue without disturbance.
	return nil
}
