package smf

// EncodeOption configures Encode.
type EncodeOption func(*encodeConfig)

type encodeConfig struct {
	runningStatus bool
}

// WithRunningStatus enables omitting a channel-voice status byte when it
// repeats the previous one in the same track, the way most sequencers
// write SMF files. Default false: every event carries an explicit status
// byte, maximizing compatibility with minimal readers.
func WithRunningStatus(enabled bool) EncodeOption {
	return func(c *encodeConfig) { c.runningStatus = enabled }
}

// Encode renders a MidiFile back to its byte form. Each track is
// appended its mandatory EndOfTrack if the caller's event list omitted
// one.
func Encode(mf *MidiFile, opts ...EncodeOption) ([]byte, error) {
	cfg := encodeConfig{runningStatus: false}
	for _, o := range opts {
		o(&cfg)
	}

	out := make([]byte, 0, 256)
	out = append(out, 'M', 'T', 'h', 'd')
	out = appendBE32(out, 6)
	out = appendBE16(out, mf.Format)
	out = appendBE16(out, uint16(len(mf.Tracks)))
	out = appendBE16(out, mf.Division.encode())

	for _, track := range mf.Tracks {
		body, err := encodeTrack(track, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, 'M', 'T', 'r', 'k')
		out = appendBE32(out, uint32(len(body)))
		out = append(out, body...)
	}
	return out, nil
}

func encodeTrack(events []TrackEvent, cfg encodeConfig) ([]byte, error) {
	if len(events) == 0 || !isEndOfTrack(events[len(events)-1]) {
		events = append(append([]TrackEvent(nil), events...), EndOfTrack{})
	}

	var body []byte
	var lastStatus byte
	for _, ev := range events {
		body = append(body, EncodeVLQ(ev.DeltaTime())...)
		switch e := ev.(type) {
		case ChannelMessage:
			status, data, err := encodeChannelVoice(e.Message)
			if err != nil {
				return nil, err
			}
			if !(cfg.runningStatus && status == lastStatus) {
				body = append(body, status)
			}
			body = append(body, data...)
			lastStatus = status
		case SysEx:
			marker := byte(0xF0)
			if e.Escape {
				marker = 0xF7
			}
			body = append(body, marker)
			body = append(body, EncodeVLQ(uint32(len(e.Data)))...)
			body = append(body, e.Data...)
		default:
			metaType, data, err := encodeMeta(ev)
			if err != nil {
				return nil, err
			}
			body = append(body, 0xFF, metaType)
			body = append(body, EncodeVLQ(uint32(len(data)))...)
			body = append(body, data...)
		}
	}
	return body, nil
}

func isEndOfTrack(e TrackEvent) bool {
	_, ok := e.(EndOfTrack)
	return ok
}

func appendBE16(b []byte, v uint16) []byte { return append(b, byte(v>>8), byte(v)) }
func appendBE32(b []byte, v uint32) []byte {
	return append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
