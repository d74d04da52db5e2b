package smf

import (
	"github.com/PKsong/MIDIKit/midierr"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const defaultChunkByteCap = 65536

// ParseOption configures Parse.
type ParseOption func(*parseConfig)

type parseConfig struct {
	chunkByteCap int
}

// WithChunkByteCap overrides the maximum declared length Parse accepts
// for any chunk (MThd or MTrk), default 65536, the same cap the UMP
// SysEx reassembler uses.
func WithChunkByteCap(n int) ParseOption {
	return func(c *parseConfig) { c.chunkByteCap = n }
}

type header struct {
	format   uint16
	nTracks  uint16
	division uint16
}

type chunk struct {
	id   string
	data []byte
}

// Parse decodes a complete Standard MIDI File. The returned error is
// wrapped with a stack trace (via github.com/pkg/errors) at this entry
// point to aid library consumers debugging a bad file; the underlying
// error is always one of midierr's three kinds and still satisfies
// errors.As against them.
func Parse(data []byte, opts ...ParseOption) (*MidiFile, error) {
	cfg := parseConfig{chunkByteCap: defaultChunkByteCap}
	for _, o := range opts {
		o(&cfg)
	}

	hdr, rest, err := parseHeader(data, cfg.chunkByteCap)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	chunks, err := scanChunks(rest, cfg.chunkByteCap)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var trackChunks [][]byte
	for _, c := range chunks {
		if c.id == "MTrk" {
			trackChunks = append(trackChunks, c.data)
		}
	}

	var problems error
	if len(trackChunks) != int(hdr.nTracks) {
		problems = multierr.Append(problems, midierr.NewMalformedf(
			"smf.Parse", 0, "header declares %d tracks, found %d MTrk chunks", hdr.nTracks, len(trackChunks)))
	}
	if problems != nil {
		return nil, errors.WithStack(problems)
	}

	mf := &MidiFile{Format: hdr.format, Division: decodeDivision(hdr.division)}
	for _, tc := range trackChunks {
		track, err := parseTrack(tc)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		mf.Tracks = append(mf.Tracks, track)
	}
	return mf, nil
}

func parseHeader(data []byte, byteCap int) (header, []byte, error) {
	if len(data) < 14 {
		return header{}, nil, midierr.NewMalformed("smf.MThd", 0, "short header: need at least 14 bytes")
	}
	if string(data[0:4]) != "MThd" {
		return header{}, nil, midierr.NewMalformed("smf.MThd", 0, "bad magic: expected MThd")
	}
	length := be32(data[4:8])
	if length != 6 {
		return header{}, nil, midierr.NewMalformedf("smf.MThd", 4, "MThd length must be 6, got %d", length)
	}
	if length > uint32(byteCap) {
		return header{}, nil, midierr.NewMalformedf("smf.MThd", 4, "MThd length %d exceeds byte cap %d", length, byteCap)
	}
	h := header{
		format:   be16(data[8:10]),
		nTracks:  be16(data[10:12]),
		division: be16(data[12:14]),
	}
	return h, data[14:], nil
}

func scanChunks(data []byte, byteCap int) ([]chunk, error) {
	var chunks []chunk
	off := 0
	for off < len(data) {
		if off+8 > len(data) {
			return nil, midierr.NewMalformed("smf.Parse", off, "truncated chunk header")
		}
		id := string(data[off : off+4])
		length := be32(data[off+4 : off+8])
		if length > uint32(byteCap) {
			return nil, midierr.NewMalformedf("smf.Parse", off, "chunk %q declares length %d exceeding byte cap %d", id, length, byteCap)
		}
		off += 8
		if off+int(length) > len(data) {
			return nil, midierr.NewMalformedf("smf.Parse", off, "truncated chunk %q: declares %d bytes, %d remain", id, length, len(data)-off)
		}
		chunks = append(chunks, chunk{id: id, data: data[off : off+int(length)]})
		off += int(length)
	}
	return chunks, nil
}

// parseTrack decodes one MTrk chunk's body into its event list, applying
// running status (a channel-voice status byte persists until replaced by
// another status byte; meta and SysEx events do not touch it) and
// enforcing the mandatory trailing EndOfTrack.
func parseTrack(data []byte) ([]TrackEvent, error) {
	var events []TrackEvent
	var lastStatus byte
	off := 0

	for off < len(data) {
		delta, n, err := DecodeVLQ(data[off:])
		if err != nil {
			return nil, offsetError(err, off)
		}
		off += n
		if off >= len(data) {
			return nil, midierr.NewMalformed("smf.Track", off, "truncated event: delta-time with no event byte")
		}

		b := data[off]
		var status byte
		if b&0x80 != 0 {
			status = b
			off++
		} else {
			if lastStatus == 0 || lastStatus >= 0xF0 {
				return nil, midierr.NewMalformed("smf.Track", off, "data byte with no channel-voice running status")
			}
			status = lastStatus
			// b is already the first data byte; off does not advance.
		}

		switch status {
		case 0xFF:
			if off >= len(data) {
				return nil, midierr.NewMalformed("smf.Track", off, "truncated meta-event: missing type byte")
			}
			metaType := data[off]
			off++
			length, n, err := DecodeVLQ(data[off:])
			if err != nil {
				return nil, offsetError(err, off)
			}
			off += n
			if off+int(length) > len(data) {
				return nil, midierr.NewMalformedf("smf.Track", off, "truncated meta-event 0x%02X: declares %d bytes", metaType, length)
			}
			body := data[off : off+int(length)]
			off += int(length)
			ev, err := decodeMeta(delta, metaType, body)
			if err != nil {
				return nil, err
			}
			events = append(events, ev)
			if metaType == metaEndOfTrack && off != len(data) {
				return nil, midierr.NewMalformed("smf.Track", off, "trailing data after EndOfTrack")
			}
		case 0xF0, 0xF7:
			length, n, err := DecodeVLQ(data[off:])
			if err != nil {
				return nil, offsetError(err, off)
			}
			off += n
			if off+int(length) > len(data) {
				return nil, midierr.NewMalformedf("smf.Track", off, "truncated SysEx: declares %d bytes", length)
			}
			body := append([]byte(nil), data[off:off+int(length)]...)
			off += int(length)
			events = append(events, SysEx{Delta: delta, Escape: status == 0xF7, Data: body})
		default:
			count, ok := dataByteCount(status)
			if !ok {
				return nil, midierr.NewMalformedf("smf.Track", off, "unsupported status byte 0x%02X", status)
			}
			if off+count > len(data) {
				return nil, midierr.NewMalformed("smf.Track", off, "truncated channel-voice event")
			}
			var data1, data2 byte
			if count >= 1 {
				data1 = data[off]
			}
			if count == 2 {
				data2 = data[off+1]
			}
			off += count
			msg, err := decodeChannelVoice(status, data1, data2)
			if err != nil {
				return nil, err
			}
			events = append(events, ChannelMessage{Delta: delta, Message: msg})
			lastStatus = status
		}
	}

	if len(events) == 0 {
		return nil, midierr.NewMalformed("smf.Track", off, "empty track: missing mandatory EndOfTrack")
	}
	if _, ok := events[len(events)-1].(EndOfTrack); !ok {
		return nil, midierr.NewMalformed("smf.Track", off, "track does not end with EndOfTrack")
	}
	return events, nil
}

func offsetError(err error, off int) error {
	if m, ok := err.(*midierr.Malformed); ok {
		m.Offset = off
		return m
	}
	return err
}

func be16(b []byte) uint16 { return uint16(b[0])<<8 | uint16(b[1]) }
func be32(b []byte) uint32 { return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]) }
