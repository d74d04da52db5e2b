package smf

import "github.com/PKsong/MIDIKit/midierr"

const (
	metaSequenceNumber    = 0x00
	metaText              = 0x01
	metaCopyright         = 0x02
	metaTrackName         = 0x03
	metaInstrumentName    = 0x04
	metaLyric             = 0x05
	metaMarker            = 0x06
	metaCuePoint          = 0x07
	metaChannelPrefix     = 0x20
	metaPortPrefix        = 0x21
	metaEndOfTrack        = 0x2F
	metaTempo             = 0x51
	metaSMPTEOffset       = 0x54
	metaTimeSignature     = 0x58
	metaKeySignature      = 0x59
	metaXMFPatchType      = 0x60
	metaSequencerSpecific = 0x7F
)

func textKindFor(metaType byte) TextKind {
	switch metaType {
	case metaCopyright:
		return TextCopyright
	case metaTrackName:
		return TextTrackName
	case metaInstrumentName:
		return TextInstrumentName
	case metaLyric:
		return TextLyric
	case metaMarker:
		return TextMarker
	case metaCuePoint:
		return TextCuePoint
	}
	return TextGeneric
}

func textMetaTypeFor(kind TextKind) byte {
	switch kind {
	case TextCopyright:
		return metaCopyright
	case TextTrackName:
		return metaTrackName
	case TextInstrumentName:
		return metaInstrumentName
	case TextLyric:
		return metaLyric
	case TextMarker:
		return metaMarker
	case TextCuePoint:
		return metaCuePoint
	}
	return metaText
}

// decodeMeta builds the TrackEvent for one meta-event body. delta is the
// event's already-decoded delta-time.
func decodeMeta(delta uint32, metaType byte, data []byte) (TrackEvent, error) {
	switch metaType {
	case metaSequenceNumber:
		if len(data) != 2 {
			return nil, midierr.NewMalformedf("smf.Meta", -1, "SequenceNumber wants 2 bytes, got %d", len(data))
		}
		return SequenceNumber{Delta: delta, Number: uint16(data[0])<<8 | uint16(data[1])}, nil
	case metaText, metaCopyright, metaTrackName, metaInstrumentName, metaLyric, metaMarker, metaCuePoint:
		return Text{Delta: delta, Kind: textKindFor(metaType), Value: string(data)}, nil
	case metaChannelPrefix:
		if len(data) != 1 {
			return nil, midierr.NewMalformedf("smf.Meta", -1, "ChannelPrefix wants 1 byte, got %d", len(data))
		}
		return ChannelPrefix{Delta: delta, Channel: data[0]}, nil
	case metaPortPrefix:
		if len(data) != 1 {
			return nil, midierr.NewMalformedf("smf.Meta", -1, "PortPrefix wants 1 byte, got %d", len(data))
		}
		return PortPrefix{Delta: delta, Port: data[0]}, nil
	case metaEndOfTrack:
		if len(data) != 0 {
			return nil, midierr.NewMalformedf("smf.Meta", -1, "EndOfTrack wants 0 bytes, got %d", len(data))
		}
		return EndOfTrack{Delta: delta}, nil
	case metaTempo:
		if len(data) != 3 {
			return nil, midierr.NewMalformedf("smf.Meta", -1, "Tempo wants 3 bytes, got %d", len(data))
		}
		return Tempo{Delta: delta, MicrosecondsPerQuarter: uint32(data[0])<<16 | uint32(data[1])<<8 | uint32(data[2])}, nil
	case metaSMPTEOffset:
		if len(data) != 5 {
			return nil, midierr.NewMalformedf("smf.Meta", -1, "SMPTEOffset wants 5 bytes, got %d", len(data))
		}
		return SMPTEOffset{Delta: delta, Hour: data[0], Minute: data[1], Second: data[2], Frame: data[3], SubFrame: data[4]}, nil
	case metaTimeSignature:
		if len(data) != 4 {
			return nil, midierr.NewMalformedf("smf.Meta", -1, "TimeSignature wants 4 bytes, got %d", len(data))
		}
		return TimeSignature{
			Delta: delta, Numerator: data[0], DenominatorPower: data[1],
			ClocksPerMetronomeClick: data[2], ThirtySecondNotesPerQuarter: data[3],
		}, nil
	case metaKeySignature:
		if len(data) != 2 {
			return nil, midierr.NewMalformedf("smf.Meta", -1, "KeySignature wants 2 bytes, got %d", len(data))
		}
		return KeySignature{Delta: delta, SharpsFlats: int8(data[0]), Minor: data[1] != 0}, nil
	case metaXMFPatchType:
		if len(data) != 1 {
			return nil, midierr.NewMalformedf("smf.Meta", -1, "XMFPatchTypePrefix wants 1 byte, got %d", len(data))
		}
		return XMFPatchTypePrefix{Delta: delta, PatchType: data[0]}, nil
	case metaSequencerSpecific:
		return SequencerSpecific{Delta: delta, Data: append([]byte(nil), data...)}, nil
	}
	return UnrecognizedMeta{Delta: delta, Type: metaType, Data: append([]byte(nil), data...)}, nil
}

// encodeMeta renders a meta TrackEvent back to its (type, data) pair.
// ChannelMessage and SysEx are handled by their own encode paths and
// never reach here.
func encodeMeta(ev TrackEvent) (metaType byte, data []byte, err error) {
	switch e := ev.(type) {
	case SequenceNumber:
		return metaSequenceNumber, []byte{byte(e.Number >> 8), byte(e.Number)}, nil
	case Text:
		return textMetaTypeFor(e.Kind), []byte(e.Value), nil
	case ChannelPrefix:
		return metaChannelPrefix, []byte{e.Channel}, nil
	case PortPrefix:
		return metaPortPrefix, []byte{e.Port}, nil
	case EndOfTrack:
		return metaEndOfTrack, nil, nil
	case Tempo:
		m := e.MicrosecondsPerQuarter
		return metaTempo, []byte{byte(m >> 16), byte(m >> 8), byte(m)}, nil
	case SMPTEOffset:
		return metaSMPTEOffset, []byte{e.Hour, e.Minute, e.Second, e.Frame, e.SubFrame}, nil
	case TimeSignature:
		return metaTimeSignature, []byte{e.Numerator, e.DenominatorPower, e.ClocksPerMetronomeClick, e.ThirtySecondNotesPerQuarter}, nil
	case KeySignature:
		minor := byte(0)
		if e.Minor {
			minor = 1
		}
		return metaKeySignature, []byte{byte(e.SharpsFlats), minor}, nil
	case XMFPatchTypePrefix:
		return metaXMFPatchType, []byte{e.PatchType}, nil
	case SequencerSpecific:
		return metaSequencerSpecific, e.Data, nil
	case UnrecognizedMeta:
		return e.Type, e.Data, nil
	}
	return 0, nil, midierr.NewUnsupported("track event has no meta-event representation")
}
