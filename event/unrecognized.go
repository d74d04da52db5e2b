package event

import "github.com/PKsong/MIDIKit/values"

// KindUnrecognizedUMP is the discriminant for Unrecognized.
const KindUnrecognizedUMP Kind = 1000

// Unrecognized carries a UMP message whose message type this library does
// not interpret (flex-data 0xD, stream messages 0xF pass through rather
// than fail decoding). Words holds the message exactly as received, in
// UMP word order, for faithful re-encode.
type Unrecognized struct {
	GroupValue  values.U4
	MessageType uint8
	Words       []uint32
}

func (e Unrecognized) Kind() Kind       { return KindUnrecognizedUMP }
func (e Unrecognized) Group() values.U4 { return e.GroupValue }
