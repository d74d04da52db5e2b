package midi1

import (
	"github.com/PKsong/MIDIKit/event"
	"github.com/PKsong/MIDIKit/values"
)

// rpnTxn tracks one channel's in-progress RPN/NRPN parameter selection so
// that a MIDI 1.0 RPN/NRPN *transaction* (parameter-select CC pair plus a
// data-entry or increment/decrement CC) can be folded into a single
// event.RPN/event.NRPN.
type rpnTxn struct {
	registered bool // true once both MSB/LSB of either family have been seen
	isNRPN     bool
	paramMSB   byte
	paramLSB   byte
	haveMSB    bool
	haveLSB    bool
}

type rpnCombiner struct {
	channels [16]rpnTxn
}

// Feed processes one CC and returns a combined RPN/NRPN event if the CC
// completed a transaction, or nil if it was just parameter selection or
// an unrelated controller.
func (c *rpnCombiner) Feed(group values.U4, channel values.U4, controller byte, value byte) event.Event {
	txn := &c.channels[channel]

	switch controller {
	case 101: // RPN MSB
		txn.isNRPN = false
		txn.paramMSB = value
		txn.haveMSB = true
		txn.registered = txn.haveMSB && txn.haveLSB && !(txn.paramMSB == 0x7F && txn.paramLSB == 0x7F)
		return nil
	case 100: // RPN LSB
		txn.isNRPN = false
		txn.paramLSB = value
		txn.haveLSB = true
		txn.registered = txn.haveMSB && txn.haveLSB && !(txn.paramMSB == 0x7F && txn.paramLSB == 0x7F)
		return nil
	case 99: // NRPN MSB
		txn.isNRPN = true
		txn.paramMSB = value
		txn.haveMSB = true
		txn.registered = txn.haveMSB && txn.haveLSB
		return nil
	case 98: // NRPN LSB
		txn.isNRPN = true
		txn.paramLSB = value
		txn.haveLSB = true
		txn.registered = txn.haveMSB && txn.haveLSB
		return nil
	case 6: // Data Entry MSB
		if !txn.registered {
			return nil
		}
		return c.build(group, channel, *txn, values.FromPair(values.NewU7(value), 0), event.ChangeAbsolute)
	case 38: // Data Entry LSB
		if !txn.registered {
			return nil
		}
		// LSB-only refinement: value combines with a zero MSB unless a
		// prior Data Entry MSB for this parameter already arrived; since
		// this combiner does not buffer the MSB across calls beyond what
		// the caller already observed as a separate CC event, the LSB is
		// folded in as the low 7 bits of a correction update.
		return c.build(group, channel, *txn, values.FromPair(0, values.NewU7(value)), event.ChangeAbsolute)
	case 96: // Data Increment
		if !txn.registered {
			return nil
		}
		return c.build(group, channel, *txn, values.FromPair(0, values.NewU7(value)), event.ChangeRelative)
	case 97: // Data Decrement
		if !txn.registered {
			return nil
		}
		return c.build(group, channel, *txn, values.FromPair(0, values.NewU7(value)), event.ChangeRelative)
	}
	return nil
}

func (c *rpnCombiner) build(group, channel values.U4, txn rpnTxn, v values.U14, ck event.ChangeKind) event.Event {
	if txn.isNRPN {
		return event.NRPN{
			GroupValue:   group,
			ChannelValue: channel,
			Parameter:    values.Pair7{MSB: values.NewU7(txn.paramMSB), LSB: values.NewU7(txn.paramLSB)},
			Value:        event.WideValue14(v),
			Change:       ck,
		}
	}
	return event.RPN{
		GroupValue:   group,
		ChannelValue: channel,
		Parameter:    event.RegisteredParameter{MSB: values.NewU7(txn.paramMSB), LSB: values.NewU7(txn.paramLSB)},
		Value:        event.WideValue14(v),
		Change:       ck,
	}
}
