package esplora

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/walletsync7000/internal/model"
	"github.com/goodnatureofminers/walletsync7000/pkg/safe"
)

// ToMsgTx converts the explorer representation into a btcd wire
// transaction, field by field.
func (t *Tx) ToMsgTx() (*wire.MsgTx, error) {
	msg := &wire.MsgTx{
		Version:  t.Version,
		LockTime: t.LockTime,
		TxIn:     make([]*wire.TxIn, 0, len(t.Vin)),
		TxOut:    make([]*wire.TxOut, 0, len(t.Vout)),
	}

	for i, vin := range t.Vin {
		prevHash, err := chainhash.NewHashFromStr(vin.TxID)
		if err != nil {
			return nil, fmt.Errorf("tx %s input %d prev txid: %w", t.TxID, i, err)
		}
		scriptSig, err := hex.DecodeString(vin.ScriptSig)
		if err != nil {
			return nil, fmt.Errorf("tx %s input %d scriptsig: %w", t.TxID, i, err)
		}
		witness, err := decodeWitness(vin.Witness)
		if err != nil {
			return nil, fmt.Errorf("tx %s input %d: %w", t.TxID, i, err)
		}
		msg.TxIn = append(msg.TxIn, &wire.TxIn{
			PreviousOutPoint: wire.OutPoint{Hash: *prevHash, Index: vin.Vout},
			SignatureScript:  scriptSig,
			Witness:          witness,
			Sequence:         vin.Sequence,
		})
	}

	for i, vout := range t.Vout {
		value, err := safe.Int64(vout.Value)
		if err != nil {
			return nil, fmt.Errorf("tx %s output %d value: %w", t.TxID, i, err)
		}
		pkScript, err := hex.DecodeString(vout.ScriptPubKey)
		if err != nil {
			return nil, fmt.Errorf("tx %s output %d scriptpubkey: %w", t.TxID, i, err)
		}
		msg.TxOut = append(msg.TxOut, &wire.TxOut{Value: value, PkScript: pkScript})
	}

	return msg, nil
}

// ConfirmationTime returns the confirmation height and timestamp, or
// nil when the status is unconfirmed or either field is missing. It
// never fills in partial information.
func (t *Tx) ConfirmationTime() *BlockTime {
	s := t.Status
	if !s.Confirmed || s.BlockHeight == nil || s.BlockTime == nil {
		return nil
	}
	return &BlockTime{Height: *s.BlockHeight, Timestamp: *s.BlockTime}
}

// PreviousOutputs returns one entry per input in input order. Entries
// are nil for coinbase inputs and inputs whose previous output the
// explorer did not supply.
func (t *Tx) PreviousOutputs() ([]*wire.TxOut, error) {
	outs := make([]*wire.TxOut, 0, len(t.Vin))
	for i, vin := range t.Vin {
		if vin.PrevOut == nil {
			outs = append(outs, nil)
			continue
		}
		value, err := safe.Int64(vin.PrevOut.Value)
		if err != nil {
			return nil, fmt.Errorf("tx %s input %d prevout value: %w", t.TxID, i, err)
		}
		pkScript, err := hex.DecodeString(vin.PrevOut.ScriptPubKey)
		if err != nil {
			return nil, fmt.Errorf("tx %s input %d prevout script: %w", t.TxID, i, err)
		}
		outs = append(outs, &wire.TxOut{Value: value, PkScript: pkScript})
	}
	return outs, nil
}

// Record maps the transaction into its domain form. The confirmation
// carried over is the explorer's claim; callers wanting proof-checked
// confirmations overwrite it with a verified one.
func (t *Tx) Record() (model.Transaction, error) {
	inputCount, err := safe.Uint32(len(t.Vin))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("tx %s input count: %w", t.TxID, err)
	}
	outputCount, err := safe.Uint32(len(t.Vout))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("tx %s output count: %w", t.TxID, err)
	}
	return model.Transaction{
		TxID:         t.TxID,
		Version:      t.Version,
		LockTime:     t.LockTime,
		Fee:          t.Fee,
		InputCount:   inputCount,
		OutputCount:  outputCount,
		Confirmation: t.Status.Confirmation(),
	}, nil
}

// Confirmation returns the usable domain confirmation, requiring the
// confirmed flag and all three block fields together.
func (s *TxStatus) Confirmation() *model.Confirmation {
	if !s.Confirmed || s.BlockHeight == nil || s.BlockHash == nil || s.BlockTime == nil {
		return nil
	}
	return &model.Confirmation{
		BlockHeight: *s.BlockHeight,
		BlockHash:   *s.BlockHash,
		BlockTime:   *s.BlockTime,
	}
}

func decodeWitness(elements []string) (wire.TxWitness, error) {
	if len(elements) == 0 {
		return nil, nil
	}
	witness := make(wire.TxWitness, 0, len(elements))
	for i, element := range elements {
		decoded, err := hex.DecodeString(element)
		if err != nil {
			return nil, fmt.Errorf("%w: witness element %d", ErrMalformedWitness, i)
		}
		witness = append(witness, decoded)
	}
	return witness, nil
}
