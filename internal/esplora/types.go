// Package esplora implements a typed read-only client for Esplora-style
// block explorer HTTP APIs.
//
// See: https://github.com/Blockstream/esplora/blob/master/API.md
package esplora

// PrevOut is the previous output referenced by an input, when the
// explorer supplies it.
type PrevOut struct {
	Value        uint64 `json:"value"`
	ScriptPubKey string `json:"scriptpubkey"`
}

// Vin is a transaction input as reported by the explorer. PrevOut is
// nil exactly when the input is a coinbase or the explorer omitted the
// previous output.
type Vin struct {
	TxID       string   `json:"txid"`
	Vout       uint32   `json:"vout"`
	PrevOut    *PrevOut `json:"prevout"`
	ScriptSig  string   `json:"scriptsig"`
	Witness    []string `json:"witness"`
	Sequence   uint32   `json:"sequence"`
	IsCoinbase bool     `json:"is_coinbase"`
}

// Vout is a transaction output as reported by the explorer.
type Vout struct {
	Value        uint64 `json:"value"`
	ScriptPubKey string `json:"scriptpubkey"`
	Address      string `json:"scriptpubkey_address"`
}

// TxStatus is the confirmation state of a transaction. The block fields
// are only meaningful together; partially-populated confirmed statuses
// are treated as unusable.
type TxStatus struct {
	Confirmed   bool    `json:"confirmed"`
	BlockHeight *uint32 `json:"block_height"`
	BlockHash   *string `json:"block_hash"`
	BlockTime   *uint64 `json:"block_time"`
}

// Tx is a transaction as reported by the explorer. A zero-input
// transaction is invalid on the wire protocol but must still decode.
type Tx struct {
	TxID     string   `json:"txid"`
	Version  int32    `json:"version"`
	LockTime uint32   `json:"locktime"`
	Vin      []Vin    `json:"vin"`
	Vout     []Vout   `json:"vout"`
	Status   TxStatus `json:"status"`
	Fee      uint64   `json:"fee"`
}

// MerkleProof is the inclusion proof for a confirmed transaction.
// Sibling hashes are ordered leaf to root; Pos is the position of the
// transaction among the leaves.
type MerkleProof struct {
	BlockHeight uint32   `json:"block_height"`
	Merkle      []string `json:"merkle"`
	Pos         uint32   `json:"pos"`
}

// OutputStatus is the spending state of a single output. The explorer
// may report spent without identifying the spender.
type OutputStatus struct {
	Spent  bool      `json:"spent"`
	TxID   *string   `json:"txid"`
	Vin    *uint32   `json:"vin"`
	Status *TxStatus `json:"status"`
}

// BlockSummary is the subset of block header fields the sync engine
// needs to check inclusion proofs.
type BlockSummary struct {
	ID         string `json:"id"`
	Height     uint32 `json:"height"`
	MerkleRoot string `json:"merkle_root"`
	Timestamp  uint64 `json:"timestamp"`
}

// FeeEstimates maps confirmation targets (blocks, string-keyed on the
// wire) to fee rates in sat/vB.
type FeeEstimates map[string]float64

// BlockTime pairs the height and timestamp of a confirmation.
type BlockTime struct {
	Height    uint32
	Timestamp uint64
}
