// Package model defines domain models for wallet synchronization.
package model

import "fmt"

type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
	Signet  Network = "signet"
)

// Branch identifies a derivation branch of the wallet.
type Branch uint32

const (
	// BranchReceive is the external (receiving) derivation branch.
	BranchReceive Branch = 0
	// BranchChange is the internal (change) derivation branch.
	BranchChange Branch = 1
)

func (b Branch) String() string {
	switch b {
	case BranchReceive:
		return "receive"
	case BranchChange:
		return "change"
	default:
		return fmt.Sprintf("branch-%d", uint32(b))
	}
}

// Address is a derived wallet address and its observed usage state.
// An address is used once it has at least one associated transaction,
// confirmed or not, even if every output was later spent.
type Address struct {
	Branch  Branch
	Index   uint32
	Address string
	Used    bool
}

// Confirmation describes where a transaction was confirmed. All three
// fields are populated together; a nil *Confirmation means unconfirmed,
// or that the remote reported confirmation detail too incomplete to use.
type Confirmation struct {
	BlockHeight uint32
	BlockHash   string
	BlockTime   uint64
}

// Transaction is a wallet-relevant transaction as discovered by a scan.
type Transaction struct {
	TxID         string
	Version      int32
	LockTime     uint32
	Fee          uint64
	InputCount   uint32
	OutputCount  uint32
	Confirmation *Confirmation
}

// Spend records the spending state of an output. Spent with empty
// spender fields means the remote reported the output as spent without
// identifying the spender.
type Spend struct {
	Spent bool
	TxID  string
	Vin   *uint32
}

// Output is a transaction output paying to one of the wallet's addresses.
type Output struct {
	TxID    string
	Index   uint32
	Value   uint64
	Script  string
	Address string
	Spend   Spend
}

// SyncBatch groups one fully-collected address batch for atomic commit.
type SyncBatch struct {
	Branch    Branch
	Addresses []Address
	Txs       []Transaction
	Outputs   []Output
}

// BranchSummary reports the result of scanning a single branch.
type BranchSummary struct {
	Branch        Branch
	Scanned       uint32
	Used          uint32
	LastUsedIndex *uint32
	Txs           int
}
