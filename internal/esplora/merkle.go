package esplora

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// maxProofDepth bounds the sibling list; a bitcoin block can hold fewer
// than 2^32 transactions, so deeper proofs are malformed.
const maxProofDepth = 32

// VerifyProof recomputes the merkle root implied by txid and proof and
// compares it to the root claimed by the containing block. Sibling
// hashes pair leaf to root, with position parity picking the side at
// each level. A disagreement returns ErrProofMismatch, which callers
// must treat as fatal rather than retryable.
func VerifyProof(txid string, proof MerkleProof, claimedRoot string) error {
	depth := len(proof.Merkle)
	if depth > maxProofDepth {
		return fmt.Errorf("merkle proof for tx %s has implausible depth %d", txid, depth)
	}
	if uint64(proof.Pos) >= uint64(1)<<uint(depth) {
		return fmt.Errorf("merkle proof position %d out of range for depth %d", proof.Pos, depth)
	}

	current, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return fmt.Errorf("parse txid %s: %w", txid, err)
	}

	pos := proof.Pos
	for i, sibling := range proof.Merkle {
		siblingHash, err := chainhash.NewHashFromStr(sibling)
		if err != nil {
			return fmt.Errorf("parse merkle sibling %d: %w", i, err)
		}

		var pair [2 * chainhash.HashSize]byte
		if pos&1 == 1 {
			copy(pair[:chainhash.HashSize], siblingHash[:])
			copy(pair[chainhash.HashSize:], current[:])
		} else {
			copy(pair[:chainhash.HashSize], current[:])
			copy(pair[chainhash.HashSize:], siblingHash[:])
		}
		combined := chainhash.DoubleHashH(pair[:])
		current = &combined
		pos >>= 1
	}

	root, err := chainhash.NewHashFromStr(claimedRoot)
	if err != nil {
		return fmt.Errorf("parse claimed merkle root: %w", err)
	}
	if !current.IsEqual(root) {
		return fmt.Errorf("tx %s: computed root %s, block claims %s: %w",
			txid, current, root, ErrProofMismatch)
	}
	return nil
}
