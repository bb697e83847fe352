package scanner

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/walletsync7000/internal/esplora"
	"github.com/goodnatureofminers/walletsync7000/internal/model"
)

// Verifier establishes confirmation state against the explorer and
// checks every claimed confirmation with a merkle inclusion proof.
type Verifier struct {
	client Client
	logger *zap.Logger
}

func NewVerifier(client Client, logger *zap.Logger) *Verifier {
	return &Verifier{client: client, logger: logger}
}

// Confirmation returns the verified confirmation of txid, or nil when
// the transaction is unconfirmed, unknown, or the explorer reports a
// confirmation too incomplete to verify. A proof that does not recompute
// to the block's merkle root fails with esplora.ErrProofMismatch.
func (v *Verifier) Confirmation(ctx context.Context, txid string) (*model.Confirmation, error) {
	status, err := v.client.TxStatus(ctx, txid)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, nil
	}
	confirmation := status.Confirmation()
	if confirmation == nil {
		return nil, nil
	}

	proof, err := v.client.TxMerkleProof(ctx, txid, confirmation.BlockHeight)
	if err != nil {
		return nil, err
	}
	if proof == nil {
		v.logger.Debug("no inclusion proof for confirmed transaction, treating as unconfirmed",
			zap.String("txid", txid),
			zap.Uint32("height", confirmation.BlockHeight))
		return nil, nil
	}

	block, err := v.client.Block(ctx, confirmation.BlockHash)
	if err != nil {
		return nil, err
	}
	if block == nil {
		return nil, nil
	}

	if err := esplora.VerifyProof(txid, *proof, block.MerkleRoot); err != nil {
		return nil, fmt.Errorf("tx %s in block %s: %w", txid, confirmation.BlockHash, err)
	}
	return confirmation, nil
}

// ResolveSpend returns the spending state of an output. An unknown
// output resolves to unspent. A spent output whose spender the explorer
// does not identify keeps empty spender fields.
func (v *Verifier) ResolveSpend(ctx context.Context, txid string, vout uint32) (model.Spend, error) {
	status, err := v.client.OutputStatus(ctx, txid, vout)
	if err != nil {
		return model.Spend{}, err
	}
	if status == nil || !status.Spent {
		return model.Spend{}, nil
	}

	spend := model.Spend{Spent: true}
	if status.TxID != nil {
		spend.TxID = *status.TxID
	}
	if status.Vin != nil {
		vin := *status.Vin
		spend.Vin = &vin
	}
	return spend, nil
}
