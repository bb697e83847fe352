package scanner

import (
	"context"
	"time"

	"github.com/goodnatureofminers/walletsync7000/internal/esplora"
	"github.com/goodnatureofminers/walletsync7000/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Client interface {
		AddressHistory(ctx context.Context, address string) ([]esplora.Tx, error)
		TxStatus(ctx context.Context, txid string) (*esplora.TxStatus, error)
		TxMerkleProof(ctx context.Context, txid string, blockHeight uint32) (*esplora.MerkleProof, error)
		OutputStatus(ctx context.Context, txid string, vout uint32) (*esplora.OutputStatus, error)
		Block(ctx context.Context, hash string) (*esplora.BlockSummary, error)
	}
	Deriver interface {
		Derive(branch model.Branch, index uint32) (string, error)
	}
	Store interface {
		CommitBatch(ctx context.Context, batch model.SyncBatch) error
	}
	TxVerifier interface {
		Confirmation(ctx context.Context, txid string) (*model.Confirmation, error)
		ResolveSpend(ctx context.Context, txid string, vout uint32) (model.Spend, error)
	}
	Metrics interface {
		ObserveBatch(branch model.Branch, err error, addresses int, started time.Time)
		ObserveBranchDone(branch model.Branch, scanned uint32)
	}
)
