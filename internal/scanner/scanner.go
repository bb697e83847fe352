// Package scanner discovers a wallet's transaction history through an
// Esplora-style explorer using gap-limited address scanning.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/walletsync7000/internal/clock"
	"github.com/goodnatureofminers/walletsync7000/internal/esplora"
	"github.com/goodnatureofminers/walletsync7000/internal/model"
	"github.com/goodnatureofminers/walletsync7000/pkg/safe"
	"github.com/goodnatureofminers/walletsync7000/pkg/workerpool"
)

// minBatchSize keeps defaulted batches from degenerating when the stop
// gap is tiny. An explicitly configured batch size is honored as-is.
const minBatchSize = 8

// Config tunes a Scanner. StopGap is required; the rest has working defaults.
type Config struct {
	// StopGap is the number of consecutive unused addresses that ends a
	// branch scan. Must be positive.
	StopGap uint32
	// Concurrency bounds parallel explorer requests within a batch.
	Concurrency int
	// BatchSize is the number of addresses derived and fetched per batch.
	BatchSize uint32
}

// Scanner walks the wallet's derivation branches until each shows a run
// of StopGap consecutive unused addresses, committing one atomic batch
// per address window.
type Scanner struct {
	client      Client
	deriver     Deriver
	store       Store
	verifier    TxVerifier
	metrics     Metrics
	logger      *zap.Logger
	stopGap     uint32
	concurrency int
	batchSize   uint32
	sleep       func(context.Context, time.Duration) error
}

// New validates cfg and builds a Scanner with the provided dependencies.
func New(
	cfg Config,
	client Client,
	deriver Deriver,
	store Store,
	verifier TxVerifier,
	metrics Metrics,
	logger *zap.Logger,
) (*Scanner, error) {
	if cfg.StopGap == 0 {
		return nil, fmt.Errorf("%w: stop gap must be positive", esplora.ErrInvalidConfig)
	}
	if cfg.Concurrency < 0 {
		return nil, fmt.Errorf("%w: concurrency must not be negative", esplora.ErrInvalidConfig)
	}
	if client == nil || deriver == nil || store == nil || verifier == nil {
		return nil, errors.New("client, deriver, store and verifier are required")
	}
	if metrics == nil {
		return nil, errors.New("scanner metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	concurrency := cfg.Concurrency
	if concurrency == 0 {
		concurrency = esplora.DefaultConcurrency
	}
	batchSize := cfg.BatchSize
	if batchSize == 0 {
		batchSize = cfg.StopGap
		if batchSize < minBatchSize {
			batchSize = minBatchSize
		}
	}

	return &Scanner{
		client:      client,
		deriver:     deriver,
		store:       store,
		verifier:    verifier,
		metrics:     metrics,
		logger:      logger,
		stopGap:     cfg.StopGap,
		concurrency: concurrency,
		batchSize:   batchSize,
		sleep:       clock.SleepWithContext,
	}, nil
}

// Sync scans the receive and change branches and returns a summary per
// branch. Both branches are scanned concurrently; the first error aborts
// the whole sync.
func (s *Scanner) Sync(ctx context.Context) ([]model.BranchSummary, error) {
	branches := []model.Branch{model.BranchReceive, model.BranchChange}
	return workerpool.Collect(ctx, len(branches), branches, s.syncBranch)
}

// Run resynchronizes in a loop until the context is canceled.
func (s *Scanner) Run(ctx context.Context, interval time.Duration) error {
	for {
		summaries, err := s.Sync(ctx)
		if err != nil {
			return err
		}
		for _, summary := range summaries {
			s.logger.Info("branch synchronized",
				zap.Stringer("branch", summary.Branch),
				zap.Uint32("scanned", summary.Scanned),
				zap.Uint32("used", summary.Used),
				zap.Int("transactions", summary.Txs))
		}
		if err := s.sleep(ctx, interval); err != nil {
			return err
		}
	}
}

func (s *Scanner) syncBranch(ctx context.Context, branch model.Branch) (model.BranchSummary, error) {
	summary := model.BranchSummary{Branch: branch}

	var next uint32
	var trailingUnused uint32
	for {
		batch, err := s.scanBatch(ctx, branch, next)
		if err != nil {
			return summary, err
		}

		for _, addr := range batch.Addresses {
			if addr.Used {
				trailingUnused = 0
				summary.Used++
				index := addr.Index
				summary.LastUsedIndex = &index
			} else {
				trailingUnused++
			}
		}
		summary.Scanned += uint32(len(batch.Addresses))
		summary.Txs += len(batch.Txs)

		if err := s.store.CommitBatch(ctx, batch); err != nil {
			return summary, fmt.Errorf("commit batch for %s at %d: %w", branch, next, err)
		}

		if trailingUnused >= s.stopGap {
			break
		}
		if next > math.MaxUint32-s.batchSize {
			return summary, fmt.Errorf("branch %s exhausted the derivation index space", branch)
		}
		next += s.batchSize
	}

	s.metrics.ObserveBranchDone(branch, summary.Scanned)
	return summary, nil
}

// scanBatch derives one window of addresses, fetches their histories
// concurrently and assembles the batch to commit. Transactions seen via
// several addresses of the window are recorded once.
func (s *Scanner) scanBatch(ctx context.Context, branch model.Branch, start uint32) (batch model.SyncBatch, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveBatch(branch, err, int(s.batchSize), started)
	}()

	batch.Branch = branch
	batch.Addresses = make([]model.Address, 0, s.batchSize)
	for i := uint32(0); i < s.batchSize; i++ {
		index := start + i
		address, err := s.deriver.Derive(branch, index)
		if err != nil {
			return batch, fmt.Errorf("derive %s/%d: %w", branch, index, err)
		}
		batch.Addresses = append(batch.Addresses, model.Address{
			Branch:  branch,
			Index:   index,
			Address: address,
		})
	}

	histories, err := workerpool.Collect(ctx, s.concurrency, batch.Addresses,
		func(ctx context.Context, addr model.Address) ([]esplora.Tx, error) {
			return s.client.AddressHistory(ctx, addr.Address)
		})
	if err != nil {
		return batch, fmt.Errorf("fetch histories for %s at %d: %w", branch, start, err)
	}

	seen := make(map[string]struct{})
	for i, history := range histories {
		addr := &batch.Addresses[i]
		addr.Used = len(history) > 0

		for _, tx := range history {
			outputs, err := s.collectOutputs(ctx, tx, addr.Address)
			if err != nil {
				return batch, err
			}
			batch.Outputs = append(batch.Outputs, outputs...)

			if _, ok := seen[tx.TxID]; ok {
				continue
			}
			seen[tx.TxID] = struct{}{}

			record, err := s.recordTx(ctx, tx)
			if err != nil {
				return batch, err
			}
			batch.Txs = append(batch.Txs, record)
		}
	}

	return batch, nil
}

// collectOutputs extracts the outputs of tx paying to address and
// resolves their spending state.
func (s *Scanner) collectOutputs(ctx context.Context, tx esplora.Tx, address string) ([]model.Output, error) {
	var outputs []model.Output
	for idx, vout := range tx.Vout {
		if vout.Address != address {
			continue
		}
		index, err := safe.Uint32(idx)
		if err != nil {
			return nil, fmt.Errorf("tx %s output index: %w", tx.TxID, err)
		}
		spend, err := s.verifier.ResolveSpend(ctx, tx.TxID, index)
		if err != nil {
			return nil, fmt.Errorf("resolve spend of %s:%d: %w", tx.TxID, index, err)
		}
		outputs = append(outputs, model.Output{
			TxID:    tx.TxID,
			Index:   index,
			Value:   vout.Value,
			Script:  vout.ScriptPubKey,
			Address: address,
			Spend:   spend,
		})
	}
	return outputs, nil
}

// recordTx converts a history entry to a domain transaction. For
// confirmed transactions the confirmation is established through the
// verifier, never taken from the history entry as-is.
func (s *Scanner) recordTx(ctx context.Context, tx esplora.Tx) (model.Transaction, error) {
	record, err := tx.Record()
	if err != nil {
		return model.Transaction{}, fmt.Errorf("convert tx %s: %w", tx.TxID, err)
	}

	record.Confirmation = nil
	if tx.Status.Confirmed {
		confirmation, err := s.verifier.Confirmation(ctx, tx.TxID)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("verify confirmation of %s: %w", tx.TxID, err)
		}
		record.Confirmation = confirmation
	}
	return record, nil
}
