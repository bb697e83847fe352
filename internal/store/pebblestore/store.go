// Package pebblestore persists scan results in an embedded pebble
// database. Keys are namespaced by prefix, one namespace per record
// kind, with big-endian indices so iteration follows derivation order.
package pebblestore

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/cockroachdb/pebble"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/walletsync7000/internal/model"
)

const (
	prefixAddress    = "adr:"
	prefixTx         = "txn:"
	prefixOutput     = "out:"
	prefixCheckpoint = "chk:"
)

// Store is a durable sink for scan batches. Every batch commits
// atomically; replaying a batch overwrites the same keys and is safe.
type Store struct {
	db     *pebble.DB
	logger *zap.Logger
}

// Open opens or creates the database at path.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	db, err := pebble.Open(path, &pebble.Options{
		Cache:        pebble.NewCache(64 << 20),
		MaxOpenFiles: 500,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// CommitBatch writes all records of one scan window and advances the
// branch checkpoint in a single atomic pebble batch.
func (s *Store) CommitBatch(ctx context.Context, batch model.SyncBatch) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b := s.db.NewBatch()
	defer b.Close()

	var maxIndex uint32
	for _, addr := range batch.Addresses {
		value, err := json.Marshal(addr)
		if err != nil {
			return fmt.Errorf("marshal address %s/%d: %w", addr.Branch, addr.Index, err)
		}
		if err := b.Set(addressKey(addr.Branch, addr.Index), value, nil); err != nil {
			return err
		}
		if addr.Index > maxIndex {
			maxIndex = addr.Index
		}
	}

	for _, tx := range batch.Txs {
		value, err := json.Marshal(tx)
		if err != nil {
			return fmt.Errorf("marshal tx %s: %w", tx.TxID, err)
		}
		if err := b.Set(txKey(tx.TxID), value, nil); err != nil {
			return err
		}
	}

	for _, out := range batch.Outputs {
		value, err := json.Marshal(out)
		if err != nil {
			return fmt.Errorf("marshal output %s:%d: %w", out.TxID, out.Index, err)
		}
		if err := b.Set(outputKey(out.TxID, out.Index), value, nil); err != nil {
			return err
		}
	}

	if len(batch.Addresses) > 0 {
		if err := s.advanceCheckpoint(b, batch.Branch, maxIndex); err != nil {
			return err
		}
	}

	if err := b.Commit(pebble.Sync); err != nil {
		return fmt.Errorf("commit batch for %s: %w", batch.Branch, err)
	}

	s.logger.Debug("batch committed",
		zap.Stringer("branch", batch.Branch),
		zap.Int("addresses", len(batch.Addresses)),
		zap.Int("transactions", len(batch.Txs)),
		zap.Int("outputs", len(batch.Outputs)))
	return nil
}

// advanceCheckpoint records the highest scanned index per branch. The
// checkpoint never moves backwards, so replays of older windows keep it
// intact.
func (s *Store) advanceCheckpoint(b *pebble.Batch, branch model.Branch, index uint32) error {
	current, found, err := s.LastScannedIndex(branch)
	if err != nil {
		return err
	}
	if found && current >= index {
		return nil
	}
	var value [4]byte
	binary.BigEndian.PutUint32(value[:], index)
	return b.Set(checkpointKey(branch), value[:], nil)
}

// LastScannedIndex returns the highest address index ever committed for
// a branch.
func (s *Store) LastScannedIndex(branch model.Branch) (uint32, bool, error) {
	value, closer, err := s.db.Get(checkpointKey(branch))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	defer closer.Close()
	if len(value) != 4 {
		return 0, false, fmt.Errorf("corrupt checkpoint for %s: %d bytes", branch, len(value))
	}
	return binary.BigEndian.Uint32(value), true, nil
}

// Addresses returns the committed addresses of a branch in index order.
func (s *Store) Addresses(branch model.Branch) ([]model.Address, error) {
	var addresses []model.Address
	err := s.scanPrefix(branchPrefix(prefixAddress, branch), func(value []byte) error {
		var addr model.Address
		if err := json.Unmarshal(value, &addr); err != nil {
			return err
		}
		addresses = append(addresses, addr)
		return nil
	})
	return addresses, err
}

// Transactions returns every committed transaction.
func (s *Store) Transactions() ([]model.Transaction, error) {
	var txs []model.Transaction
	err := s.scanPrefix([]byte(prefixTx), func(value []byte) error {
		var tx model.Transaction
		if err := json.Unmarshal(value, &tx); err != nil {
			return err
		}
		txs = append(txs, tx)
		return nil
	})
	return txs, err
}

// Outputs returns every committed wallet output.
func (s *Store) Outputs() ([]model.Output, error) {
	var outputs []model.Output
	err := s.scanPrefix([]byte(prefixOutput), func(value []byte) error {
		var out model.Output
		if err := json.Unmarshal(value, &out); err != nil {
			return err
		}
		outputs = append(outputs, out)
		return nil
	})
	return outputs, err
}

// Balance sums the value of committed outputs not known to be spent.
func (s *Store) Balance() (uint64, error) {
	outputs, err := s.Outputs()
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, out := range outputs {
		if !out.Spend.Spent {
			total += out.Value
		}
	}
	return total, nil
}

func (s *Store) scanPrefix(prefix []byte, visit func(value []byte) error) error {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixUpperBound(prefix),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		if err := visit(iter.Value()); err != nil {
			return err
		}
	}
	return iter.Error()
}

func addressKey(branch model.Branch, index uint32) []byte {
	key := branchPrefix(prefixAddress, branch)
	return binary.BigEndian.AppendUint32(key, index)
}

func branchPrefix(prefix string, branch model.Branch) []byte {
	return binary.BigEndian.AppendUint32([]byte(prefix), uint32(branch))
}

func txKey(txid string) []byte {
	return append([]byte(prefixTx), txid...)
}

func outputKey(txid string, index uint32) []byte {
	key := append([]byte(prefixOutput), txid...)
	return binary.BigEndian.AppendUint32(key, index)
}

func checkpointKey(branch model.Branch) []byte {
	return binary.BigEndian.AppendUint32([]byte(prefixCheckpoint), uint32(branch))
}

// prefixUpperBound returns the exclusive upper bound for prefix iteration.
func prefixUpperBound(prefix []byte) []byte {
	upper := make([]byte, len(prefix))
	copy(upper, prefix)
	for i := len(upper) - 1; i >= 0; i-- {
		if upper[i] < 0xff {
			upper[i]++
			return upper[:i+1]
		}
	}
	return nil
}
