package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rlp"
)

var (
	ErrNotFound = errors.New("not found")
	ErrClosed   = errors.New("store closed")
)

var relayedPrefix = []byte("relayed/")

// Record describes the L1 transaction that relayed a message.
type Record struct {
	MessageHash common.Hash `json:"messageHash"`
	TxHash      common.Hash `json:"txHash"`
	BlockNumber uint64      `json:"blockNumber"`
	BatchID     string      `json:"batchId"`
	RelayedAt   uint64      `json:"relayedAt"`
}

// Store keeps the relayed-message records across restarts.
type Store struct {
	log log.Logger

	lock   sync.RWMutex
	closed bool
	db     *pebble.DB
}

// Open opens the store at dataDir. An empty dataDir keeps everything in memory.
func Open(dataDir string, logger log.Logger) (*Store, error) {
	opts := &pebble.Options{
		Logger: &pebbleLogger{log: logger},
	}
	dir := dataDir
	if dataDir == "" {
		opts.FS = vfs.NewMem()
		dir = "relayer"
	}
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open relayed store at %q: %w", dataDir, err)
	}
	logger.Info("Opened relayed message store", "dir", dataDir, "memory", dataDir == "")
	return &Store{log: logger, db: db}, nil
}

func recordKey(hash common.Hash) []byte {
	key := make([]byte, 0, len(relayedPrefix)+common.HashLength)
	key = append(key, relayedPrefix...)
	return append(key, hash.Bytes()...)
}

// MarkRelayed writes all records in one synced batch.
func (s *Store) MarkRelayed(records ...Record) error {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.closed {
		return ErrClosed
	}
	batch := s.db.NewBatch()
	defer batch.Close()
	for _, r := range records {
		enc, err := rlp.EncodeToBytes(&r)
		if err != nil {
			return fmt.Errorf("failed to encode record %s: %w", r.MessageHash, err)
		}
		if err := batch.Set(recordKey(r.MessageHash), enc, nil); err != nil {
			return err
		}
	}
	return batch.Commit(pebble.Sync)
}

func (s *Store) Get(hash common.Hash) (Record, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.closed {
		return Record{}, ErrClosed
	}
	data, closer, err := s.db.Get(recordKey(hash))
	if errors.Is(err, pebble.ErrNotFound) {
		return Record{}, ErrNotFound
	} else if err != nil {
		return Record{}, err
	}
	defer closer.Close()
	var r Record
	if err := rlp.DecodeBytes(data, &r); err != nil {
		return Record{}, fmt.Errorf("corrupt record %s: %w", hash, err)
	}
	return r, nil
}

func (s *Store) IsRelayed(hash common.Hash) (bool, error) {
	_, err := s.Get(hash)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// List returns up to limit records ordered by message hash. A limit of zero
// or less returns every record.
func (s *Store) List(limit int) ([]Record, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: relayedPrefix,
		UpperBound: prefixEnd(relayedPrefix),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var out []Record
	for iter.First(); iter.Valid(); iter.Next() {
		if limit > 0 && len(out) >= limit {
			break
		}
		var r Record
		if err := rlp.DecodeBytes(iter.Value(), &r); err != nil {
			return nil, fmt.Errorf("corrupt record at key %x: %w", iter.Key(), err)
		}
		out = append(out, r)
	}
	return out, iter.Error()
}

func (s *Store) Close() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	return s.db.Close()
}

func prefixEnd(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

type pebbleLogger struct {
	log log.Logger
}

func (l *pebbleLogger) Infof(format string, args ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, args...), "module", "pebble")
}

func (l *pebbleLogger) Errorf(format string, args ...interface{}) {
	l.log.Error(fmt.Sprintf(format, args...), "module", "pebble")
}

func (l *pebbleLogger) Fatalf(format string, args ...interface{}) {
	l.log.Crit(fmt.Sprintf(format, args...), "module", "pebble")
}
