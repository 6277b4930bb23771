// Package ttstore persists a sample of the transposition table across CLI invocations, so a
// fresh process can warm-start instead of searching cold every time. This is a cache of
// already-computed search results, not an opening book: no move is ever chosen or biased by
// anything other than the search kernel itself, and a missing or empty store degrades to
// ordinary cold search rather than an error.
package ttstore

import (
	"encoding/json"

	"github.com/dgraph-io/badger/v4"
	"github.com/herohde/dominoengine/pkg/search"
)

const snapshotKey = "tt_snapshot"

// DefaultMinDepth bounds what gets persisted: shallow entries churn too fast across distinct
// positions to be worth the disk round-trip.
const DefaultMinDepth = 6

// Store wraps a BadgerDB directory holding one serialized TT snapshot.
type Store struct {
	db *badger.DB
}

// Open opens (creating if absent) a badger database at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save snapshots every slot at or above minDepth and persists it, overwriting any prior
// snapshot.
func (s *Store) Save(tt *search.TranspositionTable, minDepth int) error {
	snap := tt.Snapshot(minDepth)

	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(snapshotKey), data)
	})
}

// Load restores the persisted snapshot into tt, if one exists. A missing snapshot is not an
// error -- the table simply starts cold.
func (s *Store) Load(tt *search.TranspositionTable) error {
	var snap []search.SnapshotEntry

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(snapshotKey))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})
	if err != nil {
		return err
	}

	tt.Restore(snap)
	return nil
}
