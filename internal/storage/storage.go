// Package storage provides persistent storage for the engine: saved game
// sessions (so a CLI driver can resume a game across process restarts) and
// a solver memo table keyed by sfen position string (so naitou-solve never
// redoes the leaf scan for a position it has already searched).
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const (
	sessionPrefix = "session/"
	solverPrefix  = "solver/"
)

// Session is everything needed to resume a game: the starting handicap and
// every HUM move played so far. COM's replies, and the progress/book state
// that governs them, are deterministic functions of (handicap, hum moves),
// so they're recomputed by replay rather than stored directly.
type Session struct {
	ID       string   `json:"id"`
	Handicap int      `json:"handicap"`
	HumMoves []string `json:"hum_moves"`
}

// SolverEntry is one memoized search result for a position, keyed by its
// sfen position string.
type SolverEntry struct {
	BestMove     string `json:"best_move"`
	ScoreNega    uint8  `json:"score_nega"`
	CapturePrice uint8  `json:"capture_price"`
	DisadvPrice  uint8  `json:"disadv_price"`
	Resigns      bool   `json:"resigns"`
	HumCheckmate bool   `json:"hum_checkmate"`
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// NewStorage opens (creating if necessary) the database under the
// platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return openStorage(dbDir)
}

// NewStorageAt opens (creating if necessary) the database at an explicit
// directory, bypassing the platform data directory lookup. Used by tests
// and by callers that want an isolated database (e.g. -db flag).
func NewStorageAt(dbDir string) (*Storage, error) {
	return openStorage(dbDir)
}

func openStorage(dbDir string) (*Storage, error) {
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession persists sess, keyed by sess.ID.
func (s *Storage) SaveSession(sess Session) error {
	if sess.ID == "" {
		return fmt.Errorf("storage: session id is empty")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(sessionPrefix+sess.ID), data)
	})
}

// LoadSession loads the session saved under id.
func (s *Storage) LoadSession(id string) (Session, error) {
	var sess Session

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(sessionPrefix + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &sess)
		})
	})
	if err != nil {
		return Session{}, err
	}
	return sess, nil
}

// DeleteSession removes a saved session.
func (s *Storage) DeleteSession(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(sessionPrefix + id))
	})
}

// ListSessionIDs returns every saved session's ID.
func (s *Storage) ListSessionIDs() ([]string, error) {
	var ids []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(sessionPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().KeyCopy(nil)
			ids = append(ids, string(key[len(prefix):]))
		}
		return nil
	})
	return ids, err
}

// SaveSolverEntry memoizes a search result for an sfen position string.
func (s *Storage) SaveSolverEntry(sfenPos string, entry SolverEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(solverPrefix+sfenPos), data)
	})
}

// LoadSolverEntry looks up a memoized search result, returning
// (entry, true, nil) on a hit and (SolverEntry{}, false, nil) on a miss.
func (s *Storage) LoadSolverEntry(sfenPos string) (SolverEntry, bool, error) {
	var entry SolverEntry
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(solverPrefix + sfenPos))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry)
		})
	})
	if err != nil {
		return SolverEntry{}, false, err
	}
	return entry, found, nil
}
