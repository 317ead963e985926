// Package storage archives finished games in a badger database.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chess-go/internal/errors"
)

// Storage keys
const (
	gamePrefix  = "game/"
	keySequence = "seq/game"
)

// Result reasons recorded with a game.
const (
	ReasonCheckmate = "checkmate"
	ReasonStalemate = "stalemate"
	ReasonFifty     = "fifty move rule"
	ReasonThreefold = "three repeat rule"
	ReasonQuit      = "quit"
)

// GameRecord is one finished (or abandoned) game.
type GameRecord struct {
	ID       uint64    `json:"id"`
	White    string    `json:"white"`
	Black    string    `json:"black"`
	Winner   string    `json:"winner,omitempty"` // "white", "black" or empty for no winner
	Reason   string    `json:"reason"`
	Moves    []string  `json:"moves"`
	Plies    int       `json:"plies"`
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`

	// Promotions maps a ply index in Moves to the piece chosen there.
	Promotions map[int]string `json:"promotions,omitempty"`

	// Opening classification, filled in on export.
	ECO       string `json:"eco,omitempty"`
	Opening   string `json:"opening,omitempty"`
	Variation string `json:"variation,omitempty"`
}

// Duration is the wall-clock length of the game.
func (r *GameRecord) Duration() time.Duration {
	return r.Finished.Sub(r.Started)
}

// Stats summarises the archive.
type Stats struct {
	Games      int            `json:"games"`
	WhiteWins  int            `json:"white_wins"`
	BlackWins  int            `json:"black_wins"`
	Draws      int            `json:"draws"`
	Abandoned  int            `json:"abandoned"`
	ByReason   map[string]int `json:"by_reason"`
	TotalPlies int            `json:"total_plies"`
}

// Store wraps BadgerDB for persistent storage
type Store struct {
	db  *badger.DB
	seq *badger.Sequence
}

// Open opens the archive in dir, or an in-memory archive when dir is empty.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening game database %q", dir)
	}

	seq, err := db.GetSequence([]byte(keySequence), 16)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "allocating game ids")
	}

	return &Store{db: db, seq: seq}, nil
}

// Close closes the database
func (s *Store) Close() error {
	if s.seq != nil {
		if err := s.seq.Release(); err != nil {
			s.db.Close()
			return err
		}
		s.seq = nil
	}
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func gameKey(id uint64) []byte {
	// Zero padding keeps iteration in id order.
	return []byte(fmt.Sprintf("%s%020d", gamePrefix, id))
}

// SaveGame assigns rec an id when it has none and stores it.
func (s *Store) SaveGame(rec *GameRecord) error {
	if rec.ID == 0 {
		next, err := s.seq.Next()
		if err != nil {
			return errors.Wrap(err, "allocating game id")
		}
		// Sequences start at zero; ids start at one.
		rec.ID = next + 1
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(rec.ID), data)
	})
}

// LoadGame loads one record by id.
func (s *Store) LoadGame(id uint64) (*GameRecord, error) {
	rec := &GameRecord{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("game %d: %w", id, errors.ErrRecordNotFound)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListGames returns every record in id order.
func (s *Store) ListGames() ([]*GameRecord, error) {
	var games []*GameRecord

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(gamePrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			rec := &GameRecord{}
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, rec)
			})
			if err != nil {
				return errors.Wrapf(err, "decoding %s", strings.TrimPrefix(string(it.Item().Key()), gamePrefix))
			}
			games = append(games, rec)
		}
		return nil
	})

	return games, err
}

// DeleteGame removes one record.
func (s *Store) DeleteGame(id uint64) error {
	if _, err := s.LoadGame(id); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(gameKey(id))
	})
}

// Stats tallies results over the whole archive.
func (s *Store) Stats() (*Stats, error) {
	games, err := s.ListGames()
	if err != nil {
		return nil, err
	}

	stats := &Stats{ByReason: make(map[string]int)}
	for _, g := range games {
		stats.Games++
		stats.TotalPlies += g.Plies
		stats.ByReason[g.Reason]++
		switch {
		case g.Winner == "white":
			stats.WhiteWins++
		case g.Winner == "black":
			stats.BlackWins++
		case g.Reason == ReasonQuit:
			stats.Abandoned++
		default:
			stats.Draws++
		}
	}
	return stats, nil
}
