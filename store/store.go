package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS items (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	price      REAL NOT NULL,
	created_at TEXT NOT NULL
);`

// Item is one persisted line item.
type Item struct {
	ID    string
	Name  string
	Price float64
}

// Store is a SQLite-backed ledger of priced line items.
//
// All methods are safe for concurrent use.
type Store struct {
	mu sync.RWMutex
	db *sql.DB
}

// Open opens (creating if needed) the ledger at path and applies the schema.
//
// Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// AddItem persists a named, priced item and returns the stored row.
func (s *Store) AddItem(name string, price float64) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := Item{
		ID:    uuid.NewString(),
		Name:  name,
		Price: price,
	}
	_, err := s.db.Exec(
		`INSERT INTO items (id, name, price, created_at) VALUES (?, ?, ?, ?)`,
		item.ID, item.Name, item.Price, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return Item{}, fmt.Errorf("insert item: %w", err)
	}
	return item, nil
}

// Items returns all persisted items in insertion order.
func (s *Store) Items() ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT id, name, price FROM items ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Price); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// Count returns the number of persisted items.
func (s *Store) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

// Total returns the sum of item prices, zero for an empty ledger.
func (s *Store) Total() (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	if err := s.db.QueryRow(`SELECT COALESCE(SUM(price), 0) FROM items`).Scan(&total); err != nil {
		return 0, fmt.Errorf("total items: %w", err)
	}
	return total, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	return nil
}
