// Package kvstore is the kiosk's persistent key/value capability: a narrow
// get/set contract over a small SQLite table. Storage failure is absorbed
// here, not propagated; on any error the store degrades to in-memory
// defaults and the page never notices.
package kvstore

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Well-known keys. Consumers should treat any persisted value as advisory
// and validate it against current page state before use.
const (
	KeyAccordionOpen = "accordion.open"
	KeyTheme         = "theme"
)

// Store is a string key/value store. All methods are total: they return a
// usable value (or apply the caller's default) no matter what the backing
// database does.
type Store struct {
	mu    sync.Mutex
	db    *sql.DB // nil when running memory-only
	cache map[string]string
	log   *zap.Logger
}

// Open opens or creates the store at path. It never fails: if the database
// cannot be opened or migrated, the returned store is memory-only for the
// life of the process.
func Open(path string, log *zap.Logger) *Store {
	s := &Store{cache: make(map[string]string), log: log}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Warn("kvstore: directory unavailable, running memory-only", zap.Error(err))
		return s
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Warn("kvstore: open failed, running memory-only", zap.Error(err))
		return s
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		log.Warn("kvstore: migration failed, running memory-only", zap.Error(err))
		_ = db.Close()
		return s
	}
	s.db = db
	s.warm()
	return s
}

// warm loads existing rows into the cache so reads never touch the database
// on the event loop.
func (s *Store) warm() {
	rows, err := s.db.Query(`SELECT key, value FROM kv`)
	if err != nil {
		s.log.Warn("kvstore: warm read failed", zap.Error(err))
		return
	}
	defer rows.Close()
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			continue
		}
		s.cache[k] = v
	}
	if err := rows.Err(); err != nil {
		s.log.Warn("kvstore: warm scan failed", zap.Error(err))
	}
}

// Get returns the stored value for key, or def when the key is absent.
func (s *Store) Get(key, def string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.cache[key]; ok {
		return v
	}
	return def
}

// Set stores value under key. A write failure leaves the in-memory value in
// place so the current session still behaves consistently.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = value
	if s.db == nil {
		return
	}
	if _, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value); err != nil {
		s.log.Warn("kvstore: write failed", zap.String("key", key), zap.Error(err))
	}
}

// Delete removes key. Absent keys and write failures are both fine.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, key)
	if s.db == nil {
		return
	}
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		s.log.Warn("kvstore: delete failed", zap.String("key", key), zap.Error(err))
	}
}

// Close releases the database handle, if any.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		_ = s.db.Close()
		s.db = nil
	}
}
