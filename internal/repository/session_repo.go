package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

const createKVTable = `
	CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

type sqliteSessionStorage struct {
	db  *sql.DB
	log *logrus.Logger
}

// NewSQLiteSessionStorage stores session records in a kv table of db,
// creating the table if it does not exist.
func NewSQLiteSessionStorage(db *sql.DB, logger *logrus.Logger) (domain.SessionStorage, error) {
	if _, err := db.Exec(createKVTable); err != nil {
		logger.Errorf("Repository: Failed to create kv table: %v", err)
		return nil, fmt.Errorf("could not initialise session storage: %w", err)
	}
	return &sqliteSessionStorage{db: db, log: logger}, nil
}

func (s *sqliteSessionStorage) Get(key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.log.Debugf("Repository: No stored value for key %q", key)
			return nil, false, nil
		}
		s.log.Errorf("Repository: Failed to read key %q: %v", key, err)
		return nil, false, fmt.Errorf("could not read key %q: %w", key, err)
	}
	return []byte(value), true, nil
}

func (s *sqliteSessionStorage) Set(key string, value []byte) error {
	query := `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`
	if _, err := s.db.Exec(query, key, string(value)); err != nil {
		s.log.Errorf("Repository: Failed to write key %q: %v", key, err)
		return fmt.Errorf("could not write key %q: %w", key, err)
	}
	s.log.Debugf("Repository: Stored %d bytes under key %q", len(value), key)
	return nil
}

func (s *sqliteSessionStorage) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		s.log.Errorf("Repository: Failed to delete key %q: %v", key, err)
		return fmt.Errorf("could not delete key %q: %w", key, err)
	}
	return nil
}

type memorySessionStorage struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemorySessionStorage keeps the session only for the life of the process.
func NewMemorySessionStorage() domain.SessionStorage {
	return &memorySessionStorage{values: map[string][]byte{}}
}

func (s *memorySessionStorage) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *memorySessionStorage) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.values[key] = v
	return nil
}

func (s *memorySessionStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
