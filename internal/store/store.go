// Package store persists the four application collections (users, tickets,
// categories, session) as whole JSON documents keyed in a single sqlite
// table. Every collection is read and written in full; a load never fails,
// it falls back to the caller's default when the row is missing or the
// stored JSON does not decode.
package store

import (
	"database/sql"
	"embed"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/EYOB-A19/Astu-compliant-system/internal/models"
)

//go:embed schema.sql
var schemaFS embed.FS

// Collection keys. These match the document names of the persisted layout.
const (
	keyUsers      = "astu_users"
	keyTickets    = "astu_tickets"
	keyCategories = "astu_categories"
	keySession    = "astu_session"
)

// Store is the handle passed into every operation that reads or writes
// persisted state. One store per process; it is never torn down except on
// shutdown.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open creates the backing file if needed, applies the schema and returns a
// ready store.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	schema, err := fs.ReadFile(schemaFS, "schema.sql")
	if err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(string(schema)); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// load decodes the named document into target. Missing rows and undecodable
// values leave target untouched, so the caller's zero value is the default.
func (s *Store) load(key string, target any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var raw string
	err := s.db.QueryRow(`SELECT value FROM collections WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		return
	}
	// Undecodable content falls back to the caller's default.
	_ = json.Unmarshal([]byte(raw), target)
}

// save serializes value and writes it as the named document, replacing any
// previous content in full.
func (s *Store) save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.Exec(`
		INSERT INTO collections (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(raw))
	return err
}

func (s *Store) delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM collections WHERE key = ?`, key)
	return err
}

func (s *Store) Users() []models.User {
	var users []models.User
	s.load(keyUsers, &users)
	return users
}

func (s *Store) SaveUsers(users []models.User) error {
	return s.save(keyUsers, users)
}

func (s *Store) Tickets() []models.Ticket {
	var tickets []models.Ticket
	s.load(keyTickets, &tickets)
	return tickets
}

func (s *Store) SaveTickets(tickets []models.Ticket) error {
	return s.save(keyTickets, tickets)
}

func (s *Store) Categories() []models.Category {
	var categories []models.Category
	s.load(keyCategories, &categories)
	return categories
}

func (s *Store) SaveCategories(categories []models.Category) error {
	return s.save(keyCategories, categories)
}

// Session returns the persisted session record, or nil when logged out.
func (s *Store) Session() *models.Session {
	var session *models.Session
	s.load(keySession, &session)
	return session
}

func (s *Store) SetSession(session models.Session) error {
	return s.save(keySession, session)
}

// ClearSession removes the session document unconditionally.
func (s *Store) ClearSession() error {
	return s.delete(keySession)
}
