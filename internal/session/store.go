// Package session persists editing sessions between CLI invocations.
// Each named session holds one JSON-encoded certificate in a local
// SQLite database under the data directory. The record model itself
// stays in memory while a command runs; the store is only touched at
// command start and end.
package session

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dukaforge/drmd/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// DBFileName is the SQLite file created under the data directory.
const DBFileName = "drmd.db"

// ErrNotFound is returned when a named session does not exist.
var ErrNotFound = errors.New("session not found")

// Info describes a stored session.
type Info struct {
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store is the SQLite-backed session store.
type Store struct {
	db *sql.DB
}

// Open creates the data directory if needed, opens the session
// database, and ensures the schema exists.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", filepath.Join(dataDir, DBFileName))
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init session schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts the certificate state for a named session.
func (s *Store) Save(name string, cert *types.Certificate) error {
	state, err := json.Marshal(cert)
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(`
		INSERT INTO sessions (name, state, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at`,
		name, string(state), now, now)
	if err != nil {
		return fmt.Errorf("save session %q: %w", name, err)
	}
	return nil
}

// Load returns the certificate stored under name, or ErrNotFound.
func (s *Store) Load(name string) (*types.Certificate, error) {
	var state string
	err := s.db.QueryRow(`SELECT state FROM sessions WHERE name = ?`, name).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session %q: %w", name, err)
	}
	var cert types.Certificate
	if err := json.Unmarshal([]byte(state), &cert); err != nil {
		return nil, fmt.Errorf("decode session %q: %w", name, err)
	}
	return &cert, nil
}

// Delete removes a named session. Deleting a missing session returns
// ErrNotFound.
func (s *Store) Delete(name string) error {
	res, err := s.db.Exec(`DELETE FROM sessions WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete session %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns the stored sessions ordered by name.
func (s *Store) List() ([]Info, error) {
	rows, err := s.db.Query(`SELECT name, created_at, updated_at FROM sessions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var infos []Info
	for rows.Next() {
		var info Info
		var created, updated string
		if err := rows.Scan(&info.Name, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		info.CreatedAt, _ = time.Parse(time.RFC3339, created)
		info.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}
