// Package history journals hide and reveal operations in a local sqlite
// database so previous outputs can be traced back to their inputs.
package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	dbutil "github.com/llehouerou/stegano/internal/db"
)

// maxEntries bounds the journal; older rows are pruned on insert.
const maxEntries = 1000

// Entry is one journaled operation.
type Entry struct {
	ID            int64
	CreatedAt     time.Time
	Command       string // hide, reveal, merge, unmerge
	Method        string
	CarrierPath   string
	SecretPath    string // empty for extraction
	OutputPath    string
	CarrierWidth  int
	CarrierHeight int
	PayloadSlots  int  // carrier byte slots used, header included
	Resized       bool // an image was resized to make the payload fit
}

// Recorder is the journal contract used by the commands.
type Recorder interface {
	Record(e Entry) error
	List(limit int) ([]Entry, error)
	Close() error
}

// Verify Manager implements Recorder at compile time.
var _ Recorder = (*Manager)(nil)

type Manager struct {
	db *sql.DB
}

// Open opens (and creates if needed) the journal at path.
func Open(path string) (*Manager, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// The CLI is sequential; one connection also keeps :memory: databases intact.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	return m.db.Close()
}

// Record appends e and prunes entries beyond maxEntries.
func (m *Manager) Record(e Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	return dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO operations (created_at, command, method, carrier_path, secret_path, output_path,
			                        carrier_width, carrier_height, payload_slots, resized)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, e.CreatedAt.UnixNano(), e.Command, e.Method, e.CarrierPath, dbutil.NullString(e.SecretPath), e.OutputPath,
			e.CarrierWidth, e.CarrierHeight, e.PayloadSlots, e.Resized)
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			DELETE FROM operations WHERE id NOT IN (
				SELECT id FROM operations ORDER BY created_at DESC, id DESC LIMIT ?
			)
		`, maxEntries)
		return err
	})
}

// List returns the most recent entries first. A limit <= 0 returns all.
func (m *Manager) List(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = maxEntries
	}
	rows, err := m.db.Query(`
		SELECT id, created_at, command, method, carrier_path, secret_path, output_path,
		       carrier_width, carrier_height, payload_slots, resized
		FROM operations
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt int64
		var secretPath sql.NullString
		if err := rows.Scan(&e.ID, &createdAt, &e.Command, &e.Method, &e.CarrierPath, &secretPath, &e.OutputPath,
			&e.CarrierWidth, &e.CarrierHeight, &e.PayloadSlots, &e.Resized); err != nil {
			return nil, err
		}
		e.CreatedAt = time.Unix(0, createdAt)
		e.SecretPath = dbutil.NullStringValue(secretPath)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
