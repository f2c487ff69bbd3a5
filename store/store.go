// Package store keeps conversion history in a local sqlite database.
package store

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const schema = `
CREATE TABLE IF NOT EXISTS conversions (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	created   TEXT NOT NULL,
	source    TEXT NOT NULL,
	framework TEXT NOT NULL,
	nodes     INTEGER NOT NULL,
	payload   TEXT NOT NULL
);
`

// Record is a single remembered conversion.
type Record struct {
	ID        int64
	Created   time.Time
	Source    string
	Framework string
	Nodes     int
	Payload   string
}

// History is a conversion log backed by a sqlite file.
// Safe for concurrent use, access to the single connection is serialized.
type History struct {
	mu   sync.Mutex
	conn *sqlite.Conn
	log  *zap.Logger
}

// Open creates or opens history database at path.
func Open(path string, log *zap.Logger) (*History, error) {
	if log == nil {
		log = zap.NewNop()
	}
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite, sqlite.OpenCreate, sqlite.OpenWAL)
	if err != nil {
		return nil, fmt.Errorf("open history db (%s): %w", path, err)
	}
	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("prepare history db (%s): %w", path, err)
	}
	return &History{conn: conn, log: log.Named("history")}, nil
}

// Close releases the underlying connection. Safe to call on nil receiver.
func (h *History) Close() error {
	if h == nil || h.conn == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	err := h.conn.Close()
	h.conn = nil
	return err
}

// Save remembers a finished conversion. Nil receiver means history is
// disabled and the call is ignored.
func (h *History) Save(source, framework string, nodes int, payload []byte) error {
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	err := sqlitex.Execute(h.conn,
		`INSERT INTO conversions (created, source, framework, nodes, payload) VALUES (?, ?, ?, ?, ?)`,
		&sqlitex.ExecOptions{
			Args: []any{time.Now().UTC().Format(time.RFC3339), source, framework, nodes, string(payload)},
		})
	if err != nil {
		return fmt.Errorf("save conversion: %w", err)
	}
	h.log.Debug("Conversion recorded", zap.String("source", source), zap.Int("nodes", nodes))
	return nil
}

// List returns up to limit most recent conversions, newest first.
// Payload is not included, use Get for the full record.
func (h *History) List(limit int) ([]Record, error) {
	if h == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	var recs []Record
	err := sqlitex.Execute(h.conn,
		`SELECT id, created, source, framework, nodes FROM conversions ORDER BY id DESC LIMIT ?`,
		&sqlitex.ExecOptions{
			Args: []any{limit},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				r := Record{
					ID:        stmt.ColumnInt64(0),
					Source:    stmt.ColumnText(2),
					Framework: stmt.ColumnText(3),
					Nodes:     stmt.ColumnInt(4),
				}
				if t, err := time.Parse(time.RFC3339, stmt.ColumnText(1)); err == nil {
					r.Created = t
				}
				recs = append(recs, r)
				return nil
			},
		})
	if err != nil {
		return nil, fmt.Errorf("list conversions: %w", err)
	}
	return recs, nil
}

// Get returns a single stored conversion with its payload.
func (h *History) Get(id int64) (*Record, error) {
	if h == nil {
		return nil, fmt.Errorf("history is not enabled")
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	var rec *Record
	err := sqlitex.Execute(h.conn,
		`SELECT id, created, source, framework, nodes, payload FROM conversions WHERE id = ?`,
		&sqlitex.ExecOptions{
			Args: []any{id},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				r := Record{
					ID:        stmt.ColumnInt64(0),
					Source:    stmt.ColumnText(2),
					Framework: stmt.ColumnText(3),
					Nodes:     stmt.ColumnInt(4),
					Payload:   stmt.ColumnText(5),
				}
				if t, err := time.Parse(time.RFC3339, stmt.ColumnText(1)); err == nil {
					r.Created = t
				}
				rec = &r
				return nil
			},
		})
	if err != nil {
		return nil, fmt.Errorf("get conversion %d: %w", id, err)
	}
	if rec == nil {
		return nil, fmt.Errorf("conversion %d not found", id)
	}
	return rec, nil
}
