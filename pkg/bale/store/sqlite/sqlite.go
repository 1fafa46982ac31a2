package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hamza2masmoudi/BALE-project-sub001/pkg/bale/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite verdict database with WAL mode enabled and
// initializes the schema if needed.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS verdicts (
	id TEXT PRIMARY KEY,
	pack TEXT,
	goal TEXT NOT NULL,
	proved INTEGER NOT NULL,
	value_json TEXT,
	trace_json TEXT,
	evaluated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_verdicts_goal ON verdicts(goal, evaluated_at);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveVerdict inserts or replaces a verdict record
func (s *sqliteStore) SaveVerdict(ctx context.Context, r store.Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO verdicts (id, pack, goal, proved, value_json, trace_json, evaluated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Pack, r.Goal, boolToInt(r.Proved), r.ValueJSON, r.TraceJSON,
		r.EvaluatedAt.UTC().Format(time.RFC3339Nano))
	return err
}

// GetVerdict retrieves a verdict record by ID
func (s *sqliteStore) GetVerdict(ctx context.Context, id string) (store.Record, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, pack, goal, proved, value_json, trace_json, evaluated_at
		FROM verdicts WHERE id = ?`, id)

	r, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return store.Record{}, false, nil
	}
	if err != nil {
		return store.Record{}, false, err
	}
	return r, true, nil
}

// ListVerdicts returns the most recent verdicts for a goal, newest first
func (s *sqliteStore) ListVerdicts(ctx context.Context, goal string, limit int) ([]store.Record, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, pack, goal, proved, value_json, trace_json, evaluated_at
		FROM verdicts`
	args := []any{}
	if goal != "" {
		query += " WHERE goal = ?"
		args = append(args, goal)
	}
	query += " ORDER BY evaluated_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (store.Record, error) {
	var r store.Record
	var proved int
	var evaluatedAt string

	if err := row.Scan(&r.ID, &r.Pack, &r.Goal, &proved, &r.ValueJSON, &r.TraceJSON, &evaluatedAt); err != nil {
		return store.Record{}, err
	}

	r.Proved = proved != 0
	t, err := time.Parse(time.RFC3339Nano, evaluatedAt)
	if err != nil {
		return store.Record{}, err
	}
	r.EvaluatedAt = t
	return r, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
