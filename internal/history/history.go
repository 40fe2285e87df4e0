package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Operation is one recorded per-file outcome.
type Operation struct {
	ID          int64
	SessionID   string
	Outcome     string
	Source      string
	Destination string
	Category    string
	Reason      string
	ErrorText   string
	DryRun      bool
	CreatedAt   time.Time
}

// Store manages operation history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Record appends one operation row. CreatedAt defaults to now when unset.
func (s *Store) Record(ctx context.Context, op Operation) error {
	createdAt := op.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO operations (
            session_id, outcome, source, destination, category, reason,
            error_text, dry_run, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		op.SessionID,
		op.Outcome,
		op.Source,
		nullableString(op.Destination),
		nullableString(op.Category),
		nullableString(op.Reason),
		nullableString(op.ErrorText),
		boolToInt(op.DryRun),
		createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert operation: %w", err)
	}
	return nil
}

// Recent returns up to limit operations, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Operation, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+operationColumns+` FROM operations ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent operations: %w", err)
	}
	defer rows.Close()

	var ops []Operation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, rows.Err()
}

// BySession returns the operations recorded under one session ID in
// insertion order.
func (s *Store) BySession(ctx context.Context, sessionID string) ([]Operation, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+operationColumns+` FROM operations WHERE session_id = ? ORDER BY id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query session operations: %w", err)
	}
	defer rows.Close()

	var ops []Operation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, rows.Err()
}

// Stats returns a count of operations grouped by outcome.
func (s *Store) Stats(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT outcome, COUNT(1) FROM operations GROUP BY outcome`)
	if err != nil {
		return nil, fmt.Errorf("history stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]int)
	for rows.Next() {
		var outcome string
		var count int
		if err := rows.Scan(&outcome, &count); err != nil {
			return nil, err
		}
		stats[outcome] = count
	}
	return stats, rows.Err()
}

// Clear removes all operation rows.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM operations`)
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	return res.RowsAffected()
}

const operationColumns = "id, session_id, outcome, source, destination, category, reason, error_text, dry_run, created_at"

func scanOperation(scanner interface{ Scan(dest ...any) error }) (Operation, error) {
	var (
		op          Operation
		destination sql.NullString
		category    sql.NullString
		reason      sql.NullString
		errorText   sql.NullString
		dryRun      int
		createdRaw  string
	)

	if err := scanner.Scan(
		&op.ID,
		&op.SessionID,
		&op.Outcome,
		&op.Source,
		&destination,
		&category,
		&reason,
		&errorText,
		&dryRun,
		&createdRaw,
	); err != nil {
		return Operation{}, err
	}

	op.Destination = destination.String
	op.Category = category.String
	op.Reason = reason.String
	op.ErrorText = errorText.String
	op.DryRun = dryRun != 0

	if created, err := parseTimeString(createdRaw); err == nil {
		op.CreatedAt = created
	}
	return op, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
