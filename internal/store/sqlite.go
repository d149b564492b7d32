package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Open opens the local SQLite database backing all stores. A missing file
// is created empty, which restores every store to an empty state.
func Open(path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return db, nil
}

// SQLitePersister keeps one table per entity type. Each row is a
// JSON-encoded record; the seq column preserves insertion order. Save
// replaces the whole table inside one transaction, the moral equivalent of
// an atomic whole-file rewrite.
type SQLitePersister[T any] struct {
	db    *sql.DB
	table string
}

// NewSQLitePersister creates the backing table when it does not exist yet.
// table must be a trusted identifier, not user input.
func NewSQLitePersister[T any](db *sql.DB, table string) (*SQLitePersister[T], error) {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		seq  INTEGER PRIMARY KEY AUTOINCREMENT,
		data TEXT NOT NULL
	)`, table)
	if _, err := db.Exec(ddl); err != nil {
		return nil, fmt.Errorf("create table %s: %w", table, err)
	}
	return &SQLitePersister[T]{db: db, table: table}, nil
}

func (p *SQLitePersister[T]) Load(ctx context.Context) ([]*T, error) {
	rows, err := p.db.QueryContext(ctx, fmt.Sprintf(`SELECT data FROM %s ORDER BY seq`, p.table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*T
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		rec := new(T)
		if err := json.Unmarshal(data, rec); err != nil {
			return nil, fmt.Errorf("decode %s record: %w", p.table, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (p *SQLitePersister[T]) Save(ctx context.Context, records []*T) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, p.table)); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`INSERT INTO %s (data) VALUES (?)`, p.table))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode %s record: %w", p.table, err)
		}
		if _, err := stmt.ExecContext(ctx, string(data)); err != nil {
			return err
		}
	}
	return tx.Commit()
}
