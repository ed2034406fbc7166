// Package store persists finalized shapes in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"gridsketch/internal/draw"
)

const schema = `
CREATE TABLE IF NOT EXISTS shapes (
    seq        INTEGER PRIMARY KEY AUTOINCREMENT,
    id         TEXT NOT NULL UNIQUE,
    type       TEXT NOT NULL,
    attributes TEXT NOT NULL,
    created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens (creating if needed) the sqlite database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	// escape the path so '?' and '#' in file names stay part of it
	u := url.URL{Path: path}
	dsn := "file:" + u.EscapedPath() + "?mode=rwc&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return New(db), nil
}

// Init creates the schema.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }

// Save inserts a shape. Saving the same id twice fails.
func (s *Store) Save(ctx context.Context, shape draw.Shape) error {
	attrs, err := json.Marshal(shape.Attributes)
	if err != nil {
		return fmt.Errorf("encode attributes: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
        INSERT INTO shapes (id, type, attributes)
        VALUES (?, ?, ?)
    `, shape.ID, string(shape.Type), string(attrs))
	if err != nil {
		return fmt.Errorf("save shape %s: %w", shape.ID, err)
	}
	return nil
}

// List returns every stored shape in the order it was saved.
func (s *Store) List(ctx context.Context) ([]draw.Shape, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, type, attributes
        FROM shapes
        ORDER BY seq
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []draw.Shape
	for rows.Next() {
		var (
			sh    draw.Shape
			typ   string
			attrs string
		)
		if err := rows.Scan(&sh.ID, &typ, &attrs); err != nil {
			return nil, err
		}
		sh.Type = draw.ShapeType(typ)
		if err := json.Unmarshal([]byte(attrs), &sh.Attributes); err != nil {
			return nil, fmt.Errorf("decode attributes of %s: %w", sh.ID, err)
		}
		out = append(out, sh)
	}
	return out, rows.Err()
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shapes`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
