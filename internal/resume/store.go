package resume

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sponsorscout-engine/internal/domain"
	"sponsorscout-engine/internal/match"
)

// ErrNoResume signals that no resume has been stored yet.
var ErrNoResume = errors.New("no resume stored")

// Store persists the single current resume and its component projection.
// The agent core itself keeps nothing across runs; this store backs the
// ResumeStore collaborator boundary.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS resume (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  doc TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS resume_blocks (
  idx INTEGER PRIMARY KEY,
  block TEXT NOT NULL,
  indexed_at TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}
	return tx.Commit()
}

// LoadCurrentResume returns the stored resume, or ErrNoResume.
func (s *Store) LoadCurrentResume(ctx context.Context) (domain.Resume, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT doc FROM resume WHERE id = 1;`).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Resume{}, ErrNoResume
	}
	if err != nil {
		return domain.Resume{}, fmt.Errorf("load resume: %w", err)
	}

	var r domain.Resume
	if err := json.Unmarshal([]byte(doc), &r); err != nil {
		return domain.Resume{}, fmt.Errorf("decode resume: %w", err)
	}
	return r, nil
}

// Save replaces the current resume.
func (s *Store) Save(ctx context.Context, r domain.Resume) error {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode resume: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO resume(id, doc, updated_at) VALUES(1, ?, ?)
ON CONFLICT(id) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at;`,
		string(b), time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Reindex rebuilds the stored component projection from the current
// resume, reporting progress per block. onProgress may be nil.
func (s *Store) Reindex(ctx context.Context, onProgress func(done, total int)) ([]string, error) {
	r, err := s.LoadCurrentResume(ctx)
	if err != nil {
		return nil, err
	}

	comps := match.ComponentsFromResume(r)
	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM resume_blocks;`); err != nil {
		return nil, err
	}
	for i, block := range comps.Blocks {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO resume_blocks(idx, block, indexed_at) VALUES(?, ?, ?);`,
			i, block, now,
		); err != nil {
			return nil, err
		}
		if onProgress != nil {
			onProgress(i+1, len(comps.Blocks))
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return comps.Blocks, nil
}
