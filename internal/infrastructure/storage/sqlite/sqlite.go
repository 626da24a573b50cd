package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"nftcatalog/internal/domain/record"
)

// Storage is the embedded durable store, a single records table keyed
// by id. The schema is created on open, so a fresh file works without
// any external migration step.
type Storage struct {
	db  *sql.DB
	log *slog.Logger
}

func New(path string, log *slog.Logger) (*Storage, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Storage{
		db:  db,
		log: log.With("component", "sqlite_storage"),
	}

	if err := s.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init tables: %w", err)
	}

	return s, nil
}

func (s *Storage) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			rarity_score REAL NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			updated_at TEXT
		);
	`)
	return err
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) Put(ctx context.Context, rec *record.Record) error {
	var updatedAt sql.NullString
	if rec.UpdatedAt != nil {
		updatedAt = sql.NullString{String: rec.UpdatedAt.Format(time.RFC3339Nano), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (id, name, description, image_url, rarity_score, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			image_url = excluded.image_url,
			rarity_score = excluded.rarity_score,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at
	`, rec.ID, rec.Name, rec.Description, rec.ImageURL, rec.RarityScore,
		rec.CreatedAt.Format(time.RFC3339Nano), updatedAt)

	if err != nil {
		s.log.Error("failed to put record", "record_id", rec.ID, "error", err)
		return fmt.Errorf("put record: %w", err)
	}
	return nil
}

func (s *Storage) Get(ctx context.Context, id string) (*record.Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, image_url, rarity_score, created_at, updated_at
		FROM records
		WHERE id = ?
	`, id)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, record.ErrNotFound
		}
		s.log.Error("failed to get record", "record_id", id, "error", err)
		return nil, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

func (s *Storage) Values(ctx context.Context) ([]record.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, image_url, rarity_score, created_at, updated_at
		FROM records
	`)
	if err != nil {
		s.log.Error("failed to enumerate records", "error", err)
		return nil, fmt.Errorf("enumerate records: %w", err)
	}
	defer rows.Close()

	var records []record.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("enumerate records: %w", err)
	}
	return records, nil
}

// Remove reads and deletes in one transaction so the removed record
// can be returned to the caller.
func (s *Storage) Remove(ctx context.Context, id string) (*record.Record, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin remove: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `
		SELECT id, name, description, image_url, rarity_score, created_at, updated_at
		FROM records
		WHERE id = ?
	`, id)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, record.ErrNotFound
		}
		s.log.Error("failed to read record for remove", "record_id", id, "error", err)
		return nil, fmt.Errorf("remove record: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id); err != nil {
		s.log.Error("failed to delete record", "record_id", id, "error", err)
		return nil, fmt.Errorf("remove record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit remove: %w", err)
	}
	return rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*record.Record, error) {
	var rec record.Record
	var createdAt string
	var updatedAt sql.NullString

	err := row.Scan(&rec.ID, &rec.Name, &rec.Description, &rec.ImageURL,
		&rec.RarityScore, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if updatedAt.Valid {
		t, err := time.Parse(time.RFC3339Nano, updatedAt.String)
		if err != nil {
			return nil, fmt.Errorf("parse updated_at: %w", err)
		}
		rec.UpdatedAt = &t
	}

	return &rec, nil
}
