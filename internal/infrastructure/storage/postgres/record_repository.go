package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"nftcatalog/internal/domain/record"
)

type RecordRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewRecordRepository(pool *pgxpool.Pool, log *slog.Logger) *RecordRepository {
	return &RecordRepository{
		pool: pool,
		log:  log.With("component", "record_repository"),
	}
}

func (r *RecordRepository) Put(ctx context.Context, rec *record.Record) error {
	const query = `
		INSERT INTO records (id, name, description, image_url, rarity_score, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			image_url = EXCLUDED.image_url,
			rarity_score = EXCLUDED.rarity_score,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.Name, rec.Description, rec.ImageURL,
		rec.RarityScore, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		r.log.Error("failed to put record", "record_id", rec.ID, "error", err)
		return fmt.Errorf("put record: %w", err)
	}
	return nil
}

func (r *RecordRepository) Get(ctx context.Context, id string) (*record.Record, error) {
	const query = `
		SELECT id, name, description, image_url, rarity_score, created_at, updated_at
		FROM records
		WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, record.ErrNotFound
		}
		r.log.Error("failed to get record", "record_id", id, "error", err)
		return nil, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

func (r *RecordRepository) Values(ctx context.Context) ([]record.Record, error) {
	const query = `
		SELECT id, name, description, image_url, rarity_score, created_at, updated_at
		FROM records`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to enumerate records", "error", err)
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

func (r *RecordRepository) Remove(ctx context.Context, id string) (*record.Record, error) {
	const query = `
		DELETE FROM records
		WHERE id = $1
		RETURNING id, name, description, image_url, rarity_score, created_at, updated_at`

	row := r.pool.QueryRow(ctx, query, id)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, record.ErrNotFound
		}
		r.log.Error("failed to remove record", "record_id", id, "error", err)
		return nil, fmt.Errorf("remove record: %w", err)
	}
	return rec, nil
}

func scanRecord(row pgx.Row) (*record.Record, error) {
	var rec record.Record
	err := row.Scan(&rec.ID, &rec.Name, &rec.Description, &rec.ImageURL,
		&rec.RarityScore, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
