package store

import (
	"context"
	"errors"
	"time"

	"github.com/geneblend/geneblend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CalculationStore struct {
	db *pgxpool.Pool
}

func NewCalculationStore(db *pgxpool.Pool) *CalculationStore {
	return &CalculationStore{db: db}
}

func (s *CalculationStore) Create(ctx context.Context, c *domain.Calculation) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO calculations (prior, input, results, warnings, expires_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		c.Prior, c.Input, c.Results, c.Warnings, c.ExpiresAt,
	).Scan(&c.ID, &c.CreatedAt)
}

func (s *CalculationStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Calculation, error) {
	c := &domain.Calculation{}
	err := s.db.QueryRow(ctx,
		`SELECT id, prior, input, results, warnings, created_at, expires_at
		 FROM calculations WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Prior, &c.Input, &c.Results, &c.Warnings, &c.CreatedAt, &c.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *CalculationStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM calculations WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CalculationStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM calculations WHERE expires_at IS NOT NULL AND expires_at < $1`,
		now,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
