package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CalculationStore interface {
	Create(ctx context.Context, c *Calculation) error
	GetByID(ctx context.Context, id uuid.UUID) (*Calculation, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type EducationCardStore interface {
	Create(ctx context.Context, card *EducationCard) error
	List(ctx context.Context) ([]EducationCard, error)
}

type FunFactStore interface {
	Create(ctx context.Context, f *FunFact) error
	Random(ctx context.Context) (*FunFact, error)
	Count(ctx context.Context) (int, error)
}

type ChromosomeInfoStore interface {
	Get(ctx context.Context) (*ChromosomeInfo, error)
	Upsert(ctx context.Context, info *ChromosomeInfo) error
}
