package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/geneblend/geneblend/internal/domain"
	"github.com/geneblend/geneblend/internal/genetics"
	"github.com/geneblend/geneblend/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockCalculationStore mocks the CalculationStore interface.
type MockCalculationStore struct {
	mock.Mock
}

func (m *MockCalculationStore) Create(ctx context.Context, c *domain.Calculation) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil {
		c.ID = uuid.New()
		c.CreatedAt = time.Now()
	}
	return args.Error(0)
}

func (m *MockCalculationStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Calculation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Calculation), args.Error(1)
}

func (m *MockCalculationStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCalculationStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

var familyFields = genetics.Fields{
	"father_eye":         "hazel",
	"mother_eye":         "gray",
	"father_hair_color":  "red",
	"mother_hair_color":  "red",
	"father_blood":       "A",
	"pf_father_blood":    "A",
	"pf_mother_blood":    "O",
	"mother_blood":       "B",
	"pm_father_blood":    "B",
	"pm_mother_blood":    "O",
	"father_rh":          "pos",
	"mother_rh":          "pos",
	"father_height":      "tall",
	"mother_height":      "short",
	"pm_father_freckles": "no",
	"pm_mother_freckles": "no",
	"mother_freckles":    "yes",
}

func TestCalculatorService_ParallelMatchesSequential(t *testing.T) {
	ctx := context.Background()

	seq := NewCalculatorService(&MockCalculationStore{}, zap.NewNop())
	par := NewCalculatorService(&MockCalculationStore{}, zap.NewNop())
	par.SetParallel(true)

	for _, prior := range []genetics.Prior{genetics.PriorUniform, genetics.PriorMendelian} {
		want, err := seq.Evaluate(ctx, familyFields, prior)
		require.NoError(t, err)
		got, err := par.Evaluate(ctx, familyFields, prior)
		require.NoError(t, err)
		assert.Equal(t, want, got, prior.String())
		assert.Len(t, got, len(genetics.Registry()))
	}
}

func TestCalculatorService_EvaluateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewCalculatorService(&MockCalculationStore{}, zap.NewNop())
	_, err := svc.Evaluate(ctx, familyFields, genetics.PriorUniform)
	assert.ErrorIs(t, err, context.Canceled)

	svc.SetParallel(true)
	_, err = svc.Evaluate(ctx, familyFields, genetics.PriorUniform)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculatorService_CalculateSaves(t *testing.T) {
	ms := new(MockCalculationStore)
	ms.On("Create", mock.Anything, mock.AnythingOfType("*domain.Calculation")).Return(nil)

	svc := NewCalculatorService(ms, zap.NewNop())
	svc.SetTTL(time.Hour)

	fields := genetics.Fields{
		"father_rh":  "pos",
		"mother_rh":  "neg",
		"mother_eye": "violet",
		"comment":    "ignored",
	}
	calc, err := svc.Calculate(context.Background(), fields, genetics.PriorUniform)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, calc.ID)
	assert.Equal(t, "uniform", calc.Prior)
	assert.Equal(t, map[string]string{"father_rh": "pos", "mother_rh": "neg", "mother_eye": "violet"}, calc.Input)
	require.NotNil(t, calc.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *calc.ExpiresAt, time.Minute)

	require.Len(t, calc.Warnings, 1)
	assert.Equal(t, genetics.Unrecognized{Trait: genetics.TraitEyeColor, Field: "mother_eye", Value: "violet"}, calc.Warnings[0])
	assert.Empty(t, calc.Results[genetics.TraitEyeColor])
	assert.InDelta(t, 1.0, calc.Results[genetics.TraitRh]["pos"]+calc.Results[genetics.TraitRh]["neg"], 1e-12)

	ms.AssertExpectations(t)
}

func TestCalculatorService_CalculateNoTTL(t *testing.T) {
	ms := new(MockCalculationStore)
	ms.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewCalculatorService(ms, zap.NewNop())
	svc.SetTTL(0)

	calc, err := svc.Calculate(context.Background(), genetics.Fields{}, genetics.PriorMendelian)
	require.NoError(t, err)
	assert.Nil(t, calc.ExpiresAt)
	assert.Equal(t, "mendelian", calc.Prior)
	assert.True(t, calc.Empty())
}

func TestCalculatorService_CalculateStoreError(t *testing.T) {
	ms := new(MockCalculationStore)
	ms.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	svc := NewCalculatorService(ms, zap.NewNop())
	_, err := svc.Calculate(context.Background(), familyFields, genetics.PriorUniform)
	assert.EqualError(t, err, "db down")
}

func TestCalculatorService_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	past := time.Now().Add(-time.Minute)

	tests := []struct {
		name    string
		stored  *domain.Calculation
		err     error
		wantErr error
	}{
		{name: "found", stored: &domain.Calculation{ID: id}},
		{name: "missing", err: store.ErrNotFound, wantErr: ErrCalculationNotFound},
		{name: "expired", stored: &domain.Calculation{ID: id, ExpiresAt: &past}, wantErr: ErrCalculationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := new(MockCalculationStore)
			if tt.stored != nil {
				ms.On("GetByID", ctx, id).Return(tt.stored, nil)
			} else {
				ms.On("GetByID", ctx, id).Return(nil, tt.err)
			}

			svc := NewCalculatorService(ms, zap.NewNop())
			got, err := svc.GetByID(ctx, id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, got.ID)
		})
	}
}

func TestCalculatorService_Consume(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	ms := new(MockCalculationStore)
	ms.On("GetByID", ctx, id).Return(&domain.Calculation{ID: id}, nil).Once()
	ms.On("Delete", ctx, id).Return(nil).Once()
	ms.On("GetByID", ctx, id).Return(nil, store.ErrNotFound)

	svc := NewCalculatorService(ms, zap.NewNop())
	got, err := svc.Consume(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	_, err = svc.Consume(ctx, id)
	assert.ErrorIs(t, err, ErrCalculationNotFound)
	ms.AssertExpectations(t)
}

func TestCalculatorService_DeleteMissing(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	ms := new(MockCalculationStore)
	ms.On("Delete", ctx, id).Return(store.ErrNotFound)

	svc := NewCalculatorService(ms, zap.NewNop())
	assert.ErrorIs(t, svc.Delete(ctx, id), ErrCalculationNotFound)
}

func TestCalculatorService_DefaultPrior(t *testing.T) {
	svc := NewCalculatorService(&MockCalculationStore{}, zap.NewNop())
	assert.Equal(t, genetics.PriorUniform, svc.DefaultPrior())
	svc.SetPrior(genetics.PriorMendelian)
	assert.Equal(t, genetics.PriorMendelian, svc.DefaultPrior())
}

func TestCalculatorService_ResolvePrior(t *testing.T) {
	svc := NewCalculatorService(&MockCalculationStore{}, zap.NewNop())
	svc.SetPrior(genetics.PriorMendelian)

	p, err := svc.ResolvePrior("")
	require.NoError(t, err)
	assert.Equal(t, genetics.PriorMendelian, p)

	p, err = svc.ResolvePrior(" Uniform ")
	require.NoError(t, err)
	assert.Equal(t, genetics.PriorUniform, p)

	_, err = svc.ResolvePrior("bayesian")
	assert.ErrorIs(t, err, ErrInvalidPrior)
}
