package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/geneblend/geneblend/internal/domain"
	"github.com/geneblend/geneblend/internal/genetics"
	"github.com/geneblend/geneblend/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultCalculationTTL = 24 * time.Hour

var (
	ErrCalculationNotFound = errors.New("calculation not found")
	ErrInvalidPrior        = errors.New("invalid prior")
)

type CalculatorService struct {
	store    domain.CalculationStore
	logger   *zap.Logger
	prior    genetics.Prior
	parallel bool
	ttl      time.Duration
}

func NewCalculatorService(cs domain.CalculationStore, logger *zap.Logger) *CalculatorService {
	return &CalculatorService{
		store:  cs,
		logger: logger,
		prior:  genetics.PriorUniform,
		ttl:    defaultCalculationTTL,
	}
}

// SetPrior changes the prior used when a request does not choose one.
func (s *CalculatorService) SetPrior(p genetics.Prior) {
	s.prior = p
}

func (s *CalculatorService) DefaultPrior() genetics.Prior {
	return s.prior
}

// ResolvePrior parses a per-request prior name. An empty name selects the
// service default.
func (s *CalculatorService) ResolvePrior(name string) (genetics.Prior, error) {
	if strings.TrimSpace(name) == "" {
		return s.prior, nil
	}
	p, err := genetics.ParsePrior(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrior, name)
	}
	return p, nil
}

// SetParallel makes Evaluate fan the traits out over goroutines.
func (s *CalculatorService) SetParallel(parallel bool) {
	s.parallel = parallel
}

// SetTTL sets how long saved calculations are kept. Zero keeps them forever.
func (s *CalculatorService) SetTTL(d time.Duration) {
	s.ttl = d
}

// Evaluate computes the child's phenotype distributions for every trait.
func (s *CalculatorService) Evaluate(ctx context.Context, fields genetics.Fields, prior genetics.Prior) (genetics.Results, error) {
	calc := genetics.NewCalculator(prior)
	if !s.parallel {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return calc.Calculate(fields), nil
	}

	entries := calc.Entries()
	slots := make([]genetics.TraitResult, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			slots[i] = calc.CalculateTrait(e, fields)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make(genetics.Results, len(entries))
	for i, e := range entries {
		results[e.Key] = slots[i]
	}
	return results, nil
}

// Calculate evaluates fields and saves the outcome.
func (s *CalculatorService) Calculate(ctx context.Context, fields genetics.Fields, prior genetics.Prior) (*domain.Calculation, error) {
	results, err := s.Evaluate(ctx, fields, prior)
	if err != nil {
		return nil, err
	}

	calc := &domain.Calculation{
		Prior:    prior.String(),
		Input:    recognizedInput(fields),
		Results:  results,
		Warnings: genetics.NewCalculator(prior).Unrecognized(fields),
	}
	if s.ttl > 0 {
		expires := time.Now().Add(s.ttl)
		calc.ExpiresAt = &expires
	}

	for _, w := range calc.Warnings {
		s.logger.Debug("unrecognized phenotype label",
			zap.String("trait", w.Trait),
			zap.String("field", w.Field),
			zap.String("value", w.Value))
	}

	if err := s.store.Create(ctx, calc); err != nil {
		return nil, err
	}

	s.logger.Info("calculation saved",
		zap.String("calculation_id", calc.ID.String()),
		zap.String("prior", calc.Prior),
		zap.Int("warnings", len(calc.Warnings)),
		zap.Bool("empty", calc.Empty()))

	return calc, nil
}

func (s *CalculatorService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Calculation, error) {
	calc, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCalculationNotFound
		}
		return nil, err
	}
	if calc.ExpiresAt != nil && calc.ExpiresAt.Before(time.Now()) {
		return nil, ErrCalculationNotFound
	}
	return calc, nil
}

// Consume returns a saved calculation and deletes it, so a result page can
// only be shown once.
func (s *CalculatorService) Consume(ctx context.Context, id uuid.UUID) (*domain.Calculation, error) {
	calc, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Delete(ctx, id); err != nil && !errors.Is(err, ErrCalculationNotFound) {
		return nil, err
	}
	return calc, nil
}

func (s *CalculatorService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCalculationNotFound
		}
		return err
	}
	return nil
}

// recognizedInput keeps only the observed values of fields the registry reads.
func recognizedInput(fields genetics.Fields) map[string]string {
	out := make(map[string]string)
	for _, e := range genetics.Registry() {
		for _, name := range e.Fields() {
			if v := fields.Get(name); v != "" {
				out[name] = v
			}
		}
	}
	return out
}
