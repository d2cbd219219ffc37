package service

import (
	"context"
	"errors"
	"strings"

	"github.com/geneblend/geneblend/internal/domain"
	"github.com/geneblend/geneblend/internal/store"
	"go.uber.org/zap"
)

var (
	ErrContentNotFound = errors.New("content not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrTextRequired    = errors.New("text is required")
	ErrInvalidPosition = errors.New("row and col must be non-negative")
)

// ContentService serves the educational material shown next to the
// calculator: the card grid, fun facts and the chromosome reference text.
type ContentService struct {
	cards  domain.EducationCardStore
	facts  domain.FunFactStore
	info   domain.ChromosomeInfoStore
	logger *zap.Logger
}

func NewContentService(cs domain.EducationCardStore, fs domain.FunFactStore, is domain.ChromosomeInfoStore, logger *zap.Logger) *ContentService {
	return &ContentService{
		cards:  cs,
		facts:  fs,
		info:   is,
		logger: logger,
	}
}

func (s *ContentService) ListEducationCards(ctx context.Context) ([]domain.EducationCard, error) {
	cards, err := s.cards.List(ctx)
	if err != nil {
		return nil, err
	}
	if cards == nil {
		cards = []domain.EducationCard{}
	}
	return cards, nil
}

func (s *ContentService) CreateEducationCard(ctx context.Context, card *domain.EducationCard) error {
	card.Title = strings.TrimSpace(card.Title)
	if card.Title == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(card.Text) == "" {
		return ErrTextRequired
	}
	if card.Row < 0 || card.Col < 0 {
		return ErrInvalidPosition
	}

	if err := s.cards.Create(ctx, card); err != nil {
		return err
	}

	s.logger.Info("education card created",
		zap.Int64("card_id", card.ID),
		zap.Int("row", card.Row),
		zap.Int("col", card.Col))
	return nil
}

func (s *ContentService) RandomFunFact(ctx context.Context) (*domain.FunFact, error) {
	f, err := s.facts.Random(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *ContentService) CreateFunFact(ctx context.Context, f *domain.FunFact) error {
	f.FunFact = strings.TrimSpace(f.FunFact)
	if f.FunFact == "" {
		return ErrTextRequired
	}
	if err := s.facts.Create(ctx, f); err != nil {
		return err
	}
	s.logger.Info("fun fact created", zap.Int64("fun_fact_id", f.ID))
	return nil
}

func (s *ContentService) ChromosomeInfo(ctx context.Context) (*domain.ChromosomeInfo, error) {
	info, err := s.info.Get(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return info, nil
}

func (s *ContentService) SetChromosomeInfo(ctx context.Context, info *domain.ChromosomeInfo) error {
	if strings.TrimSpace(info.ChromosomeInfo) == "" {
		return ErrTextRequired
	}
	return s.info.Upsert(ctx, info)
}
