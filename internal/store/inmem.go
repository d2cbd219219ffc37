package store

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/geneblend/geneblend/internal/domain"
	"github.com/google/uuid"
)

// The in-memory stores back the service when no DATABASE_URL is configured.
// Nothing survives a restart.

type InMemoryCalculationStore struct {
	mu           sync.RWMutex
	calculations map[uuid.UUID]domain.Calculation
}

func NewInMemoryCalculationStore() *InMemoryCalculationStore {
	return &InMemoryCalculationStore{calculations: make(map[uuid.UUID]domain.Calculation)}
}

func (s *InMemoryCalculationStore) Create(ctx context.Context, c *domain.Calculation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	s.calculations[c.ID] = *c
	return nil
}

func (s *InMemoryCalculationStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Calculation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.calculations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *InMemoryCalculationStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.calculations[id]; !ok {
		return ErrNotFound
	}
	delete(s.calculations, id)
	return nil
}

func (s *InMemoryCalculationStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, c := range s.calculations {
		if c.ExpiresAt != nil && c.ExpiresAt.Before(now) {
			delete(s.calculations, id)
			n++
		}
	}
	return n, nil
}

type InMemoryEducationCardStore struct {
	mu     sync.RWMutex
	nextID int64
	cards  []domain.EducationCard
}

func NewInMemoryEducationCardStore() *InMemoryEducationCardStore {
	return &InMemoryEducationCardStore{}
}

func (s *InMemoryEducationCardStore) Create(ctx context.Context, card *domain.EducationCard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	card.ID = s.nextID
	card.CreatedAt = time.Now()
	s.cards = append(s.cards, *card)
	return nil
}

func (s *InMemoryEducationCardStore) List(ctx context.Context) ([]domain.EducationCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]domain.EducationCard(nil), s.cards...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out, nil
}

type InMemoryFunFactStore struct {
	mu     sync.RWMutex
	nextID int64
	facts  []domain.FunFact
}

func NewInMemoryFunFactStore() *InMemoryFunFactStore {
	return &InMemoryFunFactStore{}
}

func (s *InMemoryFunFactStore) Create(ctx context.Context, f *domain.FunFact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	f.ID = s.nextID
	s.facts = append(s.facts, *f)
	return nil
}

func (s *InMemoryFunFactStore) Random(ctx context.Context) (*domain.FunFact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.facts) == 0 {
		return nil, ErrNotFound
	}
	f := s.facts[rand.Intn(len(s.facts))]
	return &f, nil
}

func (s *InMemoryFunFactStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.facts), nil
}

type InMemoryChromosomeInfoStore struct {
	mu   sync.RWMutex
	info *domain.ChromosomeInfo
}

func NewInMemoryChromosomeInfoStore() *InMemoryChromosomeInfoStore {
	return &InMemoryChromosomeInfoStore{}
}

func (s *InMemoryChromosomeInfoStore) Get(ctx context.Context) (*domain.ChromosomeInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.info == nil {
		return nil, ErrNotFound
	}
	info := *s.info
	return &info, nil
}

func (s *InMemoryChromosomeInfoStore) Upsert(ctx context.Context, info *domain.ChromosomeInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	info.ID = 1
	info.UpdatedAt = time.Now()
	stored := *info
	s.info = &stored
	return nil
}
