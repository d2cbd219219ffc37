package service

import (
	"context"
	"sync"
	"time"

	"github.com/geneblend/geneblend/internal/domain"
	"go.uber.org/zap"
)

const defaultSweepInterval = 1 * time.Hour

// SweeperService deletes saved calculations past their expires_at.
type SweeperService struct {
	store  domain.CalculationStore
	logger *zap.Logger

	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func NewSweeperService(cs domain.CalculationStore, logger *zap.Logger) *SweeperService {
	return &SweeperService{
		store:    cs,
		logger:   logger,
		interval: defaultSweepInterval,
		stopCh:   make(chan struct{}),
	}
}

func (s *SweeperService) SetInterval(d time.Duration) {
	s.interval = d
}

// Start runs the sweeper on a periodic schedule in a background goroutine.
func (s *SweeperService) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info("calculation sweeper started", zap.Duration("interval", s.interval))

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				s.Sweep(ctx, time.Now())
				cancel()
			case <-s.stopCh:
				s.logger.Info("calculation sweeper stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the sweeper.
func (s *SweeperService) Stop() {
	close(s.stopCh)
	s.wg.Wait()
}

// Sweep removes every calculation that expired before now and reports how
// many went.
func (s *SweeperService) Sweep(ctx context.Context, now time.Time) int64 {
	deleted, err := s.store.DeleteExpired(ctx, now)
	if err != nil {
		s.logger.Error("failed to delete expired calculations", zap.Error(err))
		return 0
	}
	if deleted > 0 {
		s.logger.Info("deleted expired calculations", zap.Int64("count", deleted))
	}
	return deleted
}
