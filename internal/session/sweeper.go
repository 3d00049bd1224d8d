package session

import (
	"time"

	"github.com/reut-b/profile-site/internal/logger"
)

// Sweeper periodically evicts expired sessions from a MemoryStore.
// It implements the workers.Worker interface.
type Sweeper struct {
	store    *MemoryStore
	interval time.Duration
	logger   *logger.Logger
	stop     chan struct{}
}

// NewSweeper constructs a Sweeper that purges store every interval.
func NewSweeper(store *MemoryStore, interval time.Duration, logger *logger.Logger) *Sweeper {
	return &Sweeper{
		store:    store,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

// Run starts the sweep loop in a background goroutine and returns
// immediately.
func (s *Sweeper) Run() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if evicted := s.store.Purge(); evicted > 0 {
					s.logger.Debug().Int("evicted", evicted).Msg("expired sessions purged")
				}
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop terminates the sweep loop. Safe to call once.
func (s *Sweeper) Stop() {
	close(s.stop)
}
