package cleanup

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Purger deletes input-only history records created before cutoff.
type Purger interface {
	DeleteInputOnlyBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Service periodically purges input-only history older than maxAge.
type Service struct {
	purger   Purger
	maxAge   time.Duration
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service
func NewService(purger Purger, maxAge, interval time.Duration, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		purger:   purger,
		maxAge:   maxAge,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Enabled reports whether both the retention and the interval are set.
func (s *Service) Enabled() bool {
	return s.maxAge > 0 && s.interval > 0
}

// Start runs one purge immediately and then one per interval until ctx is
// done or Stop is called. It does nothing when the service is disabled.
func (s *Service) Start(ctx context.Context) {
	if !s.Enabled() {
		s.logger.Info("history cleanup disabled")
		return
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	s.mu.Unlock()

	s.RunOnce(ctx)

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.RunOnce(ctx)
			case <-ctx.Done():
				s.logger.Info("history cleanup stopped")
				return
			}
		}
	}()

	s.logger.Info("history cleanup started",
		"interval", s.interval.String(),
		"max_age", s.maxAge.String())
}

// Stop stops the cleanup loop and waits for it to exit.
func (s *Service) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// RunOnce purges expired input-only records and returns how many were removed.
func (s *Service) RunOnce(ctx context.Context) int64 {
	cutoff := s.now().Add(-s.maxAge)
	n, err := s.purger.DeleteInputOnlyBefore(ctx, cutoff)
	if err != nil {
		s.logger.Error("history cleanup failed", "error", err)
		return 0
	}
	if n > 0 {
		s.logger.Info("purged input-only history", "count", n, "cutoff", cutoff.UTC().Format(time.RFC3339))
	}
	return n
}
