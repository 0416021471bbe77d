// Package scheduler runs the background posting-expiry sweep. A posting
// whose deadline has passed is deactivated so it drops out of the
// candidate-facing listings even if nobody searches for it.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"workwise/internal/repository"
)

const sweepTimeout = 30 * time.Second

type Scheduler struct {
	cron     *cron.Cron
	postings repository.PostingRepository
	logger   *log.Logger
}

func New(postings repository.PostingRepository, logger *log.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		postings: postings,
		logger:   logger,
	}
}

// Start registers the sweep under the given cron spec and runs it once
// immediately so a long-stopped server catches up on startup.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	go s.sweep()
	return nil
}

// Stop halts scheduling and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	n, err := s.postings.DeactivateExpired(ctx, time.Now())
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("expiry sweep failed: %v", err)
		}
		return
	}
	if n > 0 && s.logger != nil {
		s.logger.Printf("expiry sweep | deactivated=%d", n)
	}
}
