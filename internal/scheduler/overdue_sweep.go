package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/lmacedo/biblioteca/internal/database/loans"
	"github.com/lmacedo/biblioteca/internal/database/reservations"
	"github.com/lmacedo/biblioteca/internal/entities"
)

// OverdueSweeper periodically flags reservations whose loan is past its
// expected return date.
type OverdueSweeper struct {
	loans        *loans.Repository
	reservations *reservations.Repository
	schedule     string

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	isSweeping bool
	cancelFunc context.CancelFunc
}

// NewOverdueSweeper creates a new sweeper instance
func NewOverdueSweeper(loanRepo *loans.Repository, reservationRepo *reservations.Repository, schedule string) *OverdueSweeper {
	return &OverdueSweeper{
		loans:        loanRepo,
		reservations: reservationRepo,
		schedule:     schedule,
		cron:         cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the sweep schedule
func (s *OverdueSweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runSweep()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule overdue sweep: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Overdue sweep: started with schedule '%s'", s.schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the sweeper
func (s *OverdueSweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	// Stop accepting new jobs and wait for running jobs to complete
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Overdue sweep: stopped")
}

// RunNow triggers an immediate sweep
func (s *OverdueSweeper) RunNow() {
	go s.runSweep()
}

// IsRunning returns whether the sweeper is active
func (s *OverdueSweeper) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next sweep will occur
func (s *OverdueSweeper) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

// runSweep performs the actual sweep operation
func (s *OverdueSweeper) runSweep() {
	s.mu.Lock()
	if s.isSweeping {
		s.mu.Unlock()
		log.Printf("Overdue sweep: skipped (already sweeping)")
		return
	}
	s.isSweeping = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isSweeping = false
		s.mu.Unlock()
	}()

	overdue, err := s.loans.OverdueLoans(time.Now())
	if err != nil {
		log.Printf("Overdue sweep: failed to list overdue loans: %v", err)
		return
	}

	var flagged int
	for _, loan := range overdue {
		_, err := s.reservations.UpdateReservationStatus(loan.ReservationID, entities.ReservationStatusOverdue)
		if err != nil {
			log.Printf("Overdue sweep: warning - failed to flag reservation %d: %v", loan.ReservationID, err)
			continue
		}
		flagged++
	}

	log.Printf("Overdue sweep: flagged %d of %d overdue loans", flagged, len(overdue))
}
