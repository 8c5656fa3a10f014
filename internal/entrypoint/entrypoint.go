package entrypoint

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmacedo/biblioteca/internal/config"
	"github.com/lmacedo/biblioteca/internal/database"
	"github.com/lmacedo/biblioteca/internal/database/loans"
	"github.com/lmacedo/biblioteca/internal/database/reservations"
	"github.com/lmacedo/biblioteca/internal/scheduler"
)

// Run starts the daemon: opens the database, starts the overdue sweeper and
// blocks until an interrupt or termination signal arrives.
func Run(cfg *config.Config) error {
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	loanRepo := loans.NewRepository(db.DB)
	reservationRepo := reservations.NewRepository(db.DB)

	sweeper := scheduler.NewOverdueSweeper(loanRepo, reservationRepo, cfg.OverdueSweep.Schedule)
	if cfg.OverdueSweep.Enabled {
		if err := sweeper.Start(context.Background()); err != nil {
			return err
		}
		defer sweeper.Stop()
	} else {
		log.Printf("Overdue sweep: disabled")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	log.Printf("Shutting down, waiting %v before exit", timeout)
	time.Sleep(timeout)

	return nil
}
