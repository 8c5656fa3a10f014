package scheduler

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lmacedo/biblioteca/internal/database/loans"
	"github.com/lmacedo/biblioteca/internal/database/reservations"
	"github.com/lmacedo/biblioteca/internal/entities"
)

func setupSweeper(t *testing.T) (*OverdueSweeper, *loans.Repository, *reservations.Repository, func()) {
	dbPath := "./test_scheduler_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Reservation{}, &entities.Loan{})
	require.NoError(t, err)

	loanRepo := loans.NewRepository(db)
	reservationRepo := reservations.NewRepository(db)
	sweeper := NewOverdueSweeper(loanRepo, reservationRepo, "0 * * * *")

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return sweeper, loanRepo, reservationRepo, cleanup
}

func TestOverdueSweeper_FlagsOnlyPastDueUnreturnedLoans(t *testing.T) {
	sweeper, loanRepo, reservationRepo, cleanup := setupSweeper(t)
	defer cleanup()

	now := time.Now()

	// Overdue and never returned: its reservation must be flagged.
	overdueRes, err := reservationRepo.CreateReservation(1, 1)
	require.NoError(t, err)
	_, err = loanRepo.CreateLoan(overdueRes.ID, now.AddDate(0, 0, -30), now.AddDate(0, 0, -16))
	require.NoError(t, err)

	// Overdue but returned in time: must stay pending.
	returnedRes, err := reservationRepo.CreateReservation(2, 2)
	require.NoError(t, err)
	returnedLoan, err := loanRepo.CreateLoan(returnedRes.ID, now.AddDate(0, 0, -30), now.AddDate(0, 0, -16))
	require.NoError(t, err)
	_, err = loanRepo.UpdateLoanReturn(returnedLoan.ID, now.AddDate(0, 0, -20))
	require.NoError(t, err)

	// Not yet due: must stay pending.
	currentRes, err := reservationRepo.CreateReservation(3, 3)
	require.NoError(t, err)
	_, err = loanRepo.CreateLoan(currentRes.ID, now.AddDate(0, 0, -1), now.AddDate(0, 0, 13))
	require.NoError(t, err)

	sweeper.runSweep()

	flagged, err := reservationRepo.GetReservationByID(overdueRes.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.ReservationStatusOverdue, flagged.Status)

	untouched, err := reservationRepo.GetReservationByID(returnedRes.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.ReservationStatusPending, untouched.Status)

	current, err := reservationRepo.GetReservationByID(currentRes.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.ReservationStatusPending, current.Status)
}

func TestOverdueSweeper_StartStop(t *testing.T) {
	sweeper, _, _, cleanup := setupSweeper(t)
	defer cleanup()

	require.NoError(t, sweeper.Start(context.Background()))
	assert.True(t, sweeper.IsRunning())
	assert.NotNil(t, sweeper.GetNextRunTime())

	sweeper.Stop()
	assert.False(t, sweeper.IsRunning())
	assert.Nil(t, sweeper.GetNextRunTime())
}

func TestOverdueSweeper_StartRejectsBadSchedule(t *testing.T) {
	sweeper, _, _, cleanup := setupSweeper(t)
	defer cleanup()
	sweeper.schedule = "not a schedule"

	err := sweeper.Start(context.Background())

	assert.Error(t, err)
	assert.False(t, sweeper.IsRunning())
}
