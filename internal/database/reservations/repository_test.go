package reservations

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lmacedo/biblioteca/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository, func()) {
	dbPath := "./test_reservations_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Reservation{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return db, repo, cleanup
}

func TestRepository_CreateReservation(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	reservation, err := repo.CreateReservation(7, 12)

	require.NoError(t, err)
	assert.NotZero(t, reservation.ID)
	assert.Equal(t, uint(7), reservation.UserID)
	assert.Equal(t, uint(12), reservation.BookID)
	assert.Equal(t, entities.ReservationStatusPending, reservation.Status)
}

func TestRepository_GetReservations(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.CreateReservation(1, 1)
	require.NoError(t, err)
	_, err = repo.CreateReservation(2, 2)
	require.NoError(t, err)

	reservations, err := repo.GetReservations()

	require.NoError(t, err)
	assert.Len(t, reservations, 2)
}

func TestRepository_GetReservationByID_NotFoundReturnsNil(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	reservation, err := repo.GetReservationByID(999)

	require.NoError(t, err)
	assert.Nil(t, reservation)
}

func TestRepository_UpdateReservationStatus_RoundTripsEscaping(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	reservation, err := repo.CreateReservation(1, 1)
	require.NoError(t, err)

	affected, err := repo.UpdateReservationStatus(reservation.ID, "em atraso - notificação enviada")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	var stored entities.Reservation
	require.NoError(t, db.First(&stored, reservation.ID).Error)
	assert.Equal(t, `em atraso \- notifica\ç\ão enviada`, stored.Status)

	updated, err := repo.GetReservationByID(reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, "em atraso - notificação enviada", updated.Status)
}

func TestRepository_DeleteReservation(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	reservation, err := repo.CreateReservation(1, 1)
	require.NoError(t, err)

	affected, err := repo.DeleteReservation(reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	missing, err := repo.GetReservationByID(reservation.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
