// Package reservations provides database operations for book reservations.
package reservations

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lmacedo/biblioteca/internal/entities"
	"github.com/lmacedo/biblioteca/internal/textcodec"
)

// Repository handles all reservation database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reservations repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateReservation inserts a reservation in the pending state.
func (r *Repository) CreateReservation(userID, bookID uint) (*entities.Reservation, error) {
	reservation := &entities.Reservation{
		UserID: userID,
		BookID: bookID,
		Status: textcodec.Escape(entities.ReservationStatusPending),
	}
	if err := r.db.Create(reservation).Error; err != nil {
		return nil, err
	}
	reservation.Status = textcodec.Unescape(reservation.Status)
	return reservation, nil
}

// GetReservations retrieves all reservations.
func (r *Repository) GetReservations() ([]entities.Reservation, error) {
	var reservations []entities.Reservation
	if err := r.db.Find(&reservations).Error; err != nil {
		return nil, err
	}
	for i := range reservations {
		reservations[i].Status = textcodec.Unescape(reservations[i].Status)
	}
	return reservations, nil
}

// GetReservationByID retrieves a reservation by id. Returns (nil, nil) when
// no such reservation exists.
func (r *Repository) GetReservationByID(id uint) (*entities.Reservation, error) {
	var reservation entities.Reservation
	err := r.db.First(&reservation, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	reservation.Status = textcodec.Unescape(reservation.Status)
	return &reservation, nil
}

// UpdateReservationStatus replaces a reservation's status. Returns the
// number of rows affected.
func (r *Repository) UpdateReservationStatus(id uint, status string) (int64, error) {
	result := r.db.Model(&entities.Reservation{}).Where("id = ?", id).
		Update("status", textcodec.Escape(status))
	return result.RowsAffected, result.Error
}

// DeleteReservation removes a reservation by id. Returns the number of rows
// affected.
func (r *Repository) DeleteReservation(id uint) (int64, error) {
	result := r.db.Delete(&entities.Reservation{}, id)
	return result.RowsAffected, result.Error
}
