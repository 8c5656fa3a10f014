// Package loans provides database operations for book loans.
package loans

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/lmacedo/biblioteca/internal/entities"
)

// Repository handles all loan database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new loans repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateLoan inserts a loan for a reservation.
func (r *Repository) CreateLoan(reservationID uint, loanDate, expectedReturnDate time.Time) (*entities.Loan, error) {
	loan := &entities.Loan{
		ReservationID:      reservationID,
		LoanDate:           loanDate,
		ExpectedReturnDate: expectedReturnDate,
	}
	if err := r.db.Create(loan).Error; err != nil {
		return nil, err
	}
	return loan, nil
}

// GetLoans retrieves all loans.
func (r *Repository) GetLoans() ([]entities.Loan, error) {
	var loans []entities.Loan
	if err := r.db.Find(&loans).Error; err != nil {
		return nil, err
	}
	return loans, nil
}

// GetLoanByID retrieves a loan by id. Returns (nil, nil) when no such loan
// exists.
func (r *Repository) GetLoanByID(id uint) (*entities.Loan, error) {
	var loan entities.Loan
	err := r.db.First(&loan, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// UpdateLoanReturn records the actual return date of a loan. Returns the
// number of rows affected.
func (r *Repository) UpdateLoanReturn(id uint, returnedAt time.Time) (int64, error) {
	result := r.db.Model(&entities.Loan{}).Where("id = ?", id).
		Update("actual_return_date", returnedAt)
	return result.RowsAffected, result.Error
}

// OverdueLoans lists loans whose expected return date has passed without a
// recorded return, as of the given instant.
func (r *Repository) OverdueLoans(asOf time.Time) ([]entities.Loan, error) {
	var loans []entities.Loan
	err := r.db.
		Where("expected_return_date < ? AND actual_return_date IS NULL", asOf).
		Find(&loans).Error
	if err != nil {
		return nil, err
	}
	return loans, nil
}

// DeleteLoan removes a loan by id. Returns the number of rows affected.
func (r *Repository) DeleteLoan(id uint) (int64, error) {
	result := r.db.Delete(&entities.Loan{}, id)
	return result.RowsAffected, result.Error
}
