package entities

import (
	"time"
)

const (
	ReservationStatusPending = "pending"
	ReservationStatusOverdue = "overdue"
)

// User is a library patron. Name is stored in the escaped encoding; the
// emails and phones columns hold JSON arrays of escaped values. The decoded
// slices are populated by the repository on reads and never persisted
// directly.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	RawEmails string    `gorm:"column:emails;type:text" json:"-"`
	RawPhones string    `gorm:"column:phones;type:text" json:"-"`
	Emails    []string  `gorm:"-" json:"emails"`
	Phones    []string  `gorm:"-" json:"phones"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Author struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255" json:"name"`
	Nationality string    `gorm:"size:100" json:"nationality"`
	CreatedAt   time.Time `json:"created_at"`
}

// Book references its category by a bare foreign-key field. No gorm
// association is declared: deleting a book must not touch reservations or
// categories.
type Book struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"index;size:512" json:"title"`
	PublicationYear int       `json:"publication_year"`
	Publisher       string    `gorm:"size:256" json:"publisher"`
	CategoryID      uint      `gorm:"index" json:"category_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Reservation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	BookID    uint      `gorm:"index" json:"book_id"`
	Status    string    `gorm:"size:50" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Loan struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	ReservationID      uint       `gorm:"index" json:"reservation_id"`
	LoanDate           time.Time  `json:"loan_date"`
	ExpectedReturnDate time.Time  `gorm:"index" json:"expected_return_date"`
	ActualReturnDate   *time.Time `json:"actual_return_date,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (Category) TableName() string {
	return "categories"
}

func (Author) TableName() string {
	return "authors"
}

func (Book) TableName() string {
	return "books"
}

func (Reservation) TableName() string {
	return "reservations"
}

func (Loan) TableName() string {
	return "loans"
}
