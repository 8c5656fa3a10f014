// Package books provides database operations for the book catalog.
package books

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lmacedo/biblioteca/internal/entities"
	"github.com/lmacedo/biblioteca/internal/textcodec"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateBook inserts a book.
func (r *Repository) CreateBook(title string, publicationYear int, publisher string, categoryID uint) (*entities.Book, error) {
	book := &entities.Book{
		Title:           textcodec.Escape(title),
		PublicationYear: publicationYear,
		Publisher:       textcodec.Escape(publisher),
		CategoryID:      categoryID,
	}
	if err := r.db.Create(book).Error; err != nil {
		return nil, err
	}
	decode(book)
	return book, nil
}

// GetBooks retrieves all books.
func (r *Repository) GetBooks() ([]entities.Book, error) {
	var books []entities.Book
	if err := r.db.Find(&books).Error; err != nil {
		return nil, err
	}
	for i := range books {
		decode(&books[i])
	}
	return books, nil
}

// GetBookByID retrieves a book by id. Returns (nil, nil) when no such book
// exists.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	decode(&book)
	return &book, nil
}

// UpdateBook replaces a book's title, publication year, publisher and
// category. Returns the number of rows affected.
func (r *Repository) UpdateBook(id uint, title string, publicationYear int, publisher string, categoryID uint) (int64, error) {
	result := r.db.Model(&entities.Book{}).Where("id = ?", id).Updates(map[string]any{
		"title":            textcodec.Escape(title),
		"publication_year": publicationYear,
		"publisher":        textcodec.Escape(publisher),
		"category_id":      categoryID,
	})
	return result.RowsAffected, result.Error
}

// DeleteBook removes a book by id. Reservations referencing the book are
// left untouched. Returns the number of rows affected.
func (r *Repository) DeleteBook(id uint) (int64, error) {
	result := r.db.Delete(&entities.Book{}, id)
	return result.RowsAffected, result.Error
}

func decode(book *entities.Book) {
	book.Title = textcodec.Unescape(book.Title)
	book.Publisher = textcodec.Unescape(book.Publisher)
}
