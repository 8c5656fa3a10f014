// Package authors provides database operations for book authors.
package authors

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lmacedo/biblioteca/internal/entities"
	"github.com/lmacedo/biblioteca/internal/textcodec"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateAuthor inserts an author.
func (r *Repository) CreateAuthor(name, nationality string) (*entities.Author, error) {
	author := &entities.Author{
		Name:        textcodec.Escape(name),
		Nationality: textcodec.Escape(nationality),
	}
	if err := r.db.Create(author).Error; err != nil {
		return nil, err
	}
	decode(author)
	return author, nil
}

// GetAuthors retrieves all authors.
func (r *Repository) GetAuthors() ([]entities.Author, error) {
	var authors []entities.Author
	if err := r.db.Find(&authors).Error; err != nil {
		return nil, err
	}
	for i := range authors {
		decode(&authors[i])
	}
	return authors, nil
}

// GetAuthorByID retrieves an author by id. Returns (nil, nil) when no such
// author exists.
func (r *Repository) GetAuthorByID(id uint) (*entities.Author, error) {
	var author entities.Author
	err := r.db.First(&author, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	decode(&author)
	return &author, nil
}

// UpdateAuthor replaces an author's name and nationality. Returns the number
// of rows affected.
func (r *Repository) UpdateAuthor(id uint, name, nationality string) (int64, error) {
	result := r.db.Model(&entities.Author{}).Where("id = ?", id).Updates(map[string]any{
		"name":        textcodec.Escape(name),
		"nationality": textcodec.Escape(nationality),
	})
	return result.RowsAffected, result.Error
}

// DeleteAuthor removes an author by id. Returns the number of rows affected.
func (r *Repository) DeleteAuthor(id uint) (int64, error) {
	result := r.db.Delete(&entities.Author{}, id)
	return result.RowsAffected, result.Error
}

func decode(author *entities.Author) {
	author.Name = textcodec.Unescape(author.Name)
	author.Nationality = textcodec.Unescape(author.Nationality)
}
