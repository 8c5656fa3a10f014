// Package categories provides database operations for book categories.
package categories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lmacedo/biblioteca/internal/entities"
	"github.com/lmacedo/biblioteca/internal/textcodec"
)

// Repository handles all category database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new categories repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateCategory inserts a category.
func (r *Repository) CreateCategory(name string) (*entities.Category, error) {
	category := &entities.Category{Name: textcodec.Escape(name)}
	if err := r.db.Create(category).Error; err != nil {
		return nil, err
	}
	category.Name = textcodec.Unescape(category.Name)
	return category, nil
}

// GetCategories retrieves all categories.
func (r *Repository) GetCategories() ([]entities.Category, error) {
	var categories []entities.Category
	if err := r.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	for i := range categories {
		categories[i].Name = textcodec.Unescape(categories[i].Name)
	}
	return categories, nil
}

// GetCategoryByID retrieves a category by id. Returns (nil, nil) when no
// such category exists.
func (r *Repository) GetCategoryByID(id uint) (*entities.Category, error) {
	var category entities.Category
	err := r.db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	category.Name = textcodec.Unescape(category.Name)
	return &category, nil
}

// UpdateCategory replaces a category's name. Returns the number of rows
// affected.
func (r *Repository) UpdateCategory(id uint, name string) (int64, error) {
	result := r.db.Model(&entities.Category{}).Where("id = ?", id).
		Update("name", textcodec.Escape(name))
	return result.RowsAffected, result.Error
}

// DeleteCategory removes a category by id. Returns the number of rows
// affected.
func (r *Repository) DeleteCategory(id uint) (int64, error) {
	result := r.db.Delete(&entities.Category{}, id)
	return result.RowsAffected, result.Error
}
