package categories

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
	dbPath := "./test_categories_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Category{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return db, repo, cleanup
}

func TestRepository_CreateCategory(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	category, err := repo.CreateCategory("Ficção Científica")

	require.NoError(t, err)
	assert.NotZero(t, category.ID)
	assert.Equal(t, "Ficção Científica", category.Name)

	var stored entities.Category
	require.NoError(t, db.First(&stored, category.ID).Error)
	assert.Equal(t, `Fic\ç\ão Cient\ífica`, stored.Name)
}

func TestRepository_GetCategories(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.CreateCategory("História")
	require.NoError(t, err)
	_, err = repo.CreateCategory("Poesia")
	require.NoError(t, err)

	categories, err := repo.GetCategories()

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "História", categories[0].Name)
	assert.Equal(t, "Poesia", categories[1].Name)
}

func TestRepository_GetCategoryByID_NotFoundReturnsNil(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	category, err := repo.GetCategoryByID(999)

	require.NoError(t, err)
	assert.Nil(t, category)
}

func TestRepository_UpdateCategory(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	category, err := repo.CreateCategory("Romance")
	require.NoError(t, err)

	affected, err := repo.UpdateCategory(category.ID, "Crônica")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	updated, err := repo.GetCategoryByID(category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Crônica", updated.Name)
}

func TestRepository_UpdateCategory_MissingRowAffectsNothing(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	affected, err := repo.UpdateCategory(999, "Nada")

	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestRepository_DeleteCategory(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	category, err := repo.CreateCategory("Descartável")
	require.NoError(t, err)

	affected, err := repo.DeleteCategory(category.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	missing, err := repo.GetCategoryByID(category.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
