package services

import (
	"testing"

	"news-portal-cms/models"
	"news-portal-cms/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategoryDerivesSlug(t *testing.T) {
	db := setupTestDB(t)
	service := NewCategoryService(repositories.NewCategoryRepository(db))

	category, err := service.CreateCategory(models.CreateCategoryRequest{Name: "Teknologi"})
	require.NoError(t, err)
	assert.Equal(t, "teknologi", category.Slug)

	t.Run("explicit slug wins over the derived one", func(t *testing.T) {
		category, err := service.CreateCategory(models.CreateCategoryRequest{
			Name: "Olahraga",
			Slug: "sports",
		})
		require.NoError(t, err)
		assert.Equal(t, "sports", category.Slug)
	})

	t.Run("name with no slug material rejected", func(t *testing.T) {
		_, err := service.CreateCategory(models.CreateCategoryRequest{Name: "???"})
		assert.IsType(t, models.ErrorValidation{}, err)
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		_, err := service.CreateCategory(models.CreateCategoryRequest{Name: "Teknologi"})
		assert.IsType(t, models.ErrorConflict{}, err)
	})
}

func TestUpdateCategoryRenameRederivesSlug(t *testing.T) {
	db := setupTestDB(t)
	service := NewCategoryService(repositories.NewCategoryRepository(db))

	category, err := service.CreateCategory(models.CreateCategoryRequest{Name: "Ekonomi"})
	require.NoError(t, err)

	name := "Ekonomi Digital"
	updated, err := service.UpdateCategory(category.ID, models.UpdateCategoryRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "ekonomi-digital", updated.Slug)

	t.Run("description only leaves the slug alone", func(t *testing.T) {
		description := "Berita ekonomi dan bisnis"
		updated, err := service.UpdateCategory(category.ID, models.UpdateCategoryRequest{Description: &description})
		require.NoError(t, err)
		assert.Equal(t, "ekonomi-digital", updated.Slug)
		assert.Equal(t, "Berita ekonomi dan bisnis", updated.Description)
	})
}

func TestDeleteCategoryGuardedByArticles(t *testing.T) {
	db := setupTestDB(t)
	categoryRepo := repositories.NewCategoryRepository(db)
	service := NewCategoryService(categoryRepo)

	author := models.User{Username: "editor", Password: "hash", Role: models.RoleEditor}
	require.NoError(t, db.Create(&author).Error)

	used, err := service.CreateCategory(models.CreateCategoryRequest{Name: "Politik"})
	require.NoError(t, err)
	empty, err := service.CreateCategory(models.CreateCategoryRequest{Name: "Kesehatan"})
	require.NoError(t, err)

	article := models.Article{
		Title:      "Pemilu 2024",
		Slug:       "pemilu-2024",
		Content:    "<p>content</p>",
		CategoryID: used.ID,
		AuthorID:   author.ID,
		Status:     models.StatusDraft,
	}
	require.NoError(t, db.Create(&article).Error)

	t.Run("referenced category cannot be deleted", func(t *testing.T) {
		err := service.DeleteCategory(used.ID)
		assert.IsType(t, models.ErrorConflict{}, err)

		_, err = categoryRepo.GetByID(used.ID)
		assert.NoError(t, err)
	})

	t.Run("empty category deletes fine", func(t *testing.T) {
		require.NoError(t, service.DeleteCategory(empty.ID))

		_, err := categoryRepo.GetByID(empty.ID)
		assert.Error(t, err)
	})

	t.Run("deleting the last article frees the category", func(t *testing.T) {
		require.NoError(t, db.Delete(&article).Error)
		assert.NoError(t, service.DeleteCategory(used.ID))
	})
}

func TestCategoriesWithArticleCounts(t *testing.T) {
	db := setupTestDB(t)
	service := NewCategoryService(repositories.NewCategoryRepository(db))

	author := models.User{Username: "editor", Password: "hash", Role: models.RoleEditor}
	require.NoError(t, db.Create(&author).Error)

	teknologi, err := service.CreateCategory(models.CreateCategoryRequest{Name: "Teknologi"})
	require.NoError(t, err)
	_, err = service.CreateCategory(models.CreateCategoryRequest{Name: "Olahraga"})
	require.NoError(t, err)

	for _, slug := range []string{"artikel-satu", "artikel-dua"} {
		article := models.Article{
			Title:      slug,
			Slug:       slug,
			Content:    "<p>content</p>",
			CategoryID: teknologi.ID,
			AuthorID:   author.ID,
			Status:     models.StatusPublished,
		}
		require.NoError(t, db.Create(&article).Error)
	}

	categories, err := service.GetCategories()
	require.NoError(t, err)
	require.Len(t, categories, 2)

	counts := map[string]int64{}
	for _, c := range categories {
		counts[c.Slug] = c.ArticleCount
	}
	assert.EqualValues(t, 2, counts["teknologi"])
	assert.EqualValues(t, 0, counts["olahraga"])

	// alphabetical by name
	assert.Equal(t, "Olahraga", categories[0].Name)
	assert.Equal(t, "Teknologi", categories[1].Name)
}
