package repositories

import (
	"news-portal-cms/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	GetAll() ([]models.Category, error)
	GetAllWithCount() ([]models.CategoryWithCount, error)
	Updates(id uint, fields map[string]interface{}) error
	Delete(id uint) error
	CountArticles(categoryID uint) (int64, error)
	Count() (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	return &category, err
}

func (r *categoryRepository) GetBySlug(slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("slug = ?", slug).First(&category).Error
	return &category, err
}

func (r *categoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name asc").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) GetAllWithCount() ([]models.CategoryWithCount, error) {
	var categories []models.CategoryWithCount
	err := r.db.Model(&models.Category{}).
		Select("categories.*, COUNT(articles.id) AS article_count").
		Joins("LEFT JOIN articles ON articles.category_id = categories.id AND articles.deleted_at IS NULL").
		Group("categories.id").
		Order("categories.name asc").
		Scan(&categories).Error
	return categories, err
}

func (r *categoryRepository) Updates(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Category{}).Where("id = ?", id).Updates(fields).Error
}

func (r *categoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}

func (r *categoryRepository) CountArticles(categoryID uint) (int64, error) {
	var total int64
	err := r.db.Model(&models.Article{}).Where("category_id = ?", categoryID).Count(&total).Error
	return total, err
}

func (r *categoryRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Category{}).Count(&total).Error
	return total, err
}
