package repositories

import (
	"strings"

	"news-portal-cms/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetBySlug(slug string) (*models.Article, error)
	GetList(params models.ArticleListParams) ([]models.Article, int64, error)
	GetRelated(articleID, categoryID uint, limit int) ([]models.Article, error)
	Updates(id uint, fields map[string]interface{}) error
	Delete(id uint) error
	CountByStatus(status models.ArticleStatus) (int64, error)
	Count() (int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Category").
		Preload("Author").
		First(&article, id).Error
	return &article, err
}

func (r *articleRepository) GetBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Category").
		Preload("Author").
		Where("slug = ?", slug).
		First(&article).Error
	return &article, err
}

func (r *articleRepository) GetList(params models.ArticleListParams) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{})

	// Add filters
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if params.CategoryID > 0 {
		query = query.Where("category_id = ?", params.CategoryID)
	}

	if params.AuthorID > 0 {
		query = query.Where("author_id = ?", params.AuthorID)
	}

	if params.Search != "" {
		pattern := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern)
	}

	// Count the filtered set, not the page
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Add sorting
	switch params.OrderBy {
	case models.OrderOldest:
		query = query.Order("created_at asc")
	case models.OrderTitle:
		query = query.Order("title asc")
	default:
		query = query.Order("created_at desc")
	}

	// Add pagination
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	err := query.Preload("Category").Preload("Author").Find(&articles).Error

	return articles, total, err
}

func (r *articleRepository) GetRelated(articleID, categoryID uint, limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Category").
		Preload("Author").
		Where("status = ? AND category_id = ? AND id <> ?", models.StatusPublished, categoryID, articleID).
		Order("created_at desc").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Updates(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Article{}).Where("id = ?", id).Updates(fields).Error
}

func (r *articleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}

func (r *articleRepository) CountByStatus(status models.ArticleStatus) (int64, error) {
	var total int64
	err := r.db.Model(&models.Article{}).Where("status = ?", status).Count(&total).Error
	return total, err
}

func (r *articleRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Article{}).Count(&total).Error
	return total, err
}
