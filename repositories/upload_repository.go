package repositories

import (
	"news-portal-cms/models"

	"gorm.io/gorm"
)

type UploadRepository interface {
	Create(upload *models.Upload) error
	GetByID(id uint) (*models.Upload, error)
	GetByUser(userID uint) ([]models.Upload, error)
	Delete(id uint) error
}

type uploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) UploadRepository {
	return &uploadRepository{db: db}
}

func (r *uploadRepository) Create(upload *models.Upload) error {
	return r.db.Create(upload).Error
}

func (r *uploadRepository) GetByID(id uint) (*models.Upload, error) {
	var upload models.Upload
	err := r.db.First(&upload, id).Error
	return &upload, err
}

func (r *uploadRepository) GetByUser(userID uint) ([]models.Upload, error) {
	var uploads []models.Upload
	err := r.db.Where("uploaded_by = ?", userID).Order("created_at desc").Find(&uploads).Error
	return uploads, err
}

func (r *uploadRepository) Delete(id uint) error {
	return r.db.Delete(&models.Upload{}, id).Error
}
