package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"news-portal-cms/config"
	"news-portal-cms/logger"
	"news-portal-cms/models"
	"news-portal-cms/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UploadService interface {
	CreateUpload(originalName, mimeType string, size int64, userID uint) (*models.Upload, error)
	GetUserUploads(userID uint) ([]models.Upload, error)
	DeleteUpload(id uint, userID uint) error
	RemoveUpload(id uint) error
}

type uploadService struct {
	uploadRepo repositories.UploadRepository
}

func NewUploadService(uploadRepo repositories.UploadRepository) UploadService {
	return &uploadService{uploadRepo: uploadRepo}
}

// CreateUpload validates the file metadata and persists the upload
// record with a generated filename. Writing the file bytes is the
// caller's responsibility.
func (s *uploadService) CreateUpload(originalName, mimeType string, size int64, userID uint) (*models.Upload, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, models.ErrorValidation{Message: "Only image files are allowed"}
	}
	if size > config.MaxUploadSize {
		return nil, models.ErrorValidation{Message: "File exceeds the maximum upload size"}
	}

	fileName := uuid.NewString() + filepath.Ext(originalName)

	upload := &models.Upload{
		FileName:     fileName,
		OriginalName: originalName,
		FilePath:     "/uploads/" + fileName,
		MimeType:     mimeType,
		Size:         size,
		UploadedBy:   userID,
	}

	if err := s.uploadRepo.Create(upload); err != nil {
		return nil, err
	}

	return upload, nil
}

func (s *uploadService) GetUserUploads(userID uint) ([]models.Upload, error) {
	return s.uploadRepo.GetByUser(userID)
}

// DeleteUpload removes an upload owned by userID. The record is removed
// first; deleting the file from disk is best effort.
func (s *uploadService) DeleteUpload(id uint, userID uint) error {
	upload, err := s.uploadRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "Upload not found"}
		}
		return err
	}

	if upload.UploadedBy != userID {
		return models.ErrorForbidden{Message: "Upload belongs to another user"}
	}

	if err := s.uploadRepo.Delete(id); err != nil {
		return err
	}

	path := filepath.Join(config.UploadDir(), upload.FileName)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Warningf("failed to remove uploaded file %s: %v", path, err)
	}

	return nil
}

// RemoveUpload drops an upload record regardless of owner. Used to roll
// back a record whose file could not be written.
func (s *uploadService) RemoveUpload(id uint) error {
	return s.uploadRepo.Delete(id)
}
