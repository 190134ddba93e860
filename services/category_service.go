package services

import (
	"errors"

	"news-portal-cms/helper"
	"news-portal-cms/models"
	"news-portal-cms/repositories"

	"gorm.io/gorm"
)

type CategoryService interface {
	GetCategories() ([]models.CategoryWithCount, error)
	GetCategoryBySlug(slug string) (*models.Category, error)
	CreateCategory(req models.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(id uint, req models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(id uint) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) GetCategories() ([]models.CategoryWithCount, error) {
	return s.categoryRepo.GetAllWithCount()
}

func (s *categoryService) GetCategoryBySlug(slug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Category not found"}
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) CreateCategory(req models.CreateCategoryRequest) (*models.Category, error) {
	slug := req.Slug
	if slug == "" {
		slug = helper.Slugify(req.Name)
	}
	if slug == "" {
		return nil, models.ErrorValidation{Message: "Name does not produce a valid slug"}
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Message: "Slug already exists"}
		}
		return nil, err
	}

	return category, nil
}

func (s *categoryService) UpdateCategory(id uint, req models.UpdateCategoryRequest) (*models.Category, error) {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Category not found"}
		}
		return nil, err
	}

	fields := map[string]interface{}{}

	if req.Name != nil {
		fields["name"] = *req.Name
		// Renaming without an explicit slug re-derives it from the new name
		if req.Slug == nil {
			slug := helper.Slugify(*req.Name)
			if slug == "" {
				return nil, models.ErrorValidation{Message: "Name does not produce a valid slug"}
			}
			fields["slug"] = slug
		}
	}
	if req.Slug != nil && *req.Slug != "" {
		fields["slug"] = *req.Slug
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}

	if len(fields) > 0 {
		if err := s.categoryRepo.Updates(id, fields); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, models.ErrorConflict{Message: "Slug already exists"}
			}
			return nil, err
		}
	}

	return s.categoryRepo.GetByID(id)
}

// DeleteCategory rejects deletion while articles still reference the
// category, so articles never end up pointing at a missing category.
func (s *categoryService) DeleteCategory(id uint) error {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "Category not found"}
		}
		return err
	}

	total, err := s.categoryRepo.CountArticles(id)
	if err != nil {
		return err
	}
	if total > 0 {
		return models.ErrorConflict{Message: "Category still has articles"}
	}

	return s.categoryRepo.Delete(id)
}
