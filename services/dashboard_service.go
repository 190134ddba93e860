package services

import (
	"news-portal-cms/models"
	"news-portal-cms/repositories"
)

type DashboardService interface {
	GetStats() (*models.DashboardStats, error)
}

type dashboardService struct {
	articleRepo  repositories.ArticleRepository
	userRepo     repositories.UserRepository
	categoryRepo repositories.CategoryRepository
}

func NewDashboardService(articleRepo repositories.ArticleRepository, userRepo repositories.UserRepository, categoryRepo repositories.CategoryRepository) DashboardService {
	return &dashboardService{
		articleRepo:  articleRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *dashboardService) GetStats() (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}
	var err error

	if stats.TotalArticles, err = s.articleRepo.Count(); err != nil {
		return nil, err
	}
	if stats.PublishedArticles, err = s.articleRepo.CountByStatus(models.StatusPublished); err != nil {
		return nil, err
	}
	if stats.DraftArticles, err = s.articleRepo.CountByStatus(models.StatusDraft); err != nil {
		return nil, err
	}
	if stats.TotalUsers, err = s.userRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalCategories, err = s.categoryRepo.Count(); err != nil {
		return nil, err
	}

	return stats, nil
}
