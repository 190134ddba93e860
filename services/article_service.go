package services

import (
	"errors"
	"time"

	"news-portal-cms/helper"
	"news-portal-cms/models"
	"news-portal-cms/repositories"

	"gorm.io/gorm"
)

const relatedArticlesLimit = 4

type ArticleService interface {
	GetArticle(id uint) (*models.Article, error)
	GetArticleBySlug(slug string, publicOnly bool) (*models.Article, error)
	GetArticles(params models.ArticleListParams) ([]models.Article, int64, error)
	GetPublishedArticles(params models.ArticleListParams) ([]models.Article, int64, error)
	GetFeaturedArticle() (*models.Article, error)
	GetRelatedArticles(slug string) ([]models.Article, error)
	CreateArticle(req models.CreateArticleRequest, authorID uint) (*models.Article, error)
	UpdateArticle(id uint, req models.UpdateArticleRequest) (*models.Article, error)
	DeleteArticle(id uint) error
}

type articleService struct {
	articleRepo  repositories.ArticleRepository
	categoryRepo repositories.CategoryRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository, categoryRepo repositories.CategoryRepository) ArticleService {
	return &articleService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *articleService) GetArticle(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Article not found"}
		}
		return nil, err
	}
	return article, nil
}

// GetArticleBySlug loads an article with its category and author. With
// publicOnly set, drafts look exactly like missing articles.
func (s *articleService) GetArticleBySlug(slug string, publicOnly bool) (*models.Article, error) {
	article, err := s.articleRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Article not found"}
		}
		return nil, err
	}

	if publicOnly && article.Status != models.StatusPublished {
		return nil, models.ErrorNotFound{Message: "Article not found"}
	}

	return article, nil
}

func (s *articleService) GetArticles(params models.ArticleListParams) ([]models.Article, int64, error) {
	return s.articleRepo.GetList(params)
}

// GetPublishedArticles is the public listing: status fixed to published,
// newest first, regardless of what the caller asked for.
func (s *articleService) GetPublishedArticles(params models.ArticleListParams) ([]models.Article, int64, error) {
	params.Status = string(models.StatusPublished)
	params.OrderBy = models.OrderNewest
	return s.articleRepo.GetList(params)
}

// GetFeaturedArticle returns the most recently created published article.
func (s *articleService) GetFeaturedArticle() (*models.Article, error) {
	articles, _, err := s.GetPublishedArticles(models.ArticleListParams{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, models.ErrorNotFound{Message: "No published articles"}
	}
	return &articles[0], nil
}

func (s *articleService) GetRelatedArticles(slug string) ([]models.Article, error) {
	article, err := s.GetArticleBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	return s.articleRepo.GetRelated(article.ID, article.CategoryID, relatedArticlesLimit)
}

func (s *articleService) CreateArticle(req models.CreateArticleRequest, authorID uint) (*models.Article, error) {
	slug := req.Slug
	if slug == "" {
		slug = helper.Slugify(req.Title)
	}
	if slug == "" {
		return nil, models.ErrorValidation{Message: "Title does not produce a valid slug"}
	}

	if _, err := s.categoryRepo.GetByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorValidation{Message: "Category does not exist"}
		}
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}

	article := &models.Article{
		Title:         req.Title,
		Slug:          slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		FeaturedImage: req.FeaturedImage,
		CategoryID:    req.CategoryID,
		AuthorID:      authorID,
		Status:        status,
	}

	if status == models.StatusPublished {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := s.articleRepo.Create(article); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Message: "Slug already exists"}
		}
		return nil, err
	}

	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) UpdateArticle(id uint, req models.UpdateArticleRequest) (*models.Article, error) {
	existing, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Article not found"}
		}
		return nil, err
	}

	fields := map[string]interface{}{}

	if req.Title != nil {
		fields["title"] = *req.Title
		// A title change without an explicit slug re-derives it
		if req.Slug == nil {
			slug := helper.Slugify(*req.Title)
			if slug == "" {
				return nil, models.ErrorValidation{Message: "Title does not produce a valid slug"}
			}
			fields["slug"] = slug
		}
	}
	if req.Slug != nil && *req.Slug != "" {
		fields["slug"] = *req.Slug
	}
	if req.Excerpt != nil {
		fields["excerpt"] = *req.Excerpt
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.FeaturedImage != nil {
		fields["featured_image"] = *req.FeaturedImage
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrorValidation{Message: "Category does not exist"}
			}
			return nil, err
		}
		fields["category_id"] = *req.CategoryID
	}
	if req.Status != nil {
		fields["status"] = *req.Status
		// published_at is stamped once, on the first draft to published
		// transition, and never touched again
		if *req.Status == models.StatusPublished && existing.Status != models.StatusPublished {
			fields["published_at"] = time.Now()
		}
	}

	if len(fields) > 0 {
		if err := s.articleRepo.Updates(id, fields); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, models.ErrorConflict{Message: "Slug already exists"}
			}
			return nil, err
		}
	}

	return s.articleRepo.GetByID(id)
}

func (s *articleService) DeleteArticle(id uint) error {
	if _, err := s.articleRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "Article not found"}
		}
		return err
	}

	return s.articleRepo.Delete(id)
}
