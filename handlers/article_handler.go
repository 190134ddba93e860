package handlers

import (
	"strconv"

	"news-portal-cms/helper"
	"news-portal-cms/models"
	"news-portal-cms/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService  services.ArticleService
	categoryService services.CategoryService
	Helper          *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, categoryService services.CategoryService) *ArticleHandler {
	return &ArticleHandler{
		articleService:  articleService,
		categoryService: categoryService,
		Helper:          &helper.HTTPHelper{},
	}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.CreateArticle(req, userID.(uint))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Article created", article)
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	articles, total, err := h.articleService.GetArticles(params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Articles loaded", gin.H{
		"articles":   articles,
		"total":      total,
		"pagination": h.Helper.GeneratePaging(c, params.Limit, params.Offset, total),
	})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.GetArticle(uint(id))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article loaded", article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.UpdateArticle(uint(id), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article updated", article)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.articleService.DeleteArticle(uint(id)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article deleted", h.Helper.EmptyJsonMap())
}

type publicArticleListParams struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Limit    int    `form:"limit,default=10"`
	Offset   int    `form:"offset"`
}

func (h *ArticleHandler) GetPublicArticles(c *gin.Context) {
	var query publicArticleListParams
	if err := c.ShouldBindQuery(&query); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	params := models.ArticleListParams{
		Search: query.Search,
		Limit:  query.Limit,
		Offset: query.Offset,
	}

	// An unknown category slug simply leaves the filter unset
	if query.Category != "" {
		if category, err := h.categoryService.GetCategoryBySlug(query.Category); err == nil {
			params.CategoryID = category.ID
		}
	}

	articles, total, err := h.articleService.GetPublishedArticles(params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Articles loaded", gin.H{
		"articles": articles,
		"total":    total,
	})
}

func (h *ArticleHandler) GetPublicArticle(c *gin.Context) {
	article, err := h.articleService.GetArticleBySlug(c.Param("slug"), true)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article loaded", article)
}

func (h *ArticleHandler) GetFeaturedArticle(c *gin.Context) {
	article, err := h.articleService.GetFeaturedArticle()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Featured article loaded", article)
}

func (h *ArticleHandler) GetRelatedArticles(c *gin.Context) {
	articles, err := h.articleService.GetRelatedArticles(c.Param("slug"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Related articles loaded", gin.H{"articles": articles})
}
