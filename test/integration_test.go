package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"news-portal-cms/handlers"
	"news-portal-cms/middleware"
	"news-portal-cms/models"
	"news-portal-cms/repositories"
	"news-portal-cms/seed"
	"news-portal-cms/services"
)

type envelope struct {
	Code        int             `json:"code"`
	CodeType    string          `json:"code_type"`
	CodeMessage json.RawMessage `json:"code_message"`
	Data        json.RawMessage `json:"data"`
}

type IntegrationTestSuite struct {
	suite.Suite
	db          *gorm.DB
	router      *gin.Engine
	adminToken  string
	editorToken string
}

func (suite *IntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:integration?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		suite.T().Fatal("Failed to open test database:", err)
	}
	suite.db = db

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Article{},
		&models.Upload{},
	); err != nil {
		suite.T().Fatal("Failed to migrate test database:", err)
	}

	suite.setupRouter()
}

func (suite *IntegrationTestSuite) setupRouter() {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(suite.db)
	categoryRepo := repositories.NewCategoryRepository(suite.db)
	articleRepo := repositories.NewArticleRepository(suite.db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	articleService := services.NewArticleService(articleRepo, categoryRepo)
	dashboardService := services.NewDashboardService(articleRepo, userRepo, categoryRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	articleHandler := handlers.NewArticleHandler(articleService, categoryService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Setup router the way main does, minus the upload surface
	router := gin.New()

	store := cookie.NewStore([]byte("integration-test-secret"))
	router.Use(sessions.Sessions("news_portal_session", store))

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.AuthMiddleware(), authHandler.GetProfile)
		}

		public := v1.Group("/public")
		{
			public.GET("/articles", articleHandler.GetPublicArticles)
			public.GET("/articles/:slug", articleHandler.GetPublicArticle)
			public.GET("/articles/:slug/related", articleHandler.GetRelatedArticles)
			public.GET("/featured", articleHandler.GetFeaturedArticle)
			public.GET("/categories", categoryHandler.GetCategories)
			public.GET("/categories/:slug", categoryHandler.GetCategory)
		}

		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", authHandler.GetProfile)
			protected.GET("/dashboard", dashboardHandler.GetStats)

			articles := protected.Group("/articles")
			{
				articles.GET("", articleHandler.GetArticles)
				articles.POST("", articleHandler.CreateArticle)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.PUT("/:id", articleHandler.UpdateArticle)
				articles.DELETE("/:id", articleHandler.DeleteArticle)
			}

			categories := protected.Group("/categories")
			{
				categories.GET("", categoryHandler.GetCategories)
				categories.POST("", categoryHandler.CreateCategory)
				categories.PUT("/:id", categoryHandler.UpdateCategory)
				categories.DELETE("/:id", categoryHandler.DeleteCategory)
			}

			users := protected.Group("/users")
			users.Use(middleware.RequireAdmin())
			{
				users.GET("", userHandler.GetUsers)
				users.POST("", userHandler.CreateUser)
				users.PUT("/:id", userHandler.UpdateUser)
				users.DELETE("/:id", userHandler.DeleteUser)
			}
		}
	}

	suite.router = router
}

func (suite *IntegrationTestSuite) SetupTest() {
	// Clean all tables before each test and reseed the demo data
	suite.db.Exec("DELETE FROM uploads")
	suite.db.Exec("DELETE FROM articles")
	suite.db.Exec("DELETE FROM categories")
	suite.db.Exec("DELETE FROM users")

	suite.Require().NoError(seed.Run(suite.db))

	suite.adminToken = suite.loginToken("admin", "admin123")
	suite.editorToken = suite.loginToken("editor", "editor123")
}

// doRequest performs a JSON request, optionally authenticated with a
// Bearer token or session cookies.
func (suite *IntegrationTestSuite) doRequest(method, path string, payload interface{}, token string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		suite.Require().NoError(err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) decodeData(w *httptest.ResponseRecorder, target interface{}) {
	var resp envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NoError(json.Unmarshal(resp.Data, target))
}

func (suite *IntegrationTestSuite) loginToken(username, password string) string {
	w := suite.doRequest("POST", "/api/v1/auth/login", models.LoginRequest{
		Username: username,
		Password: password,
	}, "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var auth models.AuthResponse
	suite.decodeData(w, &auth)
	suite.Require().NotEmpty(auth.Token)
	return auth.Token
}

func (suite *IntegrationTestSuite) findUser(username string) models.User {
	var user models.User
	suite.Require().NoError(suite.db.Where("username = ?", username).First(&user).Error)
	return user
}

func (suite *IntegrationTestSuite) TestSessionLoginFlow() {
	w := suite.doRequest("POST", "/api/v1/auth/login", models.LoginRequest{
		Username: "admin",
		Password: "admin123",
	}, "", nil)
	suite.Equal(http.StatusOK, w.Code)

	var auth models.AuthResponse
	suite.decodeData(w, &auth)
	suite.Equal("admin", auth.User.Username)
	suite.Equal(models.RoleAdmin, auth.User.Role)
	suite.Empty(auth.User.Password, "password hash must never leave the server")

	sessionCookies := w.Result().Cookies()
	suite.Require().NotEmpty(sessionCookies)

	// The cookie alone authenticates /auth/me
	w = suite.doRequest("GET", "/api/v1/auth/me", nil, "", sessionCookies)
	suite.Equal(http.StatusOK, w.Code)

	var me struct {
		User models.User `json:"user"`
	}
	suite.decodeData(w, &me)
	suite.Equal("admin", me.User.Username)

	// Logout clears the session; the refreshed cookie no longer works
	w = suite.doRequest("POST", "/api/v1/auth/logout", nil, "", sessionCookies)
	suite.Equal(http.StatusOK, w.Code)
	loggedOutCookies := w.Result().Cookies()

	w = suite.doRequest("GET", "/api/v1/auth/me", nil, "", loggedOutCookies)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *IntegrationTestSuite) TestLoginRejectsBadCredentials() {
	for _, payload := range []models.LoginRequest{
		{Username: "admin", Password: "wrong"},
		{Username: "ghost", Password: "admin123"},
	} {
		w := suite.doRequest("POST", "/api/v1/auth/login", payload, "", nil)
		suite.Equal(http.StatusUnauthorized, w.Code)
	}
}

func (suite *IntegrationTestSuite) TestUnauthenticatedRequestsRejected() {
	for _, path := range []string{"/api/v1/articles", "/api/v1/dashboard", "/api/v1/profile"} {
		w := suite.doRequest("GET", path, nil, "", nil)
		suite.Equal(http.StatusUnauthorized, w.Code, path)
	}

	w := suite.doRequest("GET", "/api/v1/articles", nil, "not-a-valid-token", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *IntegrationTestSuite) TestPublicListingShowsOnlyPublished() {
	w := suite.doRequest("GET", "/api/v1/public/articles", nil, "", nil)
	suite.Equal(http.StatusOK, w.Code)

	var listing struct {
		Articles []models.Article `json:"articles"`
		Total    int64            `json:"total"`
	}
	suite.decodeData(w, &listing)

	// The seed ships three published articles and one draft
	suite.EqualValues(3, listing.Total)
	for _, article := range listing.Articles {
		suite.Equal(models.StatusPublished, article.Status)
		suite.NotNil(article.PublishedAt)
		suite.NotEmpty(article.Category.Name, "category must be hydrated")
		suite.NotEmpty(article.Author.Username, "author must be hydrated")
	}
}

func (suite *IntegrationTestSuite) TestPublicListingCategoryFilter() {
	w := suite.doRequest("GET", "/api/v1/public/articles?category=teknologi", nil, "", nil)
	suite.Equal(http.StatusOK, w.Code)

	var listing struct {
		Articles []models.Article `json:"articles"`
		Total    int64            `json:"total"`
	}
	suite.decodeData(w, &listing)

	suite.EqualValues(1, listing.Total)
	suite.Require().Len(listing.Articles, 1)
	suite.Equal("perkembangan-teknologi-ai-indonesia-2024", listing.Articles[0].Slug)
}

func (suite *IntegrationTestSuite) TestDraftsHiddenFromPublicSlugLookup() {
	// The seeded draft
	w := suite.doRequest("GET", "/api/v1/public/articles/tips-menjaga-kesehatan-mental-era-digital", nil, "", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	// A published one resolves fine
	w = suite.doRequest("GET", "/api/v1/public/articles/perkembangan-teknologi-ai-indonesia-2024", nil, "", nil)
	suite.Equal(http.StatusOK, w.Code)

	var article models.Article
	suite.decodeData(w, &article)
	suite.Equal("Teknologi", article.Category.Name)
	suite.Equal("editor", article.Author.Username)
}

func (suite *IntegrationTestSuite) TestArticleLifecycle() {
	var teknologi models.Category
	suite.Require().NoError(suite.db.Where("slug = ?", "teknologi").First(&teknologi).Error)

	// Create a draft
	w := suite.doRequest("POST", "/api/v1/articles", models.CreateArticleRequest{
		Title:      "Uji Coba Jaringan 6G Pertama",
		Content:    "<p>Operator mulai menguji jaringan generasi keenam.</p>",
		CategoryID: teknologi.ID,
	}, suite.editorToken, nil)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var article models.Article
	suite.decodeData(w, &article)
	suite.Equal("uji-coba-jaringan-6g-pertama", article.Slug)
	suite.Equal(models.StatusDraft, article.Status)
	suite.Nil(article.PublishedAt)
	suite.Equal(suite.findUser("editor").ID, article.AuthorID)

	// Invisible to the public while draft
	w = suite.doRequest("GET", "/api/v1/public/articles/"+article.Slug, nil, "", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	// Publish it
	published := models.StatusPublished
	w = suite.doRequest("PUT", fmt.Sprintf("/api/v1/articles/%d", article.ID), models.UpdateArticleRequest{
		Status: &published,
	}, suite.editorToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	suite.decodeData(w, &article)
	suite.Require().NotNil(article.PublishedAt)
	firstPublishedAt := *article.PublishedAt

	// Now publicly visible
	w = suite.doRequest("GET", "/api/v1/public/articles/"+article.Slug, nil, "", nil)
	suite.Equal(http.StatusOK, w.Code)

	// Editing the published article keeps the original publish time
	excerpt := "Ringkasan uji coba jaringan 6G."
	w = suite.doRequest("PUT", fmt.Sprintf("/api/v1/articles/%d", article.ID), models.UpdateArticleRequest{
		Excerpt: &excerpt,
	}, suite.editorToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	suite.decodeData(w, &article)
	suite.Require().NotNil(article.PublishedAt)
	suite.True(article.PublishedAt.Equal(firstPublishedAt))

	// Delete and confirm it is gone
	w = suite.doRequest("DELETE", fmt.Sprintf("/api/v1/articles/%d", article.ID), nil, suite.editorToken, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.doRequest("GET", fmt.Sprintf("/api/v1/articles/%d", article.ID), nil, suite.editorToken, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IntegrationTestSuite) TestFeaturedAndRelated() {
	var teknologi models.Category
	suite.Require().NoError(suite.db.Where("slug = ?", "teknologi").First(&teknologi).Error)

	// Publish a fresh article; it becomes the featured one
	w := suite.doRequest("POST", "/api/v1/articles", models.CreateArticleRequest{
		Title:      "Startup Lokal Luncurkan Chip AI",
		Content:    "<p>Chip buatan dalam negeri untuk beban kerja AI.</p>",
		CategoryID: teknologi.ID,
		Status:     models.StatusPublished,
	}, suite.editorToken, nil)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var created models.Article
	suite.decodeData(w, &created)

	w = suite.doRequest("GET", "/api/v1/public/featured", nil, "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var featured models.Article
	suite.decodeData(w, &featured)
	suite.Equal(created.Slug, featured.Slug)

	// Related articles share the category and exclude the anchor
	w = suite.doRequest("GET", "/api/v1/public/articles/"+created.Slug+"/related", nil, "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var related struct {
		Articles []models.Article `json:"articles"`
	}
	suite.decodeData(w, &related)
	suite.Require().NotEmpty(related.Articles)
	suite.LessOrEqual(len(related.Articles), 4)
	for _, article := range related.Articles {
		suite.NotEqual(created.ID, article.ID)
		suite.Equal(teknologi.ID, article.CategoryID)
		suite.Equal(models.StatusPublished, article.Status)
	}
}

func (suite *IntegrationTestSuite) TestUserManagementIsAdminOnly() {
	// Editors are authenticated but not authorized
	w := suite.doRequest("GET", "/api/v1/users", nil, suite.editorToken, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	// Admins get through
	w = suite.doRequest("GET", "/api/v1/users", nil, suite.adminToken, nil)
	suite.Equal(http.StatusOK, w.Code)

	var listing struct {
		Users []models.User `json:"users"`
	}
	suite.decodeData(w, &listing)
	suite.Len(listing.Users, 2)
	for _, user := range listing.Users {
		suite.Empty(user.Password)
	}
}

func (suite *IntegrationTestSuite) TestAdminCannotDeleteOwnAccount() {
	admin := suite.findUser("admin")

	w := suite.doRequest("DELETE", fmt.Sprintf("/api/v1/users/%d", admin.ID), nil, suite.adminToken, nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	// Still present
	suite.Equal(admin.ID, suite.findUser("admin").ID)
}

func (suite *IntegrationTestSuite) TestCategoryLifecycleAndGuard() {
	// Create with a derived slug
	w := suite.doRequest("POST", "/api/v1/categories", models.CreateCategoryRequest{
		Name: "Gaya Hidup",
	}, suite.adminToken, nil)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var created models.Category
	suite.decodeData(w, &created)
	suite.Equal("gaya-hidup", created.Slug)

	// An empty category deletes fine
	w = suite.doRequest("DELETE", fmt.Sprintf("/api/v1/categories/%d", created.ID), nil, suite.adminToken, nil)
	suite.Equal(http.StatusOK, w.Code)

	// A category with articles does not
	var teknologi models.Category
	suite.Require().NoError(suite.db.Where("slug = ?", "teknologi").First(&teknologi).Error)

	w = suite.doRequest("DELETE", fmt.Sprintf("/api/v1/categories/%d", teknologi.ID), nil, suite.adminToken, nil)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *IntegrationTestSuite) TestPublicCategoriesWithCounts() {
	w := suite.doRequest("GET", "/api/v1/public/categories", nil, "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var listing struct {
		Categories []models.CategoryWithCount `json:"categories"`
	}
	suite.decodeData(w, &listing)
	suite.Require().Len(listing.Categories, 5)

	counts := map[string]int64{}
	for _, category := range listing.Categories {
		counts[category.Slug] = category.ArticleCount
	}
	suite.EqualValues(1, counts["teknologi"])
	suite.EqualValues(1, counts["kesehatan"], "drafts still count for the admin-facing totals")
	suite.EqualValues(0, counts["politik"])
}

func (suite *IntegrationTestSuite) TestDashboardStats() {
	w := suite.doRequest("GET", "/api/v1/dashboard", nil, suite.adminToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var stats models.DashboardStats
	suite.decodeData(w, &stats)

	suite.EqualValues(4, stats.TotalArticles)
	suite.EqualValues(3, stats.PublishedArticles)
	suite.EqualValues(1, stats.DraftArticles)
	suite.EqualValues(2, stats.TotalUsers)
	suite.EqualValues(5, stats.TotalCategories)
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}
