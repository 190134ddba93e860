package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"news-portal-cms/config"
	"news-portal-cms/handlers"
	"news-portal-cms/logger"
	"news-portal-cms/middleware"
	"news-portal-cms/repositories"
	"news-portal-cms/seed"
	"news-portal-cms/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found")
	}

	seedFlag := flag.Bool("seed", false, "seed the database with demo data")
	flag.Parse()

	// Initialize database
	db := config.InitDB()

	if *seedFlag {
		if err := seed.Run(db); err != nil {
			log.Fatal("Failed to seed database:", err)
		}
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	uploadRepo := repositories.NewUploadRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	articleService := services.NewArticleService(articleRepo, categoryRepo)
	uploadService := services.NewUploadService(uploadRepo)
	dashboardService := services.NewDashboardService(articleRepo, userRepo, categoryRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	articleHandler := handlers.NewArticleHandler(articleService, categoryService)
	uploadHandler := handlers.NewUploadHandler(uploadService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Setup router
	router := gin.Default()
	router.MaxMultipartMemory = config.MaxUploadSize

	// Cookie session store
	store := cookie.NewStore(config.SessionSecret())
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   config.SessionMaxAge,
		HttpOnly: true,
	})
	router.Use(sessions.Sessions(config.SessionCookieName, store))

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Serve uploaded files
	if err := os.MkdirAll(config.UploadDir(), 0o755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}
	router.Static("/uploads", config.UploadDir())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.AuthMiddleware(), authHandler.GetProfile)
		}

		// Public routes (published content only)
		public := v1.Group("/public")
		{
			public.GET("/articles", articleHandler.GetPublicArticles)
			public.GET("/articles/:slug", articleHandler.GetPublicArticle)
			public.GET("/articles/:slug/related", articleHandler.GetRelatedArticles)
			public.GET("/featured", articleHandler.GetFeaturedArticle)
			public.GET("/categories", categoryHandler.GetCategories)
			public.GET("/categories/:slug", categoryHandler.GetCategory)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Dashboard
			protected.GET("/dashboard", dashboardHandler.GetStats)

			// Articles
			articles := protected.Group("/articles")
			{
				articles.GET("", articleHandler.GetArticles)
				articles.POST("", articleHandler.CreateArticle)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.PUT("/:id", articleHandler.UpdateArticle)
				articles.DELETE("/:id", articleHandler.DeleteArticle)
			}

			// Categories
			categories := protected.Group("/categories")
			{
				categories.GET("", categoryHandler.GetCategories)
				categories.POST("", categoryHandler.CreateCategory)
				categories.PUT("/:id", categoryHandler.UpdateCategory)
				categories.DELETE("/:id", categoryHandler.DeleteCategory)
			}

			// Uploads
			uploads := protected.Group("/uploads")
			{
				uploads.POST("", uploadHandler.Upload)
				uploads.GET("", uploadHandler.GetUploads)
				uploads.DELETE("/:id", uploadHandler.DeleteUpload)
			}

			// User management (admin only)
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

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Infof("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
