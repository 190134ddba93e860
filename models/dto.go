package models

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateUserRequest struct {
	Username  string   `json:"username" binding:"required,min=3,max=50"`
	Password  string   `json:"password" binding:"required,min=6"`
	Email     string   `json:"email" binding:"omitempty,email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Role      UserRole `json:"role,omitempty" binding:"omitempty,oneof=admin editor"`
}

// UpdateUserRequest only touches the fields present in the request body.
// A nil or empty password keeps the stored hash.
type UpdateUserRequest struct {
	Username  *string   `json:"username" binding:"omitempty,min=3,max=50"`
	Password  *string   `json:"password"`
	Email     *string   `json:"email" binding:"omitempty,email"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	Role      *UserRole `json:"role" binding:"omitempty,oneof=admin editor"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}

type CreateArticleRequest struct {
	Title         string        `json:"title" binding:"required,min=1,max=255"`
	Slug          string        `json:"slug"`
	Excerpt       string        `json:"excerpt"`
	Content       string        `json:"content" binding:"required"`
	FeaturedImage string        `json:"featured_image"`
	CategoryID    uint          `json:"category_id" binding:"required"`
	Status        ArticleStatus `json:"status" binding:"omitempty,oneof=draft published"`
}

type UpdateArticleRequest struct {
	Title         *string        `json:"title" binding:"omitempty,min=1,max=255"`
	Slug          *string        `json:"slug"`
	Excerpt       *string        `json:"excerpt"`
	Content       *string        `json:"content"`
	FeaturedImage *string        `json:"featured_image"`
	CategoryID    *uint          `json:"category_id"`
	Status        *ArticleStatus `json:"status" binding:"omitempty,oneof=draft published"`
}

const (
	OrderNewest = "newest"
	OrderOldest = "oldest"
	OrderTitle  = "title"
)

type ArticleListParams struct {
	Status     string `form:"status" binding:"omitempty,oneof=draft published"`
	CategoryID uint   `form:"category_id"`
	AuthorID   uint   `form:"author_id"`
	Search     string `form:"search"`
	OrderBy    string `form:"order_by,default=newest" binding:"omitempty,oneof=newest oldest title"`
	Limit      int    `form:"limit,default=10"`
	Offset     int    `form:"offset"`
}

type CategoryWithCount struct {
	Category
	ArticleCount int64 `json:"article_count"`
}

type DashboardStats struct {
	TotalArticles     int64 `json:"total_articles"`
	PublishedArticles int64 `json:"published_articles"`
	DraftArticles     int64 `json:"draft_articles"`
	TotalUsers        int64 `json:"total_users"`
	TotalCategories   int64 `json:"total_categories"`
}
