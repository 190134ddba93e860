package seed

import (
	"time"

	"news-portal-cms/logger"
	"news-portal-cms/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Run populates an empty database with a demo admin/editor pair,
// the default categories and a handful of articles. It is a no-op when
// users already exist.
func Run(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		logger.Info("database already seeded, skipping")
		return nil
	}

	admin, err := seedUser(db, "admin", "admin123", "admin@newsportal.com", "Admin", "User", models.RoleAdmin)
	if err != nil {
		return err
	}
	editor, err := seedUser(db, "editor", "editor123", "editor@newsportal.com", "Editor", "User", models.RoleEditor)
	if err != nil {
		return err
	}

	categories := []models.Category{
		{Name: "Politik", Slug: "politik", Description: "Berita politik terkini dan analisis mendalam"},
		{Name: "Ekonomi", Slug: "ekonomi", Description: "Update ekonomi, bisnis, dan keuangan"},
		{Name: "Teknologi", Slug: "teknologi", Description: "Perkembangan teknologi dan inovasi terbaru"},
		{Name: "Olahraga", Slug: "olahraga", Description: "Berita olahraga dan pertandingan terkini"},
		{Name: "Kesehatan", Slug: "kesehatan", Description: "Tips kesehatan dan berita medis terkini"},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			return err
		}
	}

	now := time.Now()
	articles := []models.Article{
		{
			Title:      "Perkembangan Teknologi AI di Indonesia Tahun 2024",
			Slug:       "perkembangan-teknologi-ai-indonesia-2024",
			Excerpt:    "Indonesia mengalami pertumbuhan signifikan dalam adopsi teknologi artificial intelligence di berbagai sektor.",
			Content:    "<p>Indonesia sedang mengalami revolusi teknologi dengan berkembangnya artificial intelligence di berbagai sektor.</p>",
			CategoryID: categories[2].ID,
			AuthorID:   editor.ID,
			Status:     models.StatusPublished,
			PublishedAt: &now,
		},
		{
			Title:      "Pertumbuhan Ekonomi Digital Indonesia Mencapai Rekor Tertinggi",
			Slug:       "pertumbuhan-ekonomi-digital-indonesia-rekor-tertinggi",
			Excerpt:    "Sektor ekonomi digital Indonesia tumbuh pesat dan menjadi salah satu kontributor utama pertumbuhan ekonomi nasional.",
			Content:    "<p>Ekonomi digital Indonesia mengalami pertumbuhan yang luar biasa di tahun ini.</p>",
			CategoryID: categories[1].ID,
			AuthorID:   admin.ID,
			Status:     models.StatusPublished,
			PublishedAt: &now,
		},
		{
			Title:      "Tim Nasional Indonesia Meraih Prestasi Gemilang di Turnamen Asia",
			Slug:       "tim-nasional-indonesia-prestasi-turnamen-asia",
			Excerpt:    "Prestasi membanggakan diraih tim nasional Indonesia dalam turnamen bergengsi di kawasan Asia.",
			Content:    "<p>Tim nasional Indonesia berhasil meraih prestasi gemilang dalam turnamen sepak bola Asia.</p>",
			CategoryID: categories[3].ID,
			AuthorID:   editor.ID,
			Status:     models.StatusPublished,
			PublishedAt: &now,
		},
		{
			Title:      "Tips Menjaga Kesehatan Mental di Era Digital",
			Slug:       "tips-menjaga-kesehatan-mental-era-digital",
			Excerpt:    "Panduan praktis untuk menjaga kesehatan mental di tengah pesatnya perkembangan teknologi digital.",
			Content:    "<p>Di era digital ini, menjaga kesehatan mental menjadi semakin penting.</p>",
			CategoryID: categories[4].ID,
			AuthorID:   admin.ID,
			Status:     models.StatusDraft,
		},
	}
	for i := range articles {
		if err := db.Create(&articles[i]).Error; err != nil {
			return err
		}
	}

	logger.Info("database seeded, log in with admin/admin123 or editor/editor123")
	return nil
}

func seedUser(db *gorm.DB, username, password, email, firstName, lastName string, role models.UserRole) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  username,
		Password:  string(hashedPassword),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
