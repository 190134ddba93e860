package models

import (
	"time"

	"gorm.io/gorm"
)

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
)

type Article struct {
	ID            uint           `json:"id" gorm:"primarykey"`
	Title         string         `json:"title" gorm:"not null"`
	Slug          string         `json:"slug" gorm:"uniqueIndex;not null"`
	Excerpt       string         `json:"excerpt" gorm:"type:text"`
	Content       string         `json:"content" gorm:"type:text;not null"`
	FeaturedImage string         `json:"featured_image"`
	CategoryID    uint           `json:"category_id" gorm:"not null"`
	Category      Category       `json:"category" gorm:"foreignKey:CategoryID"`
	AuthorID      uint           `json:"author_id" gorm:"not null"`
	Author        User           `json:"author" gorm:"foreignKey:AuthorID"`
	Status        ArticleStatus  `json:"status" gorm:"default:'draft'"`
	PublishedAt   *time.Time     `json:"published_at"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}
