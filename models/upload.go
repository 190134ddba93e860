package models

import "time"

type Upload struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	FileName     string    `json:"file_name" gorm:"not null"`
	OriginalName string    `json:"original_name" gorm:"not null"`
	FilePath     string    `json:"file_path" gorm:"not null"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	UploadedBy   uint      `json:"uploaded_by" gorm:"not null"`
	Uploader     User      `json:"uploader,omitempty" gorm:"foreignKey:UploadedBy"`
	CreatedAt    time.Time `json:"created_at"`
}
