package models

import (
	"time"

	"github.com/google/uuid"
)

type GalleryItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Desc      string    `gorm:"type:varchar(300);not null"`
	MediaURL  string    `gorm:"type:text;not null"`
	MediaType string    `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time
}

type ContactMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Email     string    `gorm:"type:varchar(200);not null"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}
