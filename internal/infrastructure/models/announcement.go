package models

import (
	"time"

	"github.com/google/uuid"
)

type Announcement struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:varchar(200);not null"`
	TitleK    string    `gorm:"column:title_k;type:varchar(200)"`
	Message   string    `gorm:"type:text;not null"`
	MessageK  string    `gorm:"column:message_k;type:text"`
	Link      string    `gorm:"type:text"`
	Date      string    `gorm:"type:varchar(40)"`
	MediaURL  string    `gorm:"type:text"`
	MediaType string    `gorm:"type:varchar(10)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
