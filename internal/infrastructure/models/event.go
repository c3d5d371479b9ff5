package models

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title        string    `gorm:"type:varchar(200);not null"`
	TitleK       string    `gorm:"column:title_k;type:varchar(200)"`
	Description  string    `gorm:"type:text;not null"`
	DescriptionK string    `gorm:"column:description_k;type:text"`
	Date         string    `gorm:"type:varchar(40);not null"`
	EventTime    string    `gorm:"type:varchar(40)"`
	Location     string    `gorm:"type:varchar(200)"`
	Link         string    `gorm:"type:text"`
	ImageURL     string    `gorm:"type:text"`
	Published    bool      `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
