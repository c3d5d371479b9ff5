package models

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(120);not null"`
	NameK        string    `gorm:"column:name_k;type:varchar(120)"`
	Photo        string    `gorm:"type:text"`
	DisplayOrder int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Member struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TeamID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Email     string    `gorm:"type:varchar(200);not null"`
	Phone     string    `gorm:"type:varchar(30);not null"`
	Role      string    `gorm:"type:varchar(10);not null"`
	ImageURL  string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
