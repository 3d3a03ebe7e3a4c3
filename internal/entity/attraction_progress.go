package entity

import (
	"database/sql"
	"time"

	"gorm.io/gorm"
)

type AttractionProgress struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	AttractionID string     `gorm:"primaryKey"`
	Attraction   Attraction `gorm:"foreignKey:AttractionID"`

	CompletedTasks     int
	TotalTasks         int
	ProgressPercentage int

	// CompletedAt is set the first time the percentage reaches 100 and is
	// never cleared afterwards.
	CompletedAt sql.NullTime
}
