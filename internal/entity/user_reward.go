package entity

import (
	"time"

	"gorm.io/gorm"
)

type UserReward struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	RewardID string `gorm:"primaryKey"`
	Reward   Reward `gorm:"foreignKey:RewardID"`
}
