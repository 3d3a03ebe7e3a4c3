package entity

import (
	"time"

	"github.com/trailpoint/backend/pkg/enum"
	"gorm.io/gorm"
)

type UserAggregateRange string

var (
	UserAggregateRangeWeek  = enum.New(UserAggregateRange("week"))
	UserAggregateRangeMonth = enum.New(UserAggregateRange("month"))
	UserAggregateRangeTotal = enum.New(UserAggregateRange("total"))
)

var UserAggregateRangeList = []UserAggregateRange{
	UserAggregateRangeWeek,
	UserAggregateRangeMonth,
	UserAggregateRangeTotal,
}

// UserAggregate is the additive per-range rollup behind the leaderboard. The
// authoritative records stay in submissions and the point ledger; this table
// only avoids re-summing them on every leaderboard query.
type UserAggregate struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	Range UserAggregateRange `gorm:"primaryKey"`

	// RangeValue identifies the concrete week or month of this row, for
	// example "35/2026". It is "0/0" for the total range.
	RangeValue string `gorm:"primaryKey"`

	TotalTasks uint64
	TotalXP    uint64
	TotalEP    uint64
}
