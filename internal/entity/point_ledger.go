package entity

import (
	"github.com/trailpoint/backend/pkg/enum"
)

type PointCurrency string

var (
	// PointXP is the experience currency granted per verified task.
	PointXP = enum.New(PointCurrency("xp"))

	// PointEP is the exploration currency granted per verified task.
	PointEP = enum.New(PointCurrency("ep"))
)

// PointLedgerEntry is an append-only record. Balances are the running sum of
// entries per currency; corrections are modeled as compensating entries.
type PointLedgerEntry struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	Amount   int64
	Currency PointCurrency

	Reason     string
	SourceType string
	SourceID   string
}
