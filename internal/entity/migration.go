package entity

import (
	"context"

	"github.com/trailpoint/backend/pkg/xcontext"
)

type Migration struct {
	Base

	Version string
}

// MigrateTable creates or updates every table of the engine. Production uses
// the versioned SQL migrations instead; this path serves local development
// and tests.
func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&Attraction{},
		&Task{},
		&Submission{},
		&AttractionProgress{},
		&PointLedgerEntry{},
		&Reward{},
		&UserReward{},
		&UserAggregate{},
		&Migration{},
	)
}
