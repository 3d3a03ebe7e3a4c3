package migration

import (
	"context"

	"github.com/trailpoint/backend/internal/entity"
)

// AutoMigrate syncs the schema straight from the entity definitions. It is
// meant for local development; deployed databases use the SQL migrations.
func AutoMigrate(ctx context.Context) error {
	return entity.MigrateTable(ctx)
}
