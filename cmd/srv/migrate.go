package main

import (
	"fmt"

	"github.com/trailpoint/backend/migration"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(cctx *cli.Context) error {
	if err := s.loadConfig(cctx); err != nil {
		return err
	}
	s.loadLogger()
	s.loadDatabase()

	version := cctx.String("version")
	migrator, ok := migration.Migrators[version]
	if !ok {
		return fmt.Errorf("not found version %s", version)
	}

	return migrator(s.ctx)
}
