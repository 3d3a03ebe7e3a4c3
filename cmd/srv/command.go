package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var configFlag = &cli.StringFlag{
	Name:  "config",
	Usage: "Path of the toml configuration file",
	Value: "config.toml",
}

func (s *srv) loadApp() {
	s.ctx = context.Background()

	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "Trailpoint"
	app.Usage = ""
	app.Commands = []*cli.Command{
		{
			Action:      server.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Flags:       []cli.Flag{configFlag},
			Category:    "Api",
			Description: `Used for start service api, it main service included all apis.`,
		},
		{
			Action: server.startMigrate,
			Name:   "migrate",
			Usage:  "Migrate database",
			Flags: []cli.Flag{
				configFlag,
				&cli.StringFlag{
					Name:  "version",
					Usage: "The migration version to run",
					Value: "sql",
				},
			},
			Category:    "Database",
			Description: `Used to create or upgrade the database schema.`,
		},
	}

	s.app = app
}
