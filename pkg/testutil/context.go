package testutil

import (
	"context"
	"time"

	"github.com/trailpoint/backend/config"
	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/internal/model"
	"github.com/trailpoint/backend/pkg/authenticator"
	"github.com/trailpoint/backend/pkg/logger"
	"github.com/trailpoint/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockConfigs() config.Configs {
	return config.Configs{
		Env: "testing",
		ApiServer: config.ServerConfigs{
			DefaultLimit: 1,
			MaxLimit:     50,
		},
		Auth: config.AuthConfigs{
			TokenSecret: "secret",
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Secret:     "secret",
				Expiration: config.Duration{Duration: time.Minute},
			},
		},
		Task: config.TaskConfigs{
			Timezone:         "UTC",
			QuizMaxQuestions: 10,
			QuizMaxOptions:   10,
		},
	}
}

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := MockConfigs()

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.ERROR))
	ctx = xcontext.WithTokenEngine(ctx, authenticator.NewTokenEngine[model.AccessToken](cfg.Auth.AccessToken))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithUserID(userID string) context.Context {
	return xcontext.WithRequestUserID(MockContext(), userID)
}
