package xcontext

import (
	"context"
	"net/http"

	"github.com/trailpoint/backend/config"
	"github.com/trailpoint/backend/internal/model"
	"github.com/trailpoint/backend/pkg/authenticator"
	"github.com/trailpoint/backend/pkg/logger"
	"gorm.io/gorm"
)

type (
	dbKey          struct{}
	parentDBKey    struct{}
	loggerKey      struct{}
	configsKey     struct{}
	userIDKey      struct{}
	tokenEngineKey struct{}
	httpRequestKey struct{}
)

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

func DB(ctx context.Context) *gorm.DB {
	db, ok := ctx.Value(dbKey{}).(*gorm.DB)
	if !ok {
		panic("no database in context")
	}

	return db
}

// WithDBTransaction replaces the database in context by a new transaction.
// The caller must end it with WithCommitDBTransaction or
// WithRollbackDBTransaction.
func WithDBTransaction(ctx context.Context) context.Context {
	db := DB(ctx)
	ctx = context.WithValue(ctx, parentDBKey{}, db)
	return context.WithValue(ctx, dbKey{}, db.Begin())
}

func WithCommitDBTransaction(ctx context.Context) context.Context {
	DB(ctx).Commit()
	if parent, ok := ctx.Value(parentDBKey{}).(*gorm.DB); ok {
		return context.WithValue(ctx, dbKey{}, parent)
	}

	return ctx
}

// WithRollbackDBTransaction rollbacks the current transaction. It is a no-op
// if the transaction was already committed.
func WithRollbackDBTransaction(ctx context.Context) context.Context {
	DB(ctx).Rollback()
	if parent, ok := ctx.Value(parentDBKey{}).(*gorm.DB); ok {
		return context.WithValue(ctx, dbKey{}, parent)
	}

	return ctx
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Logger(ctx context.Context) logger.Logger {
	l, ok := ctx.Value(loggerKey{}).(logger.Logger)
	if !ok {
		return logger.NewLogger(logger.SILENCE)
	}

	return l
}

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	cfg, ok := ctx.Value(configsKey{}).(config.Configs)
	if !ok {
		return config.Configs{}
	}

	return cfg
}

func WithRequestUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

func RequestUserID(ctx context.Context) string {
	id, ok := ctx.Value(userIDKey{}).(string)
	if !ok {
		return ""
	}

	return id
}

func WithTokenEngine(
	ctx context.Context, engine authenticator.TokenEngine[model.AccessToken],
) context.Context {
	return context.WithValue(ctx, tokenEngineKey{}, engine)
}

func TokenEngine(ctx context.Context) authenticator.TokenEngine[model.AccessToken] {
	engine, ok := ctx.Value(tokenEngineKey{}).(authenticator.TokenEngine[model.AccessToken])
	if !ok {
		panic("no token engine in context")
	}

	return engine
}

func WithHTTPRequest(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, httpRequestKey{}, r)
}

func HTTPRequest(ctx context.Context) *http.Request {
	r, ok := ctx.Value(httpRequestKey{}).(*http.Request)
	if !ok {
		return nil
	}

	return r
}
