package middleware

import (
	"context"

	"github.com/trailpoint/backend/pkg/router"
	"github.com/trailpoint/backend/pkg/xcontext"
)

// Logger records every served request.
func Logger() router.CloserFunc {
	return func(ctx context.Context) {
		req := xcontext.HTTPRequest(ctx)
		xcontext.Logger(ctx).Infof("Served %s %s", req.Method, req.URL.Path)
	}
}
