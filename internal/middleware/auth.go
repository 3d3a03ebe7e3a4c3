package middleware

import (
	"context"
	"strings"

	"github.com/trailpoint/backend/pkg/errorx"
	"github.com/trailpoint/backend/pkg/router"
	"github.com/trailpoint/backend/pkg/xcontext"
)

// AuthVerifier authenticates requests with the access token issued by the
// identity collaborator. The token is taken from the Authorization header or
// from the cookie named after the configured token name.
type AuthVerifier struct{}

func NewAuthVerifier() *AuthVerifier {
	return &AuthVerifier{}
}

func (v *AuthVerifier) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		token := getAccessToken(ctx)
		if token == "" {
			return ctx, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		info, err := xcontext.TokenEngine(ctx).Verify(token)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Cannot verify access token: %v", err)
			return ctx, errorx.New(errorx.Unauthenticated, "Invalid access token")
		}

		return xcontext.WithRequestUserID(ctx, info.ID), nil
	}
}

func getAccessToken(ctx context.Context) string {
	req := xcontext.HTTPRequest(ctx)

	authorization := req.Header.Get("Authorization")
	auth, token, found := strings.Cut(authorization, " ")
	if found {
		if auth == "Bearer" {
			return token
		}

		return ""
	}

	cookie, err := req.Cookie(xcontext.Configs(ctx).Auth.AccessToken.Name)
	if err != nil {
		return ""
	}

	return cookie.Value
}
