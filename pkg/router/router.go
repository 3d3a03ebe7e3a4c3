package router

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mitchellh/mapstructure"
	"github.com/trailpoint/backend/config"
	"github.com/trailpoint/backend/internal/model"
	"github.com/trailpoint/backend/pkg/authenticator"
	"github.com/trailpoint/backend/pkg/errorx"
	"github.com/trailpoint/backend/pkg/logger"
	"github.com/trailpoint/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// HandlerFunc is an endpoint handler. The request is bound from the query
// string on GET and from the JSON body on POST.
type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. It may derive a new context, for
// example to attach the authenticated user id.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response is written, regardless of the outcome.
type CloserFunc func(ctx context.Context)

type Router struct {
	mux     *http.ServeMux
	baseCtx context.Context

	befores []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, logger logger.Logger) *Router {
	ctx := context.Background()
	ctx = xcontext.WithDB(ctx, db)
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger)
	ctx = xcontext.WithTokenEngine(ctx,
		authenticator.NewTokenEngine[model.AccessToken](cfg.Auth.AccessToken))

	return &Router{
		mux:     http.NewServeMux(),
		baseCtx: ctx,
	}
}

// Branch returns a router sharing the same mux and base context but with its
// own copy of the middleware chain, so sibling branches stay independent.
func (r *Router) Branch() *Router {
	branch := &Router{
		mux:     r.mux,
		baseCtx: r.baseCtx,
		befores: make([]MiddlewareFunc, len(r.befores)),
		closers: make([]CloserFunc, len(r.closers)),
	}
	copy(branch.befores, r.befores)
	copy(branch.closers, r.closers)
	return branch
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func (r *Router) Handler() http.Handler {
	return r.mux
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	handle(r, http.MethodGet, pattern, handler)
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	handle(r, http.MethodPost, pattern, handler)
}

func handle[Request, Response any](
	r *Router, method, pattern string, handler HandlerFunc[Request, Response],
) {
	befores := r.befores
	closers := r.closers

	r.mux.HandleFunc(pattern, func(w http.ResponseWriter, req *http.Request) {
		if req.Method != method {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		ctx := xcontext.WithHTTPRequest(r.baseCtx, req)

		defer func() {
			for _, closer := range closers {
				closer(ctx)
			}
		}()

		var err error
		for _, before := range befores {
			ctx, err = before(ctx)
			if err != nil {
				writeResponse(ctx, w, newErrorResponse(err))
				return
			}
		}

		request := new(Request)
		if err := bindRequest(req, method, request); err != nil {
			xcontext.Logger(ctx).Debugf("Cannot bind the request: %v", err)
			writeResponse(ctx, w, newErrorResponse(
				errorx.New(errorx.BadRequest, "Cannot bind the request")))
			return
		}

		resp, err := handler(ctx, request)
		if err != nil {
			writeResponse(ctx, w, newErrorResponse(err))
			return
		}

		writeResponse(ctx, w, newResponse(resp))
	})
}

func bindRequest(req *http.Request, method string, out any) error {
	if method == http.MethodPost {
		defer req.Body.Close()
		return json.NewDecoder(req.Body).Decode(out)
	}

	values := map[string]any{}
	for key, value := range req.URL.Query() {
		if len(value) > 0 {
			values[key] = value[0]
		}
	}

	// Query parameters arrive as strings; the weakly-typed decoder converts
	// them into the numeric and boolean fields of the request struct.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(values)
}
