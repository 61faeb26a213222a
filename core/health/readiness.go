package health

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/koreannum/core/handler"
	"github.com/dmitrymomot/koreannum/core/logger"
	"github.com/dmitrymomot/koreannum/core/response"
)

// Readiness verifies all checks succeed.
// Returns "READY" if they do, 503 Service Unavailable otherwise.
//
//	r.Get("/readyz", health.Readiness[*web.Context](log, catalogCheck))
func Readiness[C handler.Context](log *slog.Logger, checks ...func(context.Context) error) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Component("health"), logger.Error(err))
				return response.Error(response.ErrServiceUnavailable)
			}
		}
		return response.String("READY")
	}
}
