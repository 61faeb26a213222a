package health

import (
	"github.com/dmitrymomot/koreannum/core/handler"
	"github.com/dmitrymomot/koreannum/core/response"
)

// Liveness indicates if the service process is running.
// Always returns "ALIVE" with 200 OK. No dependency checks.
//
//	r.Get("/healthz", health.Liveness[*web.Context])
func Liveness[C handler.Context](C) handler.Response {
	return response.String("ALIVE")
}
