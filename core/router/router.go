package router

import (
	"net/http"

	"github.com/dmitrymomot/koreannum/core/handler"
)

// Router dispatches requests to typed handlers. Patterns follow
// net/http.ServeMux syntax without the method prefix: "/{$}", "/static/{file}".
type Router[C handler.Context] interface {
	http.Handler

	Get(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Handle(method, pattern string, h handler.HandlerFunc[C])

	// Use appends middleware applied to every route, including routes
	// registered before the call.
	Use(middlewares ...handler.Middleware[C])

	Routes() []Route
}

// Route describes a registered endpoint.
type Route struct {
	Method  string
	Pattern string
}

// New creates a router. Without WithContextFactory the context type must be *Context.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux(opts...)
}
