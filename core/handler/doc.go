// Package handler defines the request processing abstractions shared by the
// router, middleware and application handlers.
//
// A handler receives a request context and returns a Response; the response
// is a deferred renderer, so middleware can wrap it after the handler ran:
//
//	func home(ctx *web.Context) handler.Response {
//		return response.Templ(view.Page(data))
//	}
//
// Middleware composes with Chain, first middleware outermost:
//
//	h := handler.Chain(home, middleware.RequestID[*web.Context]())
package handler
