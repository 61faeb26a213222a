// Package router provides a typed HTTP router on top of net/http.ServeMux.
//
// Handlers receive a custom context type created by the context factory and
// return a handler.Response. Errors returned while rendering, panics, unknown
// paths and wrong methods all go through one error handler:
//
//	r := router.New[*web.Context](
//		router.WithContextFactory(web.NewContext),
//		router.WithErrorHandler(response.ErrorHandler[*web.Context]),
//		router.WithMiddleware(middleware.RequestID[*web.Context]()),
//	)
//	r.Get("/{$}", app.Home)
//	r.Post("/theme", app.ToggleTheme)
//
// Unknown paths produce ErrNotFound; a known path requested with an
// unregistered method produces ErrMethodNotAllowed with an Allow header.
package router
