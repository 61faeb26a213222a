// Package middleware provides HTTP middleware built on handler.Middleware:
// request IDs, request logging and security headers.
//
//	r := router.New[*web.Context](
//		router.WithContextFactory(web.NewContext),
//		router.WithMiddleware(
//			middleware.RequestID[*web.Context](),
//			middleware.LoggingWithLogger[*web.Context](log),
//			middleware.SecurityHeaders[*web.Context](),
//		),
//	)
//
// Middleware wraps the returned handler.Response, so headers are set and
// requests are logged when the response is actually written.
package middleware
