// Package koreannum serves a two-panel reference page comparing the native and
// Sino-Korean number systems, in English or Polish, with a light or dark theme.
//
// The page is recomputed on every request from two values: the theme, persisted
// in the "theme" cookie, and the language, taken from the "lang" query
// parameter.
//
// # Package Organization
//
// Application packages:
//
//	github.com/dmitrymomot/koreannum/app/theme     - Theme enum, preference store and document marker
//	github.com/dmitrymomot/koreannum/app/language  - Language enum, provider and handles
//	github.com/dmitrymomot/koreannum/app/catalog   - Embedded per-language content and labels
//	github.com/dmitrymomot/koreannum/app/view      - templ components for the page
//	github.com/dmitrymomot/koreannum/app/web       - HTTP application wiring and handlers
//	github.com/dmitrymomot/koreannum/cmd/koreannum - serve and render commands
//
// Core packages:
//
//	github.com/dmitrymomot/koreannum/core/config   - Type-safe environment variable loading
//	github.com/dmitrymomot/koreannum/core/cookie   - Cookie manager with size limits
//	github.com/dmitrymomot/koreannum/core/handler  - Generic handler, response and middleware types
//	github.com/dmitrymomot/koreannum/core/health   - Liveness and readiness handlers
//	github.com/dmitrymomot/koreannum/core/logger   - slog construction and attribute helpers
//	github.com/dmitrymomot/koreannum/core/response - HTML, text, redirect and error responses
//	github.com/dmitrymomot/koreannum/core/router   - Method-aware router with custom contexts
//	github.com/dmitrymomot/koreannum/core/server   - HTTP server with graceful shutdown
//	github.com/dmitrymomot/koreannum/core/static   - Embedded asset serving
//	github.com/dmitrymomot/koreannum/middleware    - Request ID, logging and security headers
//
// # Example Usage
//
//	app, err := web.NewApp()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	eg, ctx := errgroup.WithContext(ctx)
//	eg.Go(app.Run(ctx))
//	if err := eg.Wait(); err != nil {
//		log.Fatal(err)
//	}
package koreannum
