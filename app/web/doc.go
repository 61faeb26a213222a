// Package web wires the Korean numbers page into an HTTP application.
//
// Routes:
//
//	GET  /                page; ?lang=en|pl picks the language
//	POST /theme           toggles the theme cookie, 303 back to /?lang=<current>
//	GET  /static/...      embedded assets (app.css)
//	GET  /healthz         liveness
//	GET  /readyz          readiness (catalog completeness)
//
// Every request builds its own theme preference over the "theme" cookie and
// its own language provider, so handlers share nothing but the immutable
// catalog.
//
//	app, err := web.NewApp()
//	if err != nil {
//		return err
//	}
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(app.Run(ctx))
//	return g.Wait()
package web
