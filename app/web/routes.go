package web

import (
	"github.com/dmitrymomot/koreannum/app/view"
	"github.com/dmitrymomot/koreannum/core/health"
	"github.com/dmitrymomot/koreannum/core/static"
)

func (a *App) registerRoutes() {
	a.router.Get("/{$}", a.home)
	a.router.Post(view.ThemeAction, a.toggleTheme)
	a.router.Get("/static/", static.FS[*Context](view.Assets(),
		static.WithSubFS("static"),
		static.WithFSStripPrefix("/static"),
		static.WithCacheControl("public, max-age=3600"),
	))
	a.router.Get("/healthz", health.Liveness[*Context])
	a.router.Get("/readyz", health.Readiness[*Context](a.logger, a.checkCatalog))
}
