package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/koreannum/app/catalog"
	"github.com/dmitrymomot/koreannum/app/language"
	"github.com/dmitrymomot/koreannum/core/config"
	"github.com/dmitrymomot/koreannum/core/cookie"
	"github.com/dmitrymomot/koreannum/core/logger"
	"github.com/dmitrymomot/koreannum/core/response"
	"github.com/dmitrymomot/koreannum/core/router"
	"github.com/dmitrymomot/koreannum/core/server"
	"github.com/dmitrymomot/koreannum/middleware"
)

var ErrCatalogIncomplete = errors.New("web: catalog has no content for a language")

type App struct {
	config  Config
	router  router.Router[*Context]
	server  *server.Server
	cookie  *cookie.Manager
	catalog *catalog.Catalog
	logger  *slog.Logger
}

type AppOption func(*App) error

// NewApp loads Config from the environment, applies opts and registers the routes.
// Components not supplied through options are built from the config.
func NewApp(opts ...AppOption) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	app := &App{config: cfg}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		app.logger = NewLogger(app.config)
	}

	if app.catalog == nil {
		c, err := catalog.Embedded()
		if err != nil {
			return nil, err
		}
		app.catalog = c
	}

	if app.router == nil {
		app.router = router.New(
			router.WithContextFactory(NewContext),
			router.WithErrorHandler[*Context](response.ErrorHandler[*Context]),
			router.WithLogger[*Context](app.logger),
			router.WithMiddleware(
				middleware.RequestID[*Context](),
				middleware.LoggingWithLogger[*Context](app.logger),
				middleware.SecurityHeaders[*Context](),
			),
		)
	}

	if app.cookie == nil {
		app.cookie = cookie.NewFromConfig(app.config.Cookie)
	}

	if app.server == nil {
		s, err := server.NewFromConfig(app.config.Server, server.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	app.registerRoutes()

	return app, nil
}

// NewLogger builds the application logger for cfg.Env and cfg.LogLevel.
func NewLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{logger.WithDevelopment(cfg.AppName)}
	if cfg.Env == EnvProduction {
		opts = []logger.Option{logger.WithProduction(cfg.AppName)}
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	return logger.New(opts...)
}

func WithConfig(cfg Config) AppOption {
	return func(app *App) error {
		app.config = cfg
		return nil
	}
}

func WithLogger(logger *slog.Logger) AppOption {
	return func(app *App) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = logger
		return nil
	}
}

func WithRouter(router router.Router[*Context]) AppOption {
	return func(app *App) error {
		if router == nil {
			return errors.New("router cannot be nil")
		}
		app.router = router
		return nil
	}
}

func WithServer(server *server.Server) AppOption {
	return func(app *App) error {
		if server == nil {
			return errors.New("server cannot be nil")
		}
		app.server = server
		return nil
	}
}

func WithCookieManager(cookie *cookie.Manager) AppOption {
	return func(app *App) error {
		if cookie == nil {
			return errors.New("cookie manager cannot be nil")
		}
		app.cookie = cookie
		return nil
	}
}

func WithCatalog(c *catalog.Catalog) AppOption {
	return func(app *App) error {
		if c == nil {
			return errors.New("catalog cannot be nil")
		}
		app.catalog = c
		return nil
	}
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.router
}

// Routes lists the registered routes.
func (a *App) Routes() []router.Route {
	return a.router.Routes()
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Config returns the effective configuration.
func (a *App) Config() Config {
	return a.config
}

// Addr returns the address the server listens on.
func (a *App) Addr() string {
	return a.server.Addr()
}

// Run returns an errgroup-compatible function serving until ctx is done.
func (a *App) Run(ctx context.Context) func() error {
	return a.server.Run(ctx, a.router)
}

// checkCatalog reports whether every language resolves to content.
func (a *App) checkCatalog(context.Context) error {
	for _, l := range language.All() {
		if a.catalog.Lookup(l).Topic == "" {
			return fmt.Errorf("%w: %s", ErrCatalogIncomplete, l)
		}
	}
	return nil
}
