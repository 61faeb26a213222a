package web

import (
	"github.com/dmitrymomot/koreannum/core/cookie"
	"github.com/dmitrymomot/koreannum/core/server"
)

// Environments accepted in APP_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Cookie cookie.Config
	Server server.Config

	AppName  string `env:"APP_NAME" envDefault:"koreannum"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// DefaultConfig mirrors the envDefault tags.
func DefaultConfig() Config {
	return Config{
		Cookie:   cookie.DefaultConfig(),
		Server:   server.DefaultConfig(),
		AppName:  "koreannum",
		Env:      EnvDevelopment,
		LogLevel: "info",
	}
}
