// Package config loads environment variables into typed structs using Go
// generics. Each configuration type is parsed once and cached.
//
// A .env file in the working directory, if present, is loaded on first use
// (joho/godotenv); variables already set in the process win. Parsing uses
// caarlos0/env struct tags, so nested component configs are filled in one pass:
//
//	type Config struct {
//		Cookie cookie.Config // COOKIE_PATH, COOKIE_MAX_AGE, COOKIE_SECURE, ...
//		Server server.Config // SERVER_ADDR, SERVER_READ_TIMEOUT, ...
//
//		AppName  string `env:"APP_NAME" envDefault:"koreannum"`
//		Env      string `env:"APP_ENV" envDefault:"development"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg web.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// MustLoad panics instead of returning the error, for use in main.
//
// # Caching
//
// The first Load of a type parses the environment; later calls for the same
// type copy the cached value, so SERVER_ADDR changed after startup is not
// seen. Reset clears the cache, which tests use between cases:
//
//	t.Setenv("SERVER_ADDR", ":9090")
//	config.Reset()
//	var cfg server.Config
//	config.MustLoad(&cfg) // cfg.Addr == ":9090"
package config
