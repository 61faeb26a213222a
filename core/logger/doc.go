// Package logger provides structured logging utilities built on Go's standard slog package.
//
// Create loggers with the factory function and functional options:
//
//	log := logger.New(
//		logger.WithDevelopment("koreannum"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Info("server starting",
//		logger.Component("server"),
//		logger.Event("startup"),
//	)
//
// # Environment Configurations
//
//	// Development: text format, debug level, stdout
//	devLogger := logger.New(logger.WithDevelopment("koreannum"))
//
//	// Production: JSON format, info level, stdout
//	prodLogger := logger.New(logger.WithProduction("koreannum"))
//
// # Attributes
//
// Attribute helpers such as Error, RequestID and Theme return an empty
// slog.Attr for zero values, which slog drops, so they are safe to pass
// unconditionally:
//
//	log.Error("persist theme", logger.Error(err), logger.Theme(current))
package logger
