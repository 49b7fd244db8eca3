// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for a CLI build tool: console
// encoding with colored levels for interactive use, JSON for CI logs.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console (interactive) or json (CI)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("merge finished")
//
//	// Scoped to one locale:
//	l := log.With(zap.String("locale", "de"))
//	l.Warn("no extension resource file for locale")
package logger
