// Package logging provides structured logging for lootsort. The Logger
// interface defines the standard logging methods (Debug, Info, Warn, Error)
// that the engine and the CLI use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping a plain *slog.Logger
//   - StructuredLogger with component and refresh context
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	eng := engine.New(func(o *engine.Options) {
//	    o.Logger = logger.WithComponent("engine")
//	})
//
// Classification, derivation and comparison never log; only the layers
// orchestrating a refresh do.
package logging
