// Package log provides a simplified structured logging interface based on
// [log/slog].
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("case accepted", slog.Int("case", 1))
//
// # Configuration
//
// Loggers are configured with functional options applied at creation time:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("Kitchen"))
//
// [Logger.Wrap] derives a logger with a modified configuration and
// [Logger.With] one that adds attributes to every record.
//
// # Package-Level Logger
//
// The package-level functions ([Info], [ErrorContext], ...) write to a
// default logger on standard error, reconfigured with [Config].
//
// # Levels
//
// In addition to the slog levels, [LevelTrace] sits below [LevelDebug] and
// is used for per-span tracing in the recognizer and reconstructor.
package log
