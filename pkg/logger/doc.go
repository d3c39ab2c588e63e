// Package logger provides a slog.Logger factory with sane production
// defaults: JSON output, info level, stdout.
//
//	log := logger.New(
//		logger.WithService("sentinel-site"),
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//	)
package logger
