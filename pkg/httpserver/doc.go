// Package httpserver runs the site's HTTP listener with graceful shutdown
// and environment-driven configuration.
//
// A Server is built with New or NewFromConfig and functional options
// (WithAddr, WithReadTimeout, WithShutdownTimeout, ...). Run serves the
// supplied handler until the context is cancelled or an interrupt/TERM
// signal arrives, then drains in-flight requests within the configured
// shutdown deadline. WithStartHook and WithStopHook run side effects around
// the server lifecycle, receiving the configured logger.
//
// HealthCheckHandler serves liveness and readiness endpoints backed by an
// optional dependency check.
//
// Failures are wrapped with the ErrStart and ErrShutdown sentinels and can
// be inspected with errors.Is.
//
// Usage:
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithStartHook(func(l *slog.Logger) { l.Info("listening") }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
