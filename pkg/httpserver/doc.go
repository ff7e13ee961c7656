// Package httpserver runs an http.Handler with graceful shutdown.
//
// Server.Run blocks until the context is cancelled, SIGINT or SIGTERM
// arrives, or the listener fails. Shutdown drains in-flight requests within
// the configured deadline. Listen errors wrap ErrStart and shutdown errors
// wrap ErrShutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// HealthHandler serves liveness and readiness probes.
package httpserver
