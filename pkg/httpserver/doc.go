// Package httpserver runs an http.Handler with graceful shutdown.
//
//	srv := httpserver.New(httpserver.WithAddr(":8080"), httpserver.WithLogger(log))
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run binds the listener before returning control to the accept loop, so a bad
// address fails immediately with ErrStart. Cancelling ctx drains in-flight
// requests for up to the shutdown timeout.
//
// HealthHandler serves liveness and readiness probes.
package httpserver
