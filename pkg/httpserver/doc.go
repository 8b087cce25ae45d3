// Package httpserver runs the console's http.Server with configured timeouts
// and graceful shutdown, and provides liveness and readiness handlers.
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run returns after ctx is cancelled and in-flight requests finished or the
// shutdown timeout passed.
package httpserver
