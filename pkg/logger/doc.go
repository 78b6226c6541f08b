// Package logger builds *slog.Logger instances for alertbox components and
// provides attribute helpers so every component names its log keys the same
// way.
//
// New accepts functional options selecting the output format (text or json),
// the minimum level, static attributes and context extractors. Extractors run
// on every record, which lets request-scoped values such as a request id flow
// into log lines without threading them through call sites.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "alertbox-demo"),
//	    logger.WithContextValue("request_id", middleware.RequestIDKey),
//	)
//
//	log.DebugContext(ctx, "alert added",
//	    logger.Position("panels::footer"),
//	    logger.AlertID(cfg.ID),
//	    logger.Severity(string(cfg.Severity)),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
