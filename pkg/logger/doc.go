// Package logger builds *slog.Logger instances for the form service and
// provides attribute helpers that keep key names consistent across packages.
//
// New creates a logger configured by Option functions: output format (text or
// json), minimum level, static attributes and ContextExtractor callbacks that
// pull request-scoped values such as the request id out of context.Context on
// every record.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "formd"),
//	    logger.WithContextExtractors(requestid.LogExtractor()),
//	)
//	log.InfoContext(ctx, "form validated",
//	    logger.Form("signup"),
//	    logger.Count(len(errs)),
//	    logger.Duration(time.Since(start)),
//	)
//
// Error, Errors and Fields return an empty attribute for nil or empty input,
// so they can be passed unconditionally.
package logger
