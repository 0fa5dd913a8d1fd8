// Package logger builds *slog.Logger instances with functional options and
// provides attribute constructors that keep key names consistent across the
// validation engine.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in a ContextHandler that runs registered ContextExtractor callbacks
// on every record, which is how request-scoped values end up in log lines.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("signup-form"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.DebugContext(ctx, "validation finished",
//	    logger.Target("email"),
//	    logger.Records(3),
//	    logger.Duration(time.Since(start)),
//	)
//
// Level and format can also come from the environment through Config
// (LOG_LEVEL, LOG_FORMAT) loaded with the config package.
//
// Error returns an empty attribute for a nil error, so it can be
// passed unconditionally.
package logger
