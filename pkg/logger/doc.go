// Package logger builds configured log/slog loggers with JSON or text
// output, functional options and env-tag configuration.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithAttr(slog.String("service", "web")),
//	)
//	logger.SetAsDefault(log)
package logger
