// Package logging provides structured logging for wordfind.
//
// It wraps log/slog with a JSON handler. Logging is off by default; when
// enabled in the config, entries go to wordfind.log inside the configured
// log directory and the file is rotated by size.
//
// # Usage
//
//	logger, err := logging.NewLogger(dir, "INFO", logging.DefaultRotationConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	replLog := logger.WithComponent("repl")
//	replLog.Info("command parsed", "filters", 2)
//
// Child loggers created with WithComponent or With share the parent's writer.
// Use NopLogger in tests and when logging is disabled.
package logging
