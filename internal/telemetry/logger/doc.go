// Package logger provides structured logging for d3ck-cfg.
//
// It wraps log/slog:
//
//   - logger.go: Logger interface, configuration and the default logger
//   - redact.go: masking of values stored under secret-looking keys
//
// Every logger owns its level, so a verbose store logging at debug level
// does not change what other loggers in the process emit. Nop returns a
// logger that discards everything; stores use it unless verbose mode is on.
package logger
