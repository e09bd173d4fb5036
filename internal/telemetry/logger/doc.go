// Package logger provides structured logging for kappa-cli.
//
//   - logger.go: slog-backed Logger, level and format configuration
//   - context.go: context propagation of the logger and request ID
//   - redact.go: redaction of secrets and credentials
//
// The interactive transcript owns stdout, so logging always targets stderr
// and stays at warn unless raised with --log-level or --verbose.
package logger
