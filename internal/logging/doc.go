// Package logging provides structured logging for the rpidisplay tools.
//
// This package wraps zap with convenience functions for common logging
// patterns: install step tracking, external command execution, and
// settings file loading.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (command output sizes, probe results)
//   - Info: Normal operations (steps starting/finishing, files loaded)
//   - Warn: Non-fatal issues (unknown settings keys, skipped checks)
//   - Error: Fatal issues (failed steps, unreadable files)
//
// # Configuration
//
// Logging is silent by default so the CLIs own their terminal output.
// Set RPIDISPLAY_LOG_LEVEL=debug (or info/warn/error) to see logs:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
