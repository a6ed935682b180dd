// Package logging provides structured logging for itemctl.
//
// This package wraps a zap logger with convenience functions. Logging is silent
// by default: nothing is written unless a level is passed to Initialize or the
// ITEMCTL_LOG_LEVEL environment variable is set.
//
// # Log Levels
//
//   - Debug: request URLs, view operation outcomes
//   - Info: completed API responses with status and elapsed time
//   - Warn: requests that never produced a response
//   - Error: startup failures
//
// # Configuration
//
// One-shot CLI commands log to stderr:
//
//	if err := logging.Initialize(level, ""); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// The interactive front-end owns the terminal, so it only logs when a file is
// given (--log-file):
//
//	_ = logging.Initialize(level, "/tmp/itemctl.log")
//
// # API Logging
//
//	logging.LogAPIRequest("GET", url)
//	logging.LogAPIResponse("GET", url, 200, elapsed)
//	logging.LogAPIFailure("GET", url, err)
package logging
