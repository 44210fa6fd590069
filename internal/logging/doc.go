// Package logging provides structured logging for the awscmds CLI using slog.
//
// Diagnostics always go to stderr so that the service:command listing on
// stdout stays pipeable. Text output is colorized when stderr is a terminal;
// JSON output is available for machine consumption, and [MultiHandler] tees
// records into an additional log file.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	ctx = logging.NewContext(ctx, logger)
//	logging.FromContext(ctx).Debug("running", "args", args)
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework.
package logging
