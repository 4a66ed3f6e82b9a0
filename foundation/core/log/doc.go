// Package log provides structured logging for the calendar library and its
// command line tool.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with JSON, text, console and logfmt
//              output. Errors from the error package are logged with their
//              code, severity and details, and the severity picks the level.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-08-14 v0.2.0: Dropped async and request scoped context, kept correlation IDs
//
// Usage:
//
//	import mdwlog "github.com/msto63/mdwcal/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatConsole).
//		WithName("caldate").
//		WithCorrelationID(id)
//
//	logger.Info("calendar ready", mdwlog.Field("first_weekday", "Monday"))
//	logger.LogError(err)
//
//	timer := logger.StartTimer("relative")
//	defer timer.Stop()
package log
