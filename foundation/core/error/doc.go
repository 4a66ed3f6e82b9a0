// Package error provides structured errors for the calendar library.
//
// Package: error
// Title: Calendar Error Handling
// Description: Errors carry a code, a severity, structured details and the
//              operation that produced them. The logger uses the severity to
//              choose a log level, so recovered problems (a malformed instant
//              replaced by "now") surface as warnings while configuration
//              failures surface as errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-08-14 v0.2.0: Calendar error codes, Is support
//
// Usage:
//
//	import mdwerror "github.com/msto63/mdwcal/foundation/core/error"
//
//	err := mdwerror.New("first weekday must be a single day").
//		WithCode(mdwerror.CodeInvalidConfig).
//		WithOperation("timex.New").
//		WithDetail("first_weekday", mask)
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
//		// ...
//	}
package error
