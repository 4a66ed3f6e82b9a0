// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps them onto
//              log levels when an error is reported through LogError.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-08-14 v0.2.0: Severity mapping for calendar codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error such as rejected user input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that was recovered with a fallback
	SeverityMedium

	// SeverityHigh indicates an error that stops an operation
	SeverityHigh

	// SeverityCritical indicates an error that makes the component unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig, CodeInvalidLocale:
		return SeverityHigh
	case CodeInvalidInstant:
		return SeverityMedium
	case CodeInvalidInput, CodeInvalidWeekday, CodeNotFound,
		CodeValidationFailed, CodeValueOutOfRange:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
