package model

// ConversionStatus represents the state of the conversion form
type ConversionStatus string

const (
	// StatusIdle means no conversion is running
	StatusIdle ConversionStatus = "Idle"

	// StatusValidating means form values are being turned into a request
	StatusValidating ConversionStatus = "Validating"

	// StatusInProgress means the converter process is running
	StatusInProgress ConversionStatus = "InProgress"

	// StatusSucceeded means the converter exited with code 0
	StatusSucceeded ConversionStatus = "Succeeded"

	// StatusFailed means validation failed or the converter did not exit cleanly
	StatusFailed ConversionStatus = "Failed"

	// StatusCancelled means the user cancelled a running conversion
	StatusCancelled ConversionStatus = "Cancelled"
)

// String returns the string representation of ConversionStatus
func (cs ConversionStatus) String() string {
	return string(cs)
}

// IsActive returns true while a conversion attempt is underway
func (cs ConversionStatus) IsActive() bool {
	return cs == StatusValidating || cs == StatusInProgress
}

// IsFinished returns true for terminal states (succeeded, failed, or cancelled)
func (cs ConversionStatus) IsFinished() bool {
	return cs == StatusSucceeded || cs == StatusFailed || cs == StatusCancelled
}

// CanTransitionTo reports whether next is a legal successor of cs.
// Terminal states fall back to Idle once the outcome was reported.
func (cs ConversionStatus) CanTransitionTo(next ConversionStatus) bool {
	switch cs {
	case StatusIdle:
		return next == StatusValidating
	case StatusValidating:
		return next == StatusInProgress || next == StatusFailed
	case StatusInProgress:
		return next == StatusSucceeded || next == StatusFailed || next == StatusCancelled
	case StatusSucceeded, StatusFailed, StatusCancelled:
		return next == StatusIdle
	default:
		return false
	}
}
