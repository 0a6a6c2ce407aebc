package model

import "time"

// ConversionResult is the outcome of running the converter for one request
type ConversionResult struct {
	Request    ConversionRequest
	Status     ConversionStatus
	ExitCode   int    // -1 when the process never started or was killed
	LastError  string // last error message if any
	Stderr     string // tail of the converter's stderr, logged only
	StartedAt  time.Time
	FinishedAt time.Time
}

// Succeeded reports whether the converter exited with code 0
func (r *ConversionResult) Succeeded() bool {
	return r.Status == StatusSucceeded
}

// Duration returns how long the converter ran
func (r *ConversionResult) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
