package convert

// Package convert runs the external project converter (msvpvf) for a
// ConversionRequest. Arguments are passed as a vector, never through a shell.
// Exit code 0 is success; every other outcome is reported as a failure.
