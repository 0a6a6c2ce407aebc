package model

import "regexp"

// UnknownVersion is returned by ExtractVersionNumber when a label has no digits
const UnknownVersion = "0"

var versionDigits = regexp.MustCompile(`\d+`)

// ExtractVersionNumber returns the first run of decimal digits in a label
// such as "VEGAS Pro 17", or UnknownVersion when there is none.
func ExtractVersionNumber(label string) string {
	if m := versionDigits.FindString(label); m != "" {
		return m
	}
	return UnknownVersion
}
