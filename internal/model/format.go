package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ProjectFormat identifies one of the two supported project file formats.
type ProjectFormat string

const (
	// FormatProEditor is the VEGAS Pro project format (.veg)
	FormatProEditor ProjectFormat = "veg"

	// FormatStudio is the Movie Studio project format (.vf)
	FormatStudio ProjectFormat = "vf"
)

// Display names shown in the format selector
const (
	ProEditorDisplayName = "VEGAS Pro (.veg)"
	StudioDisplayName    = "Movie Studio (.vf)"
)

// Icon directories under the resource root
const (
	ProEditorIconDir = "vegas"
	StudioIconDir    = "movie"
)

// Formats returns all supported formats in selector order.
func Formats() []ProjectFormat {
	return []ProjectFormat{FormatProEditor, FormatStudio}
}

// ParseFormat accepts the output type ("veg", "vf"), a file extension
// (".veg", ".vf") or a display name.
func ParseFormat(s string) (ProjectFormat, error) {
	key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	switch key {
	case string(FormatProEditor), strings.ToLower(ProEditorDisplayName):
		return FormatProEditor, nil
	case string(FormatStudio), strings.ToLower(StudioDisplayName):
		return FormatStudio, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatForPath derives the format from a project file's extension.
func FormatForPath(path string) (ProjectFormat, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// String returns the output type passed to the converter
func (f ProjectFormat) String() string {
	return string(f)
}

// OutputType is the value of the converter's --type argument
func (f ProjectFormat) OutputType() string {
	return string(f)
}

// Extension returns the file extension with a leading dot
func (f ProjectFormat) Extension() string {
	return "." + string(f)
}

// DisplayName returns the label used in the format selector
func (f ProjectFormat) DisplayName() string {
	switch f {
	case FormatProEditor:
		return ProEditorDisplayName
	case FormatStudio:
		return StudioDisplayName
	default:
		return string(f)
	}
}

// IconDir returns the resource sub-directory holding per-version icons
func (f ProjectFormat) IconDir() string {
	switch f {
	case FormatProEditor:
		return ProEditorIconDir
	case FormatStudio:
		return StudioIconDir
	default:
		return ""
	}
}

// IsValid reports whether f is one of the supported formats
func (f ProjectFormat) IsValid() bool {
	return f == FormatProEditor || f == FormatStudio
}
