package model

import (
	"fmt"
	"path"
)

// Catalog bounds (inclusive)
const (
	ProEditorMinVersion = 9
	ProEditorMaxVersion = 21
	StudioMinVersion    = 9
	StudioMaxVersion    = 17

	// RebrandVersion is the first version sold under the VEGAS name.
	// It only changes labels.
	RebrandVersion = 14
)

// Label templates
const (
	proEditorLegacyLabel = "Vegas Pro %d"
	proEditorLabel       = "VEGAS Pro %d"
	studioLegacyLabel    = "Movie Studio %d"
	studioLabel          = "VEGAS Movie Studio %d"

	iconFileTemplate = "%d.png"
)

// VersionEntry is one selectable target version
type VersionEntry struct {
	Version int
	Label   string
	// IconPath is relative to the resource root, e.g. "vegas/17.png"
	IconPath string
}

// Catalog returns the ordered version entries for a format. The result is a
// fresh slice on every call.
func Catalog(format ProjectFormat) []VersionEntry {
	lo, hi, ok := versionRange(format)
	if !ok {
		return nil
	}

	entries := make([]VersionEntry, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		entries = append(entries, VersionEntry{
			Version:  v,
			Label:    versionLabel(format, v),
			IconPath: path.Join(format.IconDir(), fmt.Sprintf(iconFileTemplate, v)),
		})
	}
	return entries
}

// Labels returns only the display labels of a format's catalog
func Labels(format ProjectFormat) []string {
	entries := Catalog(format)
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}
	return labels
}

// LookupVersion finds a version in a format's catalog
func LookupVersion(format ProjectFormat, version int) (VersionEntry, bool) {
	lo, hi, ok := versionRange(format)
	if !ok || version < lo || version > hi {
		return VersionEntry{}, false
	}
	return Catalog(format)[version-lo], true
}

// LookupLabel finds the catalog entry whose label matches exactly
func LookupLabel(format ProjectFormat, label string) (VersionEntry, bool) {
	for _, e := range Catalog(format) {
		if e.Label == label {
			return e, true
		}
	}
	return VersionEntry{}, false
}

func versionRange(format ProjectFormat) (int, int, bool) {
	switch format {
	case FormatProEditor:
		return ProEditorMinVersion, ProEditorMaxVersion, true
	case FormatStudio:
		return StudioMinVersion, StudioMaxVersion, true
	default:
		return 0, 0, false
	}
}

func versionLabel(format ProjectFormat, v int) string {
	legacy := v < RebrandVersion
	switch {
	case format == FormatProEditor && legacy:
		return fmt.Sprintf(proEditorLegacyLabel, v)
	case format == FormatProEditor:
		return fmt.Sprintf(proEditorLabel, v)
	case legacy:
		return fmt.Sprintf(studioLegacyLabel, v)
	default:
		return fmt.Sprintf(studioLabel, v)
	}
}
