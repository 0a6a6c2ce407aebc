package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// File picker filters
const (
	VegFilterDescription = "VEG Files"
	VFFilterDescription  = "VF Files"
)

// Layout sizing
const (
	VersionIconSize float32 = 32

	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 320
)
