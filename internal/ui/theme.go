package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// LightBlueTheme is a light theme with a light-blue primary color and
// slightly tighter spacing than the Fyne default
type LightBlueTheme struct{}

// NewLightBlueTheme creates the application theme
func NewLightBlueTheme() fyne.Theme {
	return &LightBlueTheme{}
}

// Color returns theme colors
func (t *LightBlueTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 3, G: 169, B: 244, A: 255}
	case theme.ColorNameFocus:
		return color.RGBA{R: 3, G: 169, B: 244, A: 96}
	case theme.ColorNameSelection:
		return color.RGBA{R: 179, G: 229, B: 252, A: 255}
	case theme.ColorNameSuccess:
		return color.RGBA{R: 56, G: 142, B: 60, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 211, G: 47, B: 47, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 38, G: 50, B: 56, A: 255}
		}
		return color.RGBA{R: 245, G: 250, B: 253, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 236, G: 239, B: 241, A: 255}
		}
		return color.RGBA{R: 38, G: 50, B: 56, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *LightBlueTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *LightBlueTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *LightBlueTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 5
	case theme.SizeNameInputRadius:
		return 4
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
