package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ComfortTheme defines a high-contrast theme with enlarged text and touch
// targets. Audiobook listeners often sit far from the screen, so everything
// is sized up from the Fyne defaults.
type ComfortTheme struct{}

// NewComfortTheme creates a new comfort theme
func NewComfortTheme() fyne.Theme {
	return &ComfortTheme{}
}

// Color returns theme colors
func (t *ComfortTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // Green for playing
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // Red for errors
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255} // Amber for warnings
	case theme.ColorNamePrimary:
		return color.RGBA{R: 93, G: 64, B: 155, A: 255} // Purple for primary actions
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 24, G: 22, B: 28, A: 255}
		}
		return color.RGBA{R: 250, G: 248, B: 245, A: 255} // Warm off-white
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *ComfortTheme) Font(style fyne.TextStyle) fyne.Resource {
	// Use default theme fonts
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ComfortTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	// Use default theme icons
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with enlarged adjustments
func (t *ComfortTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6 // Increased from default 4
	case theme.SizeNameInnerPadding:
		return 10 // Increased from default 8
	case theme.SizeNameLineSpacing:
		return 5 // Increased from default 4
	case theme.SizeNameScrollBar:
		return 18 // Increased from default 16
	case theme.SizeNameText:
		return 16 // Increased from default 14
	case theme.SizeNameHeadingText:
		return 24 // Increased from default 18
	case theme.SizeNameSubHeadingText:
		return 18 // Increased from default 16
	case theme.SizeNameCaptionText:
		return 13 // Increased from default 11
	case theme.SizeNameInputRadius:
		return 5 // Keep default 5
	case theme.SizeNameSelectionRadius:
		return 3 // Keep default 3
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
