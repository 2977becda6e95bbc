package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette of the generator windows.
var (
	BackgroundColor = color.NRGBA{R: 244, G: 244, B: 244, A: 255}
	AccentColor     = color.NRGBA{R: 106, G: 17, B: 203, A: 255}
	AccentTextColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	TextColor       = color.NRGBA{R: 33, G: 33, B: 33, A: 255}
)

// GeneratorTheme is a light theme with purple action buttons.
type GeneratorTheme struct{}

// NewGeneratorTheme creates the generator theme
func NewGeneratorTheme() fyne.Theme {
	return &GeneratorTheme{}
}

// Color returns theme colors. The palette is fixed, so the variant only
// matters for names the theme does not override.
func (t *GeneratorTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return BackgroundColor
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return AccentColor
	case theme.ColorNameForegroundOnPrimary:
		return AccentTextColor
	case theme.ColorNameForeground:
		return TextColor
	case theme.ColorNameInputBackground:
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	case theme.ColorNameError:
		return color.NRGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameSuccess:
		return color.NRGBA{R: 46, G: 160, B: 67, A: 255}
	}
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

// Font returns theme fonts
func (t *GeneratorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *GeneratorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes. Text is slightly larger than the default for
// readability with screen magnifiers.
func (t *GeneratorTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 15
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameInputBorder:
		return 2
	}
	return theme.DefaultTheme().Size(name)
}
