package host

import (
	"image/color"

	"geowidgets/pkg/colorutil"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// RackTheme is a dark theme that frames module panels without competing
// with them.
type RackTheme struct{}

var _ fyne.Theme = (*RackTheme)(nil)

func (t *RackTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return colorutil.PanelBackground
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0xE0, G: 0x8A, B: 0x1E, A: 0xFF} // Amber accent
	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

func (t *RackTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *RackTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *RackTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 4
	default:
		return theme.DefaultTheme().Size(name)
	}
}
