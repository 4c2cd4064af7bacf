package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// GalleryTheme is a dark-leaning compact theme; image grids read better on
// a dim background
type GalleryTheme struct{}

// NewGalleryTheme creates a new gallery theme
func NewGalleryTheme() fyne.Theme {
	return &GalleryTheme{}
}

// Color returns theme colors
func (t *GalleryTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 67, G: 160, B: 71, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 229, G: 57, B: 53, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 0, G: 150, B: 136, A: 255} // teal accent for selection
	case theme.ColorNameSelection:
		return color.RGBA{R: 0, G: 150, B: 136, A: 96}
	case theme.ColorNameBackground:
		if variant == theme.VariantLight {
			return color.RGBA{R: 238, G: 238, B: 238, A: 255}
		}
		return color.RGBA{R: 24, G: 24, B: 27, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantLight {
			return color.RGBA{R: 33, G: 33, B: 33, A: 255}
		}
		return color.RGBA{R: 236, G: 236, B: 236, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *GalleryTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *GalleryTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes; paddings are tightened so more tiles fit per row
func (t *GalleryTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 10
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 4
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
