package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "wallpaper-gallery.png"
)

// LoadAppIcon loads the window icon from the working directory, falling back
// to the stock image icon when the file is absent
func LoadAppIcon() fyne.Resource {
	res, err := fyne.LoadResourceFromPath(AppIcon)
	if err != nil {
		return theme.FileImageIcon()
	}
	return res
}
