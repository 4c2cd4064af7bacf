package ui

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// LocalTile renders one image file from the selected folder
type LocalTile struct {
	widget.BaseWidget

	path string

	image     *canvas.Image
	nameLabel *widget.Label
	setBtn    *widget.Button
	revealBtn *widget.Button

	localization *Localization

	onSet    func(path string)
	onReveal func(path string)
}

// NewLocalTile creates an empty local tile
func NewLocalTile(localization *Localization) *LocalTile {
	lt := &LocalTile{localization: localization}
	lt.ExtendBaseWidget(lt)

	lt.image = canvas.NewImageFromResource(theme.FileImageIcon())
	lt.image.FillMode = canvas.ImageFillContain
	lt.image.SetMinSize(fyne.NewSize(ThumbWidth, ThumbHeight))

	lt.nameLabel = widget.NewLabel(DashPlaceholder)
	lt.nameLabel.Alignment = fyne.TextAlignCenter
	lt.nameLabel.Truncation = fyne.TextTruncateEllipsis

	lt.setBtn = widget.NewButtonWithIcon("", theme.ComputerIcon(), func() {
		if lt.onSet != nil && lt.path != "" {
			lt.onSet(lt.path)
		}
	})
	lt.setBtn.Importance = widget.HighImportance

	lt.revealBtn = widget.NewButtonWithIcon("", theme.FolderOpenIcon(), func() {
		if lt.onReveal != nil && lt.path != "" {
			lt.onReveal(lt.path)
		}
	})
	lt.revealBtn.Importance = widget.LowImportance

	return lt
}

// SetCallbacks wires the tile actions
func (lt *LocalTile) SetCallbacks(onSet, onReveal func(string)) {
	lt.onSet = onSet
	lt.onReveal = onReveal
}

// Update shows the file at path. A nil thumb keeps the placeholder icon.
func (lt *LocalTile) Update(path string, thumb fyne.Resource) {
	lt.path = path

	if thumb == nil {
		thumb = theme.FileImageIcon()
	}
	if lt.image.Resource != thumb {
		lt.image.Resource = thumb
		lt.image.Refresh()
	}

	name := filepath.Base(path)
	if path == "" {
		name = DashPlaceholder
	}
	lt.nameLabel.SetText(name)

	if lt.localization != nil {
		lt.setBtn.SetText(lt.localization.GetText(KeySetWallpaper))
	}
}

// Path returns the file currently shown
func (lt *LocalTile) Path() string {
	return lt.path
}

// CreateRenderer implements fyne.Widget
func (lt *LocalTile) CreateRenderer() fyne.WidgetRenderer {
	actions := container.NewBorder(nil, nil, nil, lt.revealBtn, lt.setBtn)
	body := container.NewBorder(nil, container.NewVBox(lt.nameLabel, actions), nil, nil, lt.image)
	return widget.NewSimpleRenderer(container.NewPadded(body))
}

// MinSize keeps grid cells uniform
func (lt *LocalTile) MinSize() fyne.Size {
	return fyne.NewSize(LocalTileWidth, LocalTileHeight)
}
