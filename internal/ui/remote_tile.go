package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/wallpaper-gallery/internal/model"
)

// RemoteTile renders one remote wallpaper in the online grid. Tapping the
// tile toggles its selection; the action row is shown only while selected.
type RemoteTile struct {
	widget.BaseWidget

	item     model.RemoteImage
	selected bool

	image       *canvas.Image
	highlight   *canvas.Rectangle
	infoLabel   *widget.Label
	setBtn      *widget.Button
	downloadBtn *widget.Button
	openBtn     *widget.Button
	actions     *fyne.Container

	localization *Localization

	onTap      func(remotePath string)
	onSet      func(remotePath string)
	onDownload func(remotePath string)
	onOpenPage func(pageURL string)
}

// NewRemoteTile creates an empty remote tile
func NewRemoteTile(localization *Localization) *RemoteTile {
	rt := &RemoteTile{localization: localization}
	rt.ExtendBaseWidget(rt)
	rt.createUI()
	return rt
}

func (rt *RemoteTile) createUI() {
	rt.image = canvas.NewImageFromResource(theme.FileImageIcon())
	rt.image.FillMode = canvas.ImageFillContain
	rt.image.SetMinSize(fyne.NewSize(ThumbWidth, ThumbHeight))

	rt.highlight = canvas.NewRectangle(theme.Color(theme.ColorNameSelection))
	rt.highlight.CornerRadius = theme.SelectionRadiusSize()
	rt.highlight.Hide()

	rt.infoLabel = widget.NewLabel(DashPlaceholder)
	rt.infoLabel.Alignment = fyne.TextAlignCenter
	rt.infoLabel.Truncation = fyne.TextTruncateEllipsis

	rt.setBtn = widget.NewButtonWithIcon("", theme.ComputerIcon(), func() {
		if rt.onSet != nil {
			rt.onSet(rt.item.Path)
		}
	})
	rt.setBtn.Importance = widget.HighImportance

	rt.downloadBtn = widget.NewButtonWithIcon("", theme.DownloadIcon(), func() {
		if rt.onDownload != nil {
			rt.onDownload(rt.item.Path)
		}
	})

	rt.openBtn = widget.NewButtonWithIcon("", theme.MailForwardIcon(), func() {
		if rt.onOpenPage != nil && rt.item.URL != "" {
			rt.onOpenPage(rt.item.URL)
		}
	})
	rt.openBtn.Importance = widget.LowImportance

	rt.actions = container.NewBorder(nil, nil, nil, container.NewHBox(rt.downloadBtn, rt.openBtn), rt.setBtn)
	rt.actions.Hide()
}

// SetCallbacks wires the tile actions
func (rt *RemoteTile) SetCallbacks(onTap, onSet, onDownload func(string), onOpenPage func(string)) {
	rt.onTap = onTap
	rt.onSet = onSet
	rt.onDownload = onDownload
	rt.onOpenPage = onOpenPage
}

// Update shows item with the given selection state. A nil thumb keeps the
// placeholder icon.
func (rt *RemoteTile) Update(item model.RemoteImage, selected bool, thumb fyne.Resource) {
	rt.item = item
	rt.selected = selected

	if thumb == nil {
		thumb = theme.FileImageIcon()
	}
	if rt.image.Resource != thumb {
		rt.image.Resource = thumb
		rt.image.Refresh()
	}

	rt.infoLabel.SetText(rt.infoText())
	if rt.localization != nil {
		rt.setBtn.SetText(rt.localization.GetText(KeySetWallpaper))
	}

	if selected {
		rt.highlight.Show()
		rt.actions.Show()
	} else {
		rt.highlight.Hide()
		rt.actions.Hide()
	}

	if item.URL != "" {
		rt.openBtn.Enable()
	} else {
		rt.openBtn.Disable()
	}
}

func (rt *RemoteTile) infoText() string {
	name := rt.item.FileName()
	if name == "" {
		return DashPlaceholder
	}
	if rt.item.Resolution == "" {
		return name
	}
	return fmt.Sprintf("%s%s%s", rt.item.Resolution, MiddleDotSeparator, name)
}

// Item returns the image currently shown
func (rt *RemoteTile) Item() model.RemoteImage {
	return rt.item
}

// IsSelected reports whether the tile is drawn as selected
func (rt *RemoteTile) IsSelected() bool {
	return rt.selected
}

// Tapped toggles selection
func (rt *RemoteTile) Tapped(_ *fyne.PointEvent) {
	if rt.onTap != nil && rt.item.Path != "" {
		rt.onTap(rt.item.Path)
	}
}

// CreateRenderer implements fyne.Widget
func (rt *RemoteTile) CreateRenderer() fyne.WidgetRenderer {
	body := container.NewBorder(nil, container.NewVBox(rt.infoLabel, rt.actions), nil, nil, rt.image)
	return widget.NewSimpleRenderer(container.NewStack(rt.highlight, container.NewPadded(body)))
}

// MinSize keeps grid cells uniform
func (rt *RemoteTile) MinSize() fyne.Size {
	return fyne.NewSize(RemoteTileWidth, RemoteTileHeight)
}
