package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// showToast shows a short non-modal message in the top-right corner of the
// canvas and hides it after ToastAutoHide. Must run on the UI goroutine.
func showToast(c fyne.Canvas, message string, success bool) *widget.PopUp {
	icon := IconCheck
	importance := widget.SuccessImportance
	if !success {
		icon = IconError
		importance = widget.DangerImportance
	}

	iconLabel := widget.NewLabel(icon)
	iconLabel.Importance = importance
	messageLabel := widget.NewLabel(message)
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	var popup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if popup != nil {
			popup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewBorder(nil, nil, iconLabel, closeBtn, messageLabel)
	popup = widget.NewPopUp(content, c)

	size := fyne.NewSize(ToastWidth, ToastHeight)
	canvasSize := c.Size()
	popup.Resize(size)
	popup.Move(fyne.NewPos(canvasSize.Width-size.Width-ToastMargin, ToastMargin))
	popup.Show()

	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(popup.Hide)
	}()

	return popup
}
