package ui

// Package ui contains the Fyne-based desktop user interface. It renders the
// gallery.View state (folder, local grid, remote grid, selection), forwards
// user intent to the view, and shows toasts and download progress. All UI
// strings are localized via Localization.
