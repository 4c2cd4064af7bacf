package download

// Package download fetches remote wallpapers into the selected directory. It
// tracks each transfer as a model.DownloadTask, limits parallel transfers and
// reports progress to the UI through an update callback.
