package download

import (
	"context"

	"github.com/ytget/wallpaper-gallery/internal/model"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(*model.DownloadTask))

	// Download fetches remotePath into dir and blocks until the task finishes.
	// The returned task is a snapshot of the final state.
	Download(ctx context.Context, remotePath, dir string) (*model.DownloadTask, error)

	GetTask(id string) (*model.DownloadTask, bool)
	GetAllTasks() []*model.DownloadTask

	// SetMaxParallelDownloads sets the maximum number of parallel downloads
	SetMaxParallelDownloads(max int)
}
