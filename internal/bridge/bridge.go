// Package bridge defines the request/response capability surface the gallery
// view talks to, and Host, the in-process implementation that performs the
// file, network and OS work behind it.
package bridge

import (
	"context"
	"errors"

	"github.com/ytget/wallpaper-gallery/internal/model"
)

// Request names, used in logs and error messages
const (
	RequestFetchRemoteList         = "fetch_remote_list"
	RequestGetPersistedDirectory   = "get_persisted_directory"
	RequestSetPersistedDirectory   = "set_persisted_directory"
	RequestListLocalImages         = "list_local_images"
	RequestSetWallpaper            = "set_wallpaper"
	RequestDownloadAndSetWallpaper = "download_and_set_wallpaper"
	RequestDownloadWallpaper       = "download_wallpaper"
)

// ErrNoDirectory is returned when a download is requested before a folder was chosen
var ErrNoDirectory = errors.New("no wallpaper directory selected")

// Bridge is the capability surface used by the gallery view.
//
// Local requests take a file path, remote requests take the remote path of a
// RemoteImage. Actions report a success flag; an error means the request was
// rejected outright.
type Bridge interface {
	FetchRemote(ctx context.Context, q model.SearchQuery) ([]model.RemoteImage, error)
	GetDirectory(ctx context.Context) (string, error)
	SetDirectory(ctx context.Context, path string) error
	ListLocal(ctx context.Context, dir string) ([]string, error)
	SetWallpaper(ctx context.Context, path string) (bool, error)
	DownloadAndSetWallpaper(ctx context.Context, remotePath string) (bool, error)
	Download(ctx context.Context, remotePath string) (bool, error)
}
