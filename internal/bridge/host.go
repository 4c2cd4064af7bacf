package bridge

import (
	"context"
	"fmt"

	"github.com/ytget/wallpaper-gallery/internal/download"
	"github.com/ytget/wallpaper-gallery/internal/logger"
	"github.com/ytget/wallpaper-gallery/internal/model"
	"github.com/ytget/wallpaper-gallery/internal/platform"
	"github.com/ytget/wallpaper-gallery/internal/wallhaven"
)

var log = logger.New("bridge")

// DirectoryStore persists the selected wallpaper directory
type DirectoryStore interface {
	GetSelectedDirectory() string
	SetSelectedDirectory(dir string)
}

// Host serves bridge requests in-process
type Host struct {
	searcher     wallhaven.Searcher
	store        DirectoryStore
	downloader   download.Downloader
	listImages   func(dir string) ([]string, error)
	setWallpaper func(path string) error
}

// Option customizes a Host
type Option func(*Host)

// WithImageLister replaces the directory listing function
func WithImageLister(fn func(dir string) ([]string, error)) Option {
	return func(h *Host) { h.listImages = fn }
}

// WithWallpaperSetter replaces the OS wallpaper setter
func WithWallpaperSetter(fn func(path string) error) Option {
	return func(h *Host) { h.setWallpaper = fn }
}

// NewHost wires a Host; listing and wallpaper setting default to package platform
func NewHost(searcher wallhaven.Searcher, store DirectoryStore, downloader download.Downloader, opts ...Option) *Host {
	h := &Host{
		searcher:     searcher,
		store:        store,
		downloader:   downloader,
		listImages:   platform.ListImages,
		setWallpaper: platform.SetWallpaper,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// FetchRemote runs a remote search
func (h *Host) FetchRemote(ctx context.Context, q model.SearchQuery) ([]model.RemoteImage, error) {
	images, err := h.searcher.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", RequestFetchRemoteList, err)
	}
	log.Debug().Str("request", RequestFetchRemoteList).Int("count", len(images)).Send()
	return images, nil
}

// GetDirectory returns the persisted directory, or "" if none
func (h *Host) GetDirectory(ctx context.Context) (string, error) {
	return h.store.GetSelectedDirectory(), nil
}

// SetDirectory persists path as the selected directory
func (h *Host) SetDirectory(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("%s: empty path", RequestSetPersistedDirectory)
	}
	h.store.SetSelectedDirectory(path)
	log.Info().Str("request", RequestSetPersistedDirectory).Str("dir", path).Send()
	return nil
}

// ListLocal lists the images in dir
func (h *Host) ListLocal(ctx context.Context, dir string) ([]string, error) {
	images, err := h.listImages(dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", RequestListLocalImages, err)
	}
	return images, nil
}

// SetWallpaper sets a local file as the desktop wallpaper
func (h *Host) SetWallpaper(ctx context.Context, path string) (bool, error) {
	if path == "" {
		return false, fmt.Errorf("%s: empty path", RequestSetWallpaper)
	}
	if err := h.setWallpaper(path); err != nil {
		log.Error().Err(err).Str("request", RequestSetWallpaper).Str("path", path).Send()
		return false, nil
	}
	return true, nil
}

// DownloadAndSetWallpaper downloads remotePath into the selected directory
// and sets the result as wallpaper
func (h *Host) DownloadAndSetWallpaper(ctx context.Context, remotePath string) (bool, error) {
	task, ok, err := h.download(ctx, RequestDownloadAndSetWallpaper, remotePath)
	if err != nil || !ok {
		return false, err
	}
	if err := h.setWallpaper(task.OutputPath); err != nil {
		log.Error().Err(err).Str("request", RequestDownloadAndSetWallpaper).Str("path", task.OutputPath).Send()
		return false, nil
	}
	return true, nil
}

// Download stores remotePath in the selected directory
func (h *Host) Download(ctx context.Context, remotePath string) (bool, error) {
	_, ok, err := h.download(ctx, RequestDownloadWallpaper, remotePath)
	return ok, err
}

func (h *Host) download(ctx context.Context, request, remotePath string) (*model.DownloadTask, bool, error) {
	if remotePath == "" {
		return nil, false, fmt.Errorf("%s: empty remote path", request)
	}
	dir := h.store.GetSelectedDirectory()
	if dir == "" {
		return nil, false, fmt.Errorf("%s: %w", request, ErrNoDirectory)
	}

	task, err := h.downloader.Download(ctx, remotePath, dir)
	if err != nil {
		log.Error().Err(err).Str("request", request).Str("url", remotePath).Send()
		return task, false, nil
	}
	return task, task.Status.Succeeded(), nil
}
