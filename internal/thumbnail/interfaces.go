package thumbnail

// Thumbnailer defines the interface for the thumbnail service.
type Thumbnailer interface {
	// Thumbnail returns the path of a cached preview for srcPath,
	// generating it on first use.
	Thumbnail(srcPath string) (string, error)
	CacheDir() string
}
