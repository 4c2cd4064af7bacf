package model

import (
	"path/filepath"
	"strings"
)

// Supported local image extensions (lower case, with dot)
var LocalImageExtensions = []string{".jpg", ".jpeg", ".png"}

// RemoteImage is a wallpaper candidate returned by the remote service
type RemoteImage struct {
	ID         string `json:"id"`
	Path       string `json:"path"`  // canonical full-size reference
	Thumb      string `json:"thumb"` // preview reference
	URL        string `json:"url,omitempty"`
	Resolution string `json:"resolution,omitempty"`
	FileType   string `json:"file_type,omitempty"`
	FileSize   int64  `json:"file_size,omitempty"`
}

// FileName returns the last path element of the remote reference
func (ri RemoteImage) FileName() string {
	return RemoteFileName(ri.Path)
}

// RemoteFileName extracts the file name from a remote path or URL.
// Query strings and fragments are dropped.
func RemoteFileName(remotePath string) string {
	p := remotePath
	if idx := strings.IndexAny(p, "?#"); idx >= 0 {
		p = p[:idx]
	}
	p = strings.TrimRight(p, "/")
	if idx := strings.LastIndex(p, "/"); idx >= 0 {
		p = p[idx+1:]
	}
	return p
}

// IsLocalImage reports whether the file name has a supported image extension
func IsLocalImage(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range LocalImageExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// ContainsRemote reports whether images holds an entry with the given path
func ContainsRemote(images []RemoteImage, path string) bool {
	for _, img := range images {
		if img.Path == path {
			return true
		}
	}
	return false
}
