// Package thumbnail renders small JPEG previews of local wallpapers into a
// cache directory so the local grid does not decode full-size images.
package thumbnail

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/ytget/wallpaper-gallery/internal/logger"
	"github.com/ytget/wallpaper-gallery/internal/platform"
)

var log = logger.New("thumbnail")

// Thumbnail settings
const (
	DefaultWidth  = 320
	DefaultHeight = 180
	JPEGQuality   = 80
	CacheDirName  = "wallpaper-gallery-thumbs"
	ThumbExt      = ".jpg"
)

// Service generates and caches thumbnails
type Service struct {
	cacheDir string
	width    int
	height   int

	locksMutex sync.Mutex
	locks      map[string]*sync.Mutex
}

// NewService creates a thumbnail service writing into cacheDir.
// An empty cacheDir selects a directory under the user cache dir.
func NewService(cacheDir string) (*Service, error) {
	if cacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			base = os.TempDir()
		}
		cacheDir = filepath.Join(base, CacheDirName)
	}
	if err := platform.CreateDirectoryIfNotExists(cacheDir); err != nil {
		return nil, fmt.Errorf("failed to create thumbnail cache: %w", err)
	}
	return &Service{
		cacheDir: cacheDir,
		width:    DefaultWidth,
		height:   DefaultHeight,
		locks:    make(map[string]*sync.Mutex),
	}, nil
}

// CacheDir returns the cache directory
func (s *Service) CacheDir() string {
	return s.cacheDir
}

// Thumbnail returns the cached preview path for srcPath
func (s *Service) Thumbnail(srcPath string) (string, error) {
	info, err := os.Stat(srcPath)
	if err != nil {
		return "", fmt.Errorf("input file does not exist: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("input is a directory: %s", srcPath)
	}

	outPath := filepath.Join(s.cacheDir, cacheKey(srcPath, info.Size(), info.ModTime().UnixNano())+ThumbExt)

	lock := s.lockFor(outPath)
	lock.Lock()
	defer lock.Unlock()

	if _, err := os.Stat(outPath); err == nil {
		return outPath, nil
	}

	if err := s.render(srcPath, outPath); err != nil {
		return "", err
	}
	log.Debug().Str("src", srcPath).Str("thumb", outPath).Msg("thumbnail generated")
	return outPath, nil
}

// render decodes srcPath, crops it to the thumbnail aspect and writes a JPEG
func (s *Service) render(srcPath, outPath string) error {
	img, err := imaging.Open(srcPath, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}
	thumb := imaging.Fill(img, s.width, s.height, imaging.Center, imaging.Lanczos)

	tmp, err := os.CreateTemp(s.cacheDir, filepath.Base(outPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create thumbnail file: %w", err)
	}
	tmpName := tmp.Name()

	if err := imaging.Encode(tmp, thumb, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, outPath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to store thumbnail: %w", err)
	}
	return nil
}

func (s *Service) lockFor(key string) *sync.Mutex {
	s.locksMutex.Lock()
	defer s.locksMutex.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// cacheKey changes whenever the source file is replaced or modified
func cacheKey(path string, size, modNano int64) string {
	h := sha1.New()
	h.Write([]byte(path))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatInt(size, 10)))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatInt(modNano, 10)))
	return hex.EncodeToString(h.Sum(nil))
}
