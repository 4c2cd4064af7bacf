package platform

import (
	"fmt"
	"strings"

	"github.com/ytget/wallpaper-gallery/internal/logger"
	"github.com/ytget/wallpaper-gallery/internal/model"
)

var log = logger.New("platform")

// SetWallpaper sets the desktop background to the image at filePath
func SetWallpaper(filePath string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}
	if !model.IsLocalImage(absPath) {
		return fmt.Errorf("unsupported image type: %s", absPath)
	}

	log.Info().Str("path", absPath).Msg("setting wallpaper")
	if err := setWallpaper(absPath); err != nil {
		return fmt.Errorf("failed to set wallpaper: %w", err)
	}
	return nil
}

// appleScriptString quotes s as an AppleScript string literal. Only backslash
// and double quote are escaped; other characters are passed through verbatim.
func appleScriptString(s string) string {
	return `"` + appleScriptEscaper.Replace(s) + `"`
}

var appleScriptEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)
