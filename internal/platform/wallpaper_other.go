//go:build !darwin && !windows && !linux

package platform

import (
	"fmt"
	"runtime"
)

func setWallpaper(string) error {
	return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
}
