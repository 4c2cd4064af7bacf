//go:build darwin

package platform

import (
	"os/exec"
)

// setWallpaper asks System Events to update every desktop
func setWallpaper(absPath string) error {
	script := `tell application "System Events" to tell every desktop to set picture to ` + appleScriptString(absPath)
	return exec.Command("osascript", "-e", script).Run()
}
