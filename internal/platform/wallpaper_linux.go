//go:build linux

package platform

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"strings"
)

// Desktop environments detected from XDG_CURRENT_DESKTOP
const (
	desktopGNOME    = "gnome"
	desktopUnity    = "unity"
	desktopCinnamon = "cinnamon"
	desktopMATE     = "mate"
	desktopKDE      = "kde"
	desktopXFCE     = "xfce"
)

// wallpaperCommand is one candidate way of setting the background
type wallpaperCommand struct {
	name string
	args func(absPath string) [][]string
}

// Fallback tools tried in order when the desktop environment is unknown
var linuxWallpaperTools = []wallpaperCommand{
	{"swww", func(p string) [][]string { return [][]string{{"swww", "img", p}} }},
	{"feh", func(p string) [][]string { return [][]string{{"feh", "--bg-fill", p}} }},
	{"nitrogen", func(p string) [][]string { return [][]string{{"nitrogen", "--set-zoom-fill", "--save", p}} }},
}

func setWallpaper(absPath string) error {
	desktop := strings.ToLower(os.Getenv("XDG_CURRENT_DESKTOP"))
	if cmds := desktopCommands(desktop, absPath); len(cmds) > 0 {
		return runAll(cmds)
	}

	for _, tool := range linuxWallpaperTools {
		if _, err := exec.LookPath(tool.name); err != nil {
			continue
		}
		log.Debug().Str("tool", tool.name).Msg("using fallback wallpaper tool")
		return runAll(tool.args(absPath))
	}
	return fmt.Errorf("no wallpaper tool found for desktop %q", desktop)
}

// desktopCommands returns the commands for a known desktop environment
func desktopCommands(desktop, absPath string) [][]string {
	fileURI := (&url.URL{Scheme: "file", Path: absPath}).String()
	switch {
	case strings.Contains(desktop, desktopGNOME), strings.Contains(desktop, desktopUnity):
		return [][]string{
			{"gsettings", "set", "org.gnome.desktop.background", "picture-uri", fileURI},
			{"gsettings", "set", "org.gnome.desktop.background", "picture-uri-dark", fileURI},
		}
	case strings.Contains(desktop, desktopCinnamon):
		return [][]string{{"gsettings", "set", "org.cinnamon.desktop.background", "picture-uri", fileURI}}
	case strings.Contains(desktop, desktopMATE):
		return [][]string{{"gsettings", "set", "org.mate.background", "picture-filename", absPath}}
	case strings.Contains(desktop, desktopKDE):
		return [][]string{{"plasma-apply-wallpaperimage", absPath}}
	case strings.Contains(desktop, desktopXFCE):
		return [][]string{{"xfconf-query", "-c", "xfce4-desktop", "-p",
			"/backdrop/screen0/monitor0/workspace0/last-image", "-s", absPath}}
	}
	return nil
}

// runAll runs every command; the first one must succeed, later ones are best effort
func runAll(cmds [][]string) error {
	for i, args := range cmds {
		out, err := exec.Command(args[0], args[1:]...).CombinedOutput()
		if err == nil {
			continue
		}
		if i == 0 {
			return fmt.Errorf("%s: %w: %s", args[0], err, strings.TrimSpace(string(out)))
		}
		log.Warn().Err(err).Strs("args", args).Msg("optional wallpaper command failed")
	}
	return nil
}
