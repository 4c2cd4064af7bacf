package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/ytget/wallpaper-gallery/internal/model"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// Default wallpaper folder name under the user's pictures directory
const WallpapersDirName = "Wallpapers"

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// ListImages returns the .jpg/.png files directly inside dir, sorted by name.
// Sub-directories and hidden files are skipped.
func ListImages(dir string) ([]string, error) {
	if dir == "" {
		return nil, fmt.Errorf("directory is empty")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	images := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == "" || name[0] == '.' {
			continue
		}
		if !model.IsLocalImage(name) {
			continue
		}
		images = append(images, filepath.Join(dir, name))
	}
	sort.Strings(images)
	return images, nil
}

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam, absPath).Run()
	case OSLinux:
		return openFileInManagerLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileInManagerLinux opens directory containing file on Linux
// Note: File selection is not standardized on Linux, so we open the parent directory
func openFileInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// OpenFileWithDefaultApp opens the image in the default viewer
func OpenFileWithDefaultApp(filePath string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath).Run()
	case OSLinux:
		return exec.Command(XDGOpenCommand, absPath).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// CreateDirectoryIfNotExists creates a directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetDefaultWallpapersDir returns ~/Pictures/Wallpapers
func GetDefaultWallpapersDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Pictures", WallpapersDirName), nil
}

// existingAbsPath resolves filePath and checks that it is a regular file
func existingAbsPath(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("file does not exist: empty path")
	}
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("file does not exist: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("not a file: %s", absPath)
	}
	return absPath, nil
}
