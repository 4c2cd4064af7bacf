//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	spiSetDeskWallpaper = 0x0014
	spifUpdateIniFile   = 0x01
	spifSendChange      = 0x02
)

var (
	user32                    = windows.NewLazySystemDLL("user32.dll")
	procSystemParametersInfoW = user32.NewProc("SystemParametersInfoW")
)

// setWallpaper calls SystemParametersInfoW(SPI_SETDESKWALLPAPER)
func setWallpaper(absPath string) error {
	p, err := windows.UTF16PtrFromString(absPath)
	if err != nil {
		return err
	}
	ret, _, callErr := procSystemParametersInfoW.Call(
		spiSetDeskWallpaper,
		0,
		uintptr(unsafe.Pointer(p)),
		spifUpdateIniFile|spifSendChange,
	)
	if ret == 0 {
		return fmt.Errorf("SystemParametersInfoW: %w", callErr)
	}
	return nil
}
