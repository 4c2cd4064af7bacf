package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	_ "github.com/joho/godotenv/autoload"

	"github.com/ytget/wallpaper-gallery/internal/bridge"
	"github.com/ytget/wallpaper-gallery/internal/config"
	"github.com/ytget/wallpaper-gallery/internal/download"
	"github.com/ytget/wallpaper-gallery/internal/logger"
	"github.com/ytget/wallpaper-gallery/internal/thumbnail"
	"github.com/ytget/wallpaper-gallery/internal/ui"
	"github.com/ytget/wallpaper-gallery/internal/wallhaven"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.wallpaper-gallery"
	AppName = "Wallpaper Gallery"

	WindowWidth  = 960
	WindowHeight = 680
)

var log = logger.New("main")

func main() {
	log.Info().Str("version", version).Msg("Wallpaper Gallery starting")

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewGalleryTheme())
	myApp.SetIcon(ui.LoadAppIcon())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)

	httpClient := wallhaven.NewHTTPClient()
	searcher := wallhaven.NewClient("")
	downloadSvc := download.NewService(httpClient, settings.GetMaxParallelDownloads())

	var thumbs thumbnail.Thumbnailer
	thumbSvc, err := thumbnail.NewService(settings.GetThumbnailDirectory())
	if err != nil {
		log.Error().Err(err).Msg("thumbnail cache unavailable, loading full images")
	} else {
		thumbs = thumbSvc
	}

	host := bridge.NewHost(searcher, settings, downloadSvc)

	root := ui.NewRootUI(myWindow, myApp, settings, host, downloadSvc, thumbs)
	root.Start()

	myWindow.ShowAndRun()
}
