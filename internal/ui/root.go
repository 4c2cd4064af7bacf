package ui

import (
	"context"
	"net/url"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/wallpaper-gallery/internal/bridge"
	"github.com/ytget/wallpaper-gallery/internal/config"
	"github.com/ytget/wallpaper-gallery/internal/download"
	"github.com/ytget/wallpaper-gallery/internal/gallery"
	"github.com/ytget/wallpaper-gallery/internal/model"
	"github.com/ytget/wallpaper-gallery/internal/platform"
	"github.com/ytget/wallpaper-gallery/internal/thumbnail"
)

// RootUI represents the main gallery window
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	view         *gallery.View
	settings     *config.Settings
	localization *Localization
	downloadSvc  download.Downloader
	thumbs       thumbnail.Thumbnailer

	remoteThumbs *thumbLoader
	localThumbs  *thumbLoader

	// last rendered snapshot; only touched on the UI goroutine
	state gallery.State

	// Online tab
	searchForm  *SearchForm
	remoteGrid  *widget.GridWrap
	remoteEmpty *widget.Label
	remoteTab   *container.TabItem

	// Local tab
	chooseBtn  *widget.Button
	refreshBtn *widget.Button
	dirLabel   *widget.Label
	countLabel *widget.Label
	localGrid  *widget.GridWrap
	localEmpty *widget.Label
	localTab   *container.TabItem

	tabs        *container.AppTabs
	busy        *widget.ProgressBarInfinite
	statusLabel *widget.Label

	// progress debouncing
	progressMu     sync.Mutex
	lastProgressAt time.Time
}

// NewRootUI creates the gallery window content. Call Start to restore the
// persisted folder.
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, b bridge.Bridge, downloadSvc download.Downloader, thumbs thumbnail.Thumbnailer) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		downloadSvc:  downloadSvc,
		thumbs:       thumbs,
	}

	ui.remoteThumbs = newThumbLoader(fyne.LoadResourceFromURLString)
	ui.localThumbs = newThumbLoader(ui.loadLocalThumb)

	ui.view = gallery.NewView(b, gallery.NotifierFunc(ui.notify), settings.GetSearchQuery())
	ui.view.OnChange(func(s gallery.State) {
		fyne.Do(func() { ui.render(s) })
	})

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.downloadSvc.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()
	ui.render(ui.view.State())

	log.Debug().Msg("root UI initialized")
	return ui
}

// Start restores the persisted folder in the background
func (ui *RootUI) Start() {
	go ui.view.Init(context.Background())
}

// View returns the gallery presenter driving this window
func (ui *RootUI) View() *gallery.View {
	return ui.view
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	logo := canvas.NewImageFromResource(LoadAppIcon())
	logo.SetMinSize(fyne.NewSize(24, 24))
	logo.FillMode = canvas.ImageFillContain

	// Online tab
	ui.searchForm = NewSearchForm(ui.localization, ui.view.State().Query, ui.onFetch)
	ui.remoteGrid = widget.NewGridWrap(
		func() int { return len(ui.state.Remote) },
		func() fyne.CanvasObject { return NewRemoteTile(ui.localization) },
		ui.updateRemoteTile,
	)
	ui.remoteEmpty = widget.NewLabel("")
	ui.remoteEmpty.Alignment = fyne.TextAlignCenter

	remoteContent := container.NewBorder(
		container.NewBorder(nil, nil, container.NewHBox(logo, settingsBtn), nil, ui.searchForm.Container()),
		nil, nil, nil,
		container.NewStack(ui.remoteGrid, container.NewCenter(ui.remoteEmpty)),
	)
	ui.remoteTab = container.NewTabItem("", remoteContent)

	// Local tab
	ui.chooseBtn = widget.NewButton("", ui.onChooseFolder)
	ui.refreshBtn = widget.NewButton(IconRefresh, ui.onRefresh)
	ui.refreshBtn.Importance = widget.LowImportance
	ui.dirLabel = widget.NewLabel("")
	ui.dirLabel.Truncation = fyne.TextTruncateEllipsis
	ui.countLabel = widget.NewLabel("")

	ui.localGrid = widget.NewGridWrap(
		func() int { return len(ui.state.Local) },
		func() fyne.CanvasObject { return NewLocalTile(ui.localization) },
		ui.updateLocalTile,
	)
	ui.localEmpty = widget.NewLabel("")
	ui.localEmpty.Alignment = fyne.TextAlignCenter

	localToolbar := container.NewBorder(nil, nil,
		ui.chooseBtn,
		container.NewHBox(ui.countLabel, ui.refreshBtn),
		ui.dirLabel,
	)
	localContent := container.NewBorder(
		localToolbar, nil, nil, nil,
		container.NewStack(ui.localGrid, container.NewCenter(ui.localEmpty)),
	)
	ui.localTab = container.NewTabItem("", localContent)

	ui.tabs = container.NewAppTabs(ui.remoteTab, ui.localTab)

	// Status bar
	ui.busy = widget.NewProgressBarInfinite()
	ui.busy.Hide()
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis
	statusBar := container.NewBorder(nil, nil, nil, ui.busy, ui.statusLabel)

	ui.refreshUITexts()
	ui.window.SetContent(container.NewBorder(nil, statusBar, nil, nil, ui.tabs))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	chooseItem := fyne.NewMenuItem(ui.localization.GetText(KeyChooseFolder), ui.onChooseFolder)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), chooseItem, settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	t := ui.localization.GetText

	ui.window.SetTitle(t(KeyAppTitle))
	ui.remoteTab.Text = t(KeyRemoteTab)
	ui.localTab.Text = t(KeyLocalTab)
	ui.chooseBtn.SetText(IconFolder + " " + t(KeyChooseFolder))
	ui.remoteEmpty.SetText(t(KeyEmptyRemote))
	ui.localEmpty.SetText(t(KeyEmptyLocal))
	ui.searchForm.RefreshTexts()

	if ui.tabs != nil {
		ui.tabs.Refresh()
	}
	ui.render(ui.state)
}

// render applies a view snapshot to the widgets. Snapshots older than the
// one already drawn are dropped.
func (ui *RootUI) render(s gallery.State) {
	if s.Seq < ui.state.Seq {
		return
	}
	if s.Directory != ui.state.Directory {
		ui.localThumbs.Forget()
	}
	ui.state = s

	if s.Directory == "" {
		ui.dirLabel.SetText(ui.localization.GetText(KeyNoFolder))
		ui.refreshBtn.Disable()
		ui.localEmpty.Hide()
	} else {
		ui.dirLabel.SetText(s.Directory)
		ui.refreshBtn.Enable()
		ui.localEmpty.Hidden = len(s.Local) > 0
		ui.localEmpty.Refresh()
	}
	ui.countLabel.SetText(ui.localization.Format(KeyImagesCount, len(s.Local)))

	ui.remoteEmpty.Hidden = len(s.Remote) > 0
	ui.remoteEmpty.Refresh()

	if s.InFlight > 0 {
		ui.busy.Show()
		ui.busy.Start()
	} else {
		ui.busy.Stop()
		ui.busy.Hide()
	}
	ui.searchForm.SetBusy(s.InFlight > 0)

	ui.remoteGrid.Refresh()
	ui.localGrid.Refresh()
}

// updateRemoteTile binds a remote image to a grid cell
func (ui *RootUI) updateRemoteTile(id widget.GridWrapItemID, obj fyne.CanvasObject) {
	tile, ok := obj.(*RemoteTile)
	if !ok || id < 0 || id >= len(ui.state.Remote) {
		return
	}

	item := ui.state.Remote[id]
	tile.SetCallbacks(ui.onSelect, ui.onSetRemote, ui.onDownload, ui.onOpenPage)
	tile.Update(item, item.Path == ui.state.Selected, ui.remoteThumbs.Get(item.Thumb, ui.remoteGrid.Refresh))
}

// updateLocalTile binds a local file to a grid cell
func (ui *RootUI) updateLocalTile(id widget.GridWrapItemID, obj fyne.CanvasObject) {
	tile, ok := obj.(*LocalTile)
	if !ok || id < 0 || id >= len(ui.state.Local) {
		return
	}

	path := ui.state.Local[id]
	tile.SetCallbacks(ui.onSetLocal, ui.onReveal)
	tile.Update(path, ui.localThumbs.Get(path, ui.localGrid.Refresh))
}

// loadLocalThumb produces a preview resource for a local file
func (ui *RootUI) loadLocalThumb(path string) (fyne.Resource, error) {
	if ui.thumbs == nil {
		return fyne.LoadResourceFromPath(path)
	}
	thumbPath, err := ui.thumbs.Thumbnail(path)
	if err != nil {
		return nil, err
	}
	return fyne.LoadResourceFromPath(thumbPath)
}

// notify shows a gallery toast; safe to call from any goroutine
func (ui *RootUI) notify(t gallery.Toast) {
	fyne.Do(func() {
		showToast(ui.window.Canvas(), ui.localization.ToastText(t), t.Success)
	})
}

// onFetch persists the query and requests a fresh remote list
func (ui *RootUI) onFetch(q model.SearchQuery) {
	ui.settings.SaveSearchQuery(q)
	go ui.view.Fetch(context.Background(), q)
}

// onSelect toggles the selected remote tile
func (ui *RootUI) onSelect(remotePath string) {
	ui.view.Select(remotePath)
}

func (ui *RootUI) onSetRemote(remotePath string) {
	go ui.view.SetRemoteWallpaper(context.Background(), remotePath)
}

func (ui *RootUI) onDownload(remotePath string) {
	go ui.view.Download(context.Background(), remotePath)
}

func (ui *RootUI) onSetLocal(path string) {
	go ui.view.SetLocalWallpaper(context.Background(), path)
}

// onOpenPage opens the wallpaper's web page in the browser
func (ui *RootUI) onOpenPage(pageURL string) {
	u, err := url.Parse(pageURL)
	if err != nil {
		log.Error().Err(err).Str("url", pageURL).Msg("invalid page url")
		return
	}
	if err := ui.app.OpenURL(u); err != nil {
		log.Error().Err(err).Str("url", pageURL).Msg("failed to open page")
	}
}

// onReveal shows a local file in the system file manager
func (ui *RootUI) onReveal(path string) {
	if err := platform.OpenFileInManager(path); err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to reveal file")
		dialog.ShowError(err, ui.window)
	}
}

// onChooseFolder asks for a wallpaper folder
func (ui *RootUI) onChooseFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			log.Error().Err(err).Msg("folder dialog failed")
			return
		}
		if uri == nil {
			return
		}
		go ui.view.ChooseDirectory(context.Background(), uri.Path())
	}, ui.window)
}

func (ui *RootUI) onRefresh() {
	go ui.view.RefreshLocal(context.Background())
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies settings that take effect immediately
func (ui *RootUI) onSettingsSaved() {
	ui.downloadSvc.SetMaxParallelDownloads(ui.settings.GetMaxParallelDownloads())

	q := ui.settings.GetSearchQuery()
	ui.view.SetQuery(q)
	ui.searchForm.SetQuery(q)

	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(lang)
		ui.refreshUITexts()
		ui.createMenu()
	}

	if ui.thumbs != nil && ui.settings.GetThumbnailDirectory() != "" &&
		ui.settings.GetThumbnailDirectory() != ui.thumbs.CacheDir() {
		log.Info().Str("dir", ui.settings.GetThumbnailDirectory()).Msg("thumbnail folder applies after restart")
	}

	showToast(ui.window.Canvas(), ui.localization.GetText(KeySettingsSaved), true)
}

// onTaskUpdate shows download progress in the status bar. Progress updates
// are debounced; the final update of a task is always shown.
func (ui *RootUI) onTaskUpdate(task *model.DownloadTask) {
	if task == nil {
		return
	}

	ui.progressMu.Lock()
	now := time.Now()
	if task.Status == model.TaskStatusDownloading && now.Sub(ui.lastProgressAt) < ProgressUIDebounce {
		ui.progressMu.Unlock()
		return
	}
	ui.lastProgressAt = now
	ui.progressMu.Unlock()

	var text string
	if task.Status.IsActive() {
		text = ui.localization.Format(KeyDownloading, task.GetDisplayTitle(), task.Percent())
	} else {
		text = task.Summary()
	}

	fyne.Do(func() {
		ui.statusLabel.SetText(text)
	})
}
