package ui

import (
	"context"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/wallpaper-gallery/internal/config"
	"github.com/ytget/wallpaper-gallery/internal/model"
)

// stubBridge answers every request from fixed data
type stubBridge struct {
	dir      string
	local    []string
	remote   []model.RemoteImage
	actionOK bool
}

func (b *stubBridge) FetchRemote(ctx context.Context, q model.SearchQuery) ([]model.RemoteImage, error) {
	return b.remote, nil
}

func (b *stubBridge) GetDirectory(ctx context.Context) (string, error) { return b.dir, nil }

func (b *stubBridge) SetDirectory(ctx context.Context, path string) error {
	b.dir = path
	return nil
}

func (b *stubBridge) ListLocal(ctx context.Context, dir string) ([]string, error) {
	return b.local, nil
}

func (b *stubBridge) SetWallpaper(ctx context.Context, path string) (bool, error) {
	return b.actionOK, nil
}

func (b *stubBridge) DownloadAndSetWallpaper(ctx context.Context, remotePath string) (bool, error) {
	return b.actionOK, nil
}

func (b *stubBridge) Download(ctx context.Context, remotePath string) (bool, error) {
	return b.actionOK, nil
}

// stubDownloader satisfies download.Downloader for wiring
type stubDownloader struct {
	maxParallel int
}

func (d *stubDownloader) SetUpdateCallback(func(*model.DownloadTask)) {}

func (d *stubDownloader) Download(ctx context.Context, remotePath, dir string) (*model.DownloadTask, error) {
	return &model.DownloadTask{RemotePath: remotePath, Status: model.TaskStatusCompleted}, nil
}

func (d *stubDownloader) GetTask(id string) (*model.DownloadTask, bool) { return nil, false }

func (d *stubDownloader) GetAllTasks() []*model.DownloadTask { return nil }

func (d *stubDownloader) SetMaxParallelDownloads(max int) { d.maxParallel = max }

func newTestRoot(t *testing.T, b *stubBridge) (*RootUI, *stubDownloader) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	settings := config.NewSettings(app)
	settings.SetLanguage("en")
	dl := &stubDownloader{}
	return NewRootUI(w, app, settings, b, dl, nil), dl
}

func TestRootUI_InitialState(t *testing.T) {
	ui, _ := newTestRoot(t, &stubBridge{})

	assert.Equal(t, "No folder selected", ui.dirLabel.Text)
	assert.True(t, ui.refreshBtn.Disabled())
	assert.False(t, ui.remoteEmpty.Hidden)
	assert.Equal(t, 0, ui.remoteGrid.Length())
}

func TestRootUI_InitRendersPersistedFolder(t *testing.T) {
	ui, _ := newTestRoot(t, &stubBridge{
		dir:   "/walls",
		local: []string{"/walls/a.jpg", "/walls/b.png"},
	})

	ui.View().Init(context.Background())

	assert.Equal(t, "/walls", ui.dirLabel.Text)
	assert.Equal(t, "2 images", ui.countLabel.Text)
	assert.False(t, ui.refreshBtn.Disabled())
	assert.True(t, ui.localEmpty.Hidden)
	assert.Equal(t, 2, ui.localGrid.Length())

	tile := NewLocalTile(ui.localization)
	ui.updateLocalTile(1, tile)
	assert.Equal(t, "/walls/b.png", tile.Path())
}

func TestRootUI_SelectionHighlightsTile(t *testing.T) {
	ui, _ := newTestRoot(t, &stubBridge{
		remote: []model.RemoteImage{
			{Path: "https://w.wallhaven.cc/full/aa/wallhaven-aa.jpg"},
			{Path: "https://w.wallhaven.cc/full/bb/wallhaven-bb.png"},
		},
	})

	ui.View().Fetch(context.Background(), model.NewSearchQuery())
	require.Equal(t, 2, ui.remoteGrid.Length())
	assert.True(t, ui.remoteEmpty.Hidden)

	tile := NewRemoteTile(ui.localization)
	ui.updateRemoteTile(1, tile)
	assert.False(t, tile.IsSelected())

	test.Tap(tile)
	ui.updateRemoteTile(1, tile)
	assert.True(t, tile.IsSelected())

	// tapping again clears the selection
	test.Tap(tile)
	ui.updateRemoteTile(1, tile)
	assert.False(t, tile.IsSelected())
}

func TestRootUI_FailureShowsToast(t *testing.T) {
	ui, _ := newTestRoot(t, &stubBridge{actionOK: false})

	ui.View().SetLocalWallpaper(context.Background(), "/walls/a.jpg")

	top := ui.window.Canvas().Overlays().Top()
	require.NotNil(t, top)
}

func TestRootUI_SettingsSavedAppliesParallelism(t *testing.T) {
	ui, dl := newTestRoot(t, &stubBridge{})

	ui.settings.SetMaxParallelDownloads(5)
	ui.onSettingsSaved()

	assert.Equal(t, 5, dl.maxParallel)
}

func TestRootUI_TaskUpdateShowsStatus(t *testing.T) {
	ui, _ := newTestRoot(t, &stubBridge{})

	ui.onTaskUpdate(&model.DownloadTask{
		RemotePath: "https://w.wallhaven.cc/full/aa/wallhaven-aa.jpg",
		Status:     model.TaskStatusCompleted,
	})

	assert.True(t, strings.HasPrefix(ui.statusLabel.Text, "wallhaven-aa.jpg"), ui.statusLabel.Text)
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, _ := newTestRoot(t, &stubBridge{})

	ui.onLanguageChange("ru")

	assert.Equal(t, "ru", ui.settings.GetLanguage())
	assert.Equal(t, ui.localization.GetText(KeyLocalTab), ui.localTab.Text)
	assert.Equal(t, "Папка не выбрана", ui.dirLabel.Text)
}

func TestRootUI_RenderDropsOlderSnapshot(t *testing.T) {
	ui, _ := newTestRoot(t, &stubBridge{
		dir:   "/walls",
		local: []string{"/walls/a.jpg"},
	})
	ui.View().Init(context.Background())
	current := ui.View().State()
	require.Zero(t, current.InFlight)

	stale := current
	stale.Seq = current.Seq - 1
	stale.InFlight = 1
	stale.Local = nil
	ui.render(stale)

	assert.Equal(t, current.Seq, ui.state.Seq)
	assert.True(t, ui.busy.Hidden)
	assert.Equal(t, 1, ui.localGrid.Length())
}
