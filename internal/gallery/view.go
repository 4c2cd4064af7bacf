// Package gallery holds the gallery view's state and its contract with the
// capability bridge. It has no rendering code: package ui subscribes to
// state changes and forwards user intent to the methods here.
package gallery

import (
	"context"
	"slices"
	"sync"

	"github.com/ytget/wallpaper-gallery/internal/bridge"
	"github.com/ytget/wallpaper-gallery/internal/logger"
	"github.com/ytget/wallpaper-gallery/internal/model"
)

var log = logger.New("gallery")

// Action identifies the user action a toast reports on
type Action int

const (
	ActionFetch Action = iota
	ActionSetWallpaper
	ActionDownloadAndSet
	ActionDownload
)

func (a Action) String() string {
	switch a {
	case ActionFetch:
		return "fetch"
	case ActionSetWallpaper:
		return "set_wallpaper"
	case ActionDownloadAndSet:
		return "download_and_set"
	case ActionDownload:
		return "download"
	default:
		return "unknown"
	}
}

// Toast is a transient user notification
type Toast struct {
	Action  Action
	Success bool
}

// Notifier displays toasts
type Notifier interface {
	Notify(t Toast)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(Toast)

// Notify calls f(t)
func (f NotifierFunc) Notify(t Toast) { f(t) }

// State is a snapshot of everything the gallery renders
type State struct {
	Directory string
	Remote    []model.RemoteImage
	Local     []string
	Selected  string // remote path, "" when nothing is selected
	Query     model.SearchQuery
	InFlight  int    // bridge requests awaiting a response
	Seq       uint64 // bumped on every change; higher is newer
}

// View is the gallery presenter. Methods block on the bridge and may be
// called from any goroutine; the last response to arrive wins.
type View struct {
	bridge   bridge.Bridge
	notifier Notifier

	mu        sync.Mutex
	state     State
	listeners []func(State)
}

// NewView creates a view bound to b; toasts go to n
func NewView(b bridge.Bridge, n Notifier, q model.SearchQuery) *View {
	if n == nil {
		n = NotifierFunc(func(Toast) {})
	}
	return &View{
		bridge:   b,
		notifier: n,
		state:    State{Query: q},
	}
}

// OnChange registers a listener called with a fresh snapshot after each change
func (v *View) OnChange(fn func(State)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.listeners = append(v.listeners, fn)
}

// State returns a snapshot of the current state
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

func (v *View) snapshotLocked() State {
	s := v.state
	s.Remote = slices.Clone(v.state.Remote)
	s.Local = slices.Clone(v.state.Local)
	return s
}

// update applies fn under the lock, then notifies listeners outside it.
// Listeners may see snapshots out of order and should drop any whose Seq is
// lower than the last one they handled.
func (v *View) update(fn func(s *State)) {
	v.mu.Lock()
	fn(&v.state)
	v.state.Seq++
	snap := v.snapshotLocked()
	listeners := slices.Clone(v.listeners)
	v.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}

func (v *View) begin() { v.update(func(s *State) { s.InFlight++ }) }
func (v *View) end()   { v.update(func(s *State) { s.InFlight-- }) }

// Init restores the persisted directory and lists it
func (v *View) Init(ctx context.Context) {
	v.begin()
	dir, err := v.bridge.GetDirectory(ctx)
	v.end()
	if err != nil {
		log.Error().Err(err).Str("request", bridge.RequestGetPersistedDirectory).Send()
		return
	}
	if dir == "" {
		return
	}
	v.update(func(s *State) { s.Directory = dir })
	v.RefreshLocal(ctx)
}

// ChooseDirectory records a user folder choice: persist first, then list.
// An empty path is ignored.
func (v *View) ChooseDirectory(ctx context.Context, path string) {
	if path == "" {
		return
	}
	v.update(func(s *State) { s.Directory = path })

	v.begin()
	err := v.bridge.SetDirectory(ctx, path)
	v.end()
	if err != nil {
		log.Error().Err(err).Str("request", bridge.RequestSetPersistedDirectory).Send()
	}
	v.RefreshLocal(ctx)
}

// RefreshLocal re-lists the current directory, replacing the local list
func (v *View) RefreshLocal(ctx context.Context) {
	dir := v.State().Directory
	if dir == "" {
		return
	}

	v.begin()
	images, err := v.bridge.ListLocal(ctx, dir)
	v.end()
	if err != nil {
		log.Error().Err(err).Str("request", bridge.RequestListLocalImages).Str("dir", dir).Send()
		return
	}
	v.update(func(s *State) {
		// the folder may have changed while the listing was running
		if s.Directory == dir {
			s.Local = images
		}
	})
}

// SetQuery stores the form state used by the next Fetch
func (v *View) SetQuery(q model.SearchQuery) {
	v.update(func(s *State) { s.Query = q })
}

// Fetch runs a remote search with q and replaces the remote list wholesale.
// A selection that is not part of the new list is cleared.
func (v *View) Fetch(ctx context.Context, q model.SearchQuery) {
	v.SetQuery(q)

	v.begin()
	images, err := v.bridge.FetchRemote(ctx, q)
	v.end()
	if err != nil {
		log.Error().Err(err).Str("request", bridge.RequestFetchRemoteList).Send()
		v.notifier.Notify(Toast{Action: ActionFetch, Success: false})
		return
	}

	v.update(func(s *State) {
		s.Remote = images
		if !model.ContainsRemote(images, s.Selected) {
			s.Selected = ""
		}
	})
}

// Select toggles the action panel of a remote item. Selecting the selected
// item clears the selection; unknown paths are ignored.
func (v *View) Select(remotePath string) {
	v.update(func(s *State) {
		switch {
		case remotePath == "" || remotePath == s.Selected:
			s.Selected = ""
		case model.ContainsRemote(s.Remote, remotePath):
			s.Selected = remotePath
		}
	})
}

// ClearSelection hides the action panel
func (v *View) ClearSelection() {
	v.update(func(s *State) { s.Selected = "" })
}

// SetLocalWallpaper sets a local file as wallpaper
func (v *View) SetLocalWallpaper(ctx context.Context, path string) {
	v.begin()
	ok, err := v.bridge.SetWallpaper(ctx, path)
	v.end()
	v.report(ActionSetWallpaper, bridge.RequestSetWallpaper, ok, err)
}

// SetRemoteWallpaper downloads a remote image and sets it as wallpaper.
// The file lands in the directory, so the local list is refreshed on success.
func (v *View) SetRemoteWallpaper(ctx context.Context, remotePath string) {
	v.begin()
	ok, err := v.bridge.DownloadAndSetWallpaper(ctx, remotePath)
	v.end()
	if v.report(ActionDownloadAndSet, bridge.RequestDownloadAndSetWallpaper, ok, err) {
		v.RefreshLocal(ctx)
	}
}

// Download stores a remote image in the directory and re-lists it on success
func (v *View) Download(ctx context.Context, remotePath string) {
	v.begin()
	ok, err := v.bridge.Download(ctx, remotePath)
	v.end()
	if v.report(ActionDownload, bridge.RequestDownloadWallpaper, ok, err) {
		v.RefreshLocal(ctx)
	}
}

// report collapses a false result and an error into the same failure toast
func (v *View) report(action Action, request string, ok bool, err error) bool {
	success := ok && err == nil
	if err != nil {
		log.Error().Err(err).Str("request", request).Send()
	} else if !ok {
		log.Warn().Str("request", request).Msg("request reported failure")
	}
	v.notifier.Notify(Toast{Action: action, Success: success})
	return success
}
