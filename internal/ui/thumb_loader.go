package ui

import (
	"sync"

	"fyne.io/fyne/v2"

	"github.com/ytget/wallpaper-gallery/internal/logger"
)

var log = logger.New("ui")

// thumbLoader loads preview resources in the background and caches them
type thumbLoader struct {
	mu      sync.Mutex
	cache   map[string]fyne.Resource
	order   []string // cache keys, oldest first
	failed  map[string]bool
	pending map[string]bool
	sem     chan struct{}

	capacity int

	load func(key string) (fyne.Resource, error)
	post func(func()) // runs a callback on the UI goroutine
}

func newThumbLoader(load func(key string) (fyne.Resource, error)) *thumbLoader {
	return &thumbLoader{
		cache:    make(map[string]fyne.Resource),
		failed:   make(map[string]bool),
		pending:  make(map[string]bool),
		sem:      make(chan struct{}, MaxConcurrentThumbLoads),
		capacity: ThumbCacheSize,
		load:     load,
		post:     fyne.Do,
	}
}

// Get returns the cached resource for key, or nil while it is being loaded.
// onReady runs on the UI goroutine once a load finishes successfully.
func (l *thumbLoader) Get(key string, onReady func()) fyne.Resource {
	if key == "" {
		return nil
	}

	l.mu.Lock()
	if res, ok := l.cache[key]; ok {
		l.mu.Unlock()
		return res
	}
	if l.pending[key] || l.failed[key] {
		l.mu.Unlock()
		return nil
	}
	l.pending[key] = true
	l.mu.Unlock()

	go l.fetch(key, onReady)
	return nil
}

func (l *thumbLoader) fetch(key string, onReady func()) {
	l.sem <- struct{}{}
	res, err := l.load(key)
	<-l.sem

	l.mu.Lock()
	delete(l.pending, key)
	if err != nil {
		l.failed[key] = true
		l.mu.Unlock()
		log.Debug().Err(err).Str("key", key).Msg("thumbnail load failed")
		return
	}
	for len(l.order) >= l.capacity && len(l.order) > 0 {
		delete(l.cache, l.order[0])
		l.order = l.order[1:]
	}
	l.cache[key] = res
	l.order = append(l.order, key)
	l.mu.Unlock()

	if onReady != nil {
		l.post(onReady)
	}
}

// Forget drops failure marks so keys are retried, e.g. after a folder change
func (l *thumbLoader) Forget() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failed = make(map[string]bool)
}
