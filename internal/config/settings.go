package config

import (
	"os"

	"fyne.io/fyne/v2"

	"github.com/ytget/wallpaper-gallery/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeySelectedDir  = "selected_directory"
	KeyAPIKey       = "wallhaven_api_key"
	KeyResolution   = "query_resolution"
	KeyCount        = "query_count"
	KeyRange        = "query_range"
	KeySort         = "query_sort"
	KeyMaxParallel  = "max_parallel_downloads"
	KeyLanguage     = "app_language"
	KeyThumbnailDir = "thumbnail_directory"
)

// EnvAPIKey is consulted when no API key has been stored
const EnvAPIKey = "WALLHAVEN_API_KEY"

// Default values
const (
	DefaultMaxParallel = 2
	DefaultLanguage    = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetSelectedDirectory returns the persisted wallpaper directory, or ""
// when the user never picked one
func (s *Settings) GetSelectedDirectory() string {
	return s.app.Preferences().String(KeySelectedDir)
}

// SetSelectedDirectory persists the wallpaper directory
func (s *Settings) SetSelectedDirectory(dir string) {
	s.app.Preferences().SetString(KeySelectedDir, dir)
}

// GetAPIKey returns the stored API key, falling back to the environment
func (s *Settings) GetAPIKey() string {
	if key := s.app.Preferences().String(KeyAPIKey); key != "" {
		return key
	}
	return os.Getenv(EnvAPIKey)
}

// SetAPIKey stores the API key; an empty value re-enables the env fallback
func (s *Settings) SetAPIKey(key string) {
	s.app.Preferences().SetString(KeyAPIKey, key)
}

// GetResolution returns the minimum resolution filter
func (s *Settings) GetResolution() string {
	return s.app.Preferences().StringWithFallback(KeyResolution, model.DefaultResolution)
}

// SetResolution sets the minimum resolution filter
func (s *Settings) SetResolution(res string) {
	s.app.Preferences().SetString(KeyResolution, res)
}

// GetCount returns how many remote images a fetch should return
func (s *Settings) GetCount() int {
	value := s.app.Preferences().Int(KeyCount)
	if value <= 0 {
		return model.DefaultCount
	}
	return value
}

// SetCount sets the result count, clamped to [1, model.MaxCount]
func (s *Settings) SetCount(count int) {
	if count < 1 {
		count = 1
	}
	if count > model.MaxCount {
		count = model.MaxCount
	}
	s.app.Preferences().SetInt(KeyCount, count)
}

// GetRange returns the toplist time range
func (s *Settings) GetRange() string {
	return s.app.Preferences().StringWithFallback(KeyRange, model.DefaultRange)
}

// SetRange sets the toplist time range
func (s *Settings) SetRange(r string) {
	s.app.Preferences().SetString(KeyRange, r)
}

// GetSort returns the sorting mode
func (s *Settings) GetSort() string {
	return s.app.Preferences().StringWithFallback(KeySort, model.DefaultSort)
}

// SetSort sets the sorting mode
func (s *Settings) SetSort(sort string) {
	s.app.Preferences().SetString(KeySort, sort)
}

// GetSearchQuery assembles a query from the stored form defaults
func (s *Settings) GetSearchQuery() model.SearchQuery {
	q := model.NewSearchQuery()
	q.Resolution = s.GetResolution()
	q.APIKey = s.GetAPIKey()
	q.Count = s.GetCount()
	q.Range = s.GetRange()
	q.Sort = s.GetSort()
	return q
}

// SaveSearchQuery stores the form fields of q as the new defaults.
// The API key is only written when non-empty.
func (s *Settings) SaveSearchQuery(q model.SearchQuery) {
	s.SetResolution(q.Resolution)
	s.SetCount(q.Count)
	s.SetRange(q.Range)
	s.SetSort(q.Sort)
	if s.shouldStoreAPIKey(q.APIKey) {
		s.SetAPIKey(q.APIKey)
	}
}

// SaveAPIKey stores a key entered in the UI. An empty key clears the stored
// value; the environment key is never copied into preferences.
func (s *Settings) SaveAPIKey(key string) {
	if key == "" {
		s.SetAPIKey("")
		return
	}
	if s.shouldStoreAPIKey(key) {
		s.SetAPIKey(key)
	}
}

// shouldStoreAPIKey reports whether key was entered by the user rather than
// echoed back from the environment fallback
func (s *Settings) shouldStoreAPIKey(key string) bool {
	if key == "" {
		return false
	}
	stored := s.app.Preferences().String(KeyAPIKey)
	if stored == "" && key == os.Getenv(EnvAPIKey) {
		return false
	}
	return key != stored
}

// GetMaxParallelDownloads returns the maximum number of parallel downloads
func (s *Settings) GetMaxParallelDownloads() int {
	value := s.app.Preferences().Int(KeyMaxParallel)
	if value <= 0 {
		s.SetMaxParallelDownloads(DefaultMaxParallel)
		return DefaultMaxParallel
	}
	return value
}

// SetMaxParallelDownloads sets the maximum number of parallel downloads
func (s *Settings) SetMaxParallelDownloads(count int) {
	if count < 1 {
		count = 1
	}
	if count > 10 {
		count = 10
	}
	s.app.Preferences().SetInt(KeyMaxParallel, count)
}

// GetThumbnailDirectory returns the thumbnail cache override, or ""
func (s *Settings) GetThumbnailDirectory() string {
	return s.app.Preferences().String(KeyThumbnailDir)
}

// SetThumbnailDirectory overrides the thumbnail cache location
func (s *Settings) SetThumbnailDirectory(dir string) {
	s.app.Preferences().SetString(KeyThumbnailDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"zh":     "中文",
	}
}
