package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/wallpaper-gallery/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestSelectedDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Unset directory stays empty
	if dir := settings.GetSelectedDirectory(); dir != "" {
		t.Errorf("Expected empty directory by default, got %s", dir)
	}

	customDir := "/custom/wallpapers"
	settings.SetSelectedDirectory(customDir)

	if got := settings.GetSelectedDirectory(); got != customDir {
		t.Errorf("Expected directory %s, got %s", customDir, got)
	}
}

func TestAPIKey_EnvFallback(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	t.Setenv(EnvAPIKey, "from-env")
	if key := settings.GetAPIKey(); key != "from-env" {
		t.Errorf("Expected env API key, got %q", key)
	}

	settings.SetAPIKey("stored")
	if key := settings.GetAPIKey(); key != "stored" {
		t.Errorf("Expected stored API key to win, got %q", key)
	}

	settings.SetAPIKey("")
	if key := settings.GetAPIKey(); key != "from-env" {
		t.Errorf("Expected env fallback after clearing, got %q", key)
	}
}

func TestCount(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetCount() != model.DefaultCount {
		t.Errorf("Expected default count %d, got %d", model.DefaultCount, settings.GetCount())
	}

	settings.SetCount(48)
	if settings.GetCount() != 48 {
		t.Errorf("Expected count 48, got %d", settings.GetCount())
	}

	settings.SetCount(0)
	if settings.GetCount() != 1 {
		t.Error("Count should be clamped to minimum 1")
	}

	settings.SetCount(model.MaxCount + 100)
	if settings.GetCount() != model.MaxCount {
		t.Errorf("Count should be clamped to maximum %d", model.MaxCount)
	}
}

func TestSearchQueryRoundTrip(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	t.Setenv(EnvAPIKey, "")

	q := settings.GetSearchQuery()
	if q.Sort != model.DefaultSort || q.Range != model.DefaultRange || q.Resolution != model.DefaultResolution {
		t.Errorf("Unexpected default query: %+v", q)
	}

	q.Sort = model.SortViews
	q.Range = model.Range1Week
	q.Resolution = "2560x1440"
	q.Count = 12
	q.APIKey = "k"
	settings.SaveSearchQuery(q)

	got := settings.GetSearchQuery()
	if got.Sort != model.SortViews || got.Range != model.Range1Week || got.Resolution != "2560x1440" || got.Count != 12 {
		t.Errorf("Query not persisted: %+v", got)
	}
	if got.APIKey != "k" {
		t.Errorf("Expected API key to be persisted, got %q", got.APIKey)
	}
	if got.Categories != model.DefaultCategories {
		t.Errorf("Expected default categories, got %q", got.Categories)
	}
}

func TestMaxParallelDownloads(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	maxParallel := settings.GetMaxParallelDownloads()
	if maxParallel != DefaultMaxParallel {
		t.Errorf("Expected default max parallel %d, got %d", DefaultMaxParallel, maxParallel)
	}

	settings.SetMaxParallelDownloads(5)
	if settings.GetMaxParallelDownloads() != 5 {
		t.Errorf("Expected max parallel 5, got %d", settings.GetMaxParallelDownloads())
	}

	settings.SetMaxParallelDownloads(0)
	if settings.GetMaxParallelDownloads() != 1 {
		t.Error("Max parallel should be clamped to minimum 1")
	}

	settings.SetMaxParallelDownloads(15)
	if settings.GetMaxParallelDownloads() != 10 {
		t.Error("Max parallel should be clamped to maximum 10")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("zh")
	if settings.GetLanguage() != "zh" {
		t.Errorf("Expected language 'zh', got %s", settings.GetLanguage())
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "zh"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestSaveSearchQuery_DoesNotPersistEnvKey(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	t.Setenv(EnvAPIKey, "from-env")

	q := settings.GetSearchQuery()
	if q.APIKey != "from-env" {
		t.Fatalf("Expected env key in query, got %s", q.APIKey)
	}
	settings.SaveSearchQuery(q)

	if stored := app.Preferences().String(KeyAPIKey); stored != "" {
		t.Errorf("Env key should not be stored, got %s", stored)
	}

	// the env value stays authoritative while nothing is stored
	t.Setenv(EnvAPIKey, "rotated")
	if settings.GetAPIKey() != "rotated" {
		t.Errorf("Expected rotated env key, got %s", settings.GetAPIKey())
	}

	// a key typed by the user is stored
	q.APIKey = "typed"
	settings.SaveSearchQuery(q)
	if stored := app.Preferences().String(KeyAPIKey); stored != "typed" {
		t.Errorf("Expected typed key to be stored, got %s", stored)
	}
}
