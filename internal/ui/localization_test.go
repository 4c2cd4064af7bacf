package ui

import (
	"strings"
	"testing"

	"github.com/ytget/wallpaper-gallery/internal/gallery"
)

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language 'en', got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("zh")
	if l.GetText(KeyDownload) != "下载" {
		t.Errorf("Expected Chinese text, got %s", l.GetText(KeyDownload))
	}

	// Unknown languages are ignored
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "zh" {
		t.Errorf("Unknown language should not change current language, got %s", l.GetCurrentLanguage())
	}

	// "system" maps to English
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected 'system' to map to 'en', got %s", l.GetCurrentLanguage())
	}

	if l.GetText("no_such_key") != "no_such_key" {
		t.Error("Unknown keys should fall back to the key itself")
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Fatalf("Language %s has no texts", lang)
		}
		for key := range english {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}

func TestLocalization_Format(t *testing.T) {
	l := NewLocalization()
	got := l.Format(KeyDownloading, "a.jpg", 42)
	if !strings.Contains(got, "a.jpg") || !strings.Contains(got, "42%") {
		t.Errorf("Unexpected formatted text: %s", got)
	}
}

func TestLocalization_ToastText(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		toast    gallery.Toast
		expected string
	}{
		{gallery.Toast{Action: gallery.ActionSetWallpaper, Success: true}, l.GetText(KeySetOK)},
		{gallery.Toast{Action: gallery.ActionSetWallpaper, Success: false}, l.GetText(KeySetFailed)},
		{gallery.Toast{Action: gallery.ActionDownloadAndSet, Success: true}, l.GetText(KeySetOK)},
		{gallery.Toast{Action: gallery.ActionDownloadAndSet, Success: false}, l.GetText(KeySetFailed)},
		{gallery.Toast{Action: gallery.ActionDownload, Success: true}, l.GetText(KeyDownloadOK)},
		{gallery.Toast{Action: gallery.ActionDownload, Success: false}, l.GetText(KeyDownloadFailed)},
		{gallery.Toast{Action: gallery.ActionFetch, Success: false}, l.GetText(KeyFetchFailed)},
	}

	for _, test := range tests {
		if got := l.ToastText(test.toast); got != test.expected {
			t.Errorf("ToastText(%+v) = %s, expected %s", test.toast, got, test.expected)
		}
	}
}
