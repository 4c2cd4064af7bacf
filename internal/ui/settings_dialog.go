package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/wallpaper-gallery/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	apiKeyEntry      *widget.Entry
	resolutionEntry  *widget.Entry
	maxParallelEntry *widget.Entry
	thumbDirEntry    *widget.Entry
	languageSelect   *widget.Select

	// language display name -> code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog; onSaved runs after the
// values have been stored
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.apiKeyEntry = widget.NewPasswordEntry()

	sd.resolutionEntry = widget.NewEntry()
	sd.resolutionEntry.Validator = validateResolution

	sd.maxParallelEntry = widget.NewEntry()
	sd.maxParallelEntry.SetPlaceHolder("1-10")

	sd.thumbDirEntry = widget.NewEntry()
	browseBtn := widget.NewButton(t(KeyBrowse), sd.onBrowseDirectory)
	thumbDirRow := container.NewBorder(nil, nil, nil, browseBtn, sd.thumbDirEntry)

	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := widget.NewForm(
		widget.NewFormItem(t(KeyAPIKey), sd.apiKeyEntry),
		widget.NewFormItem(t(KeyResolution), sd.resolutionEntry),
		widget.NewFormItem(t(KeyMaxParallel), sd.maxParallelEntry),
		widget.NewFormItem(t(KeyThumbDir), thumbDirRow),
		widget.NewFormItem(t(KeyLanguage), sd.languageSelect),
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.apiKeyEntry.SetText(sd.settings.GetAPIKey())
	sd.resolutionEntry.SetText(sd.settings.GetResolution())
	sd.maxParallelEntry.SetText(strconv.Itoa(sd.settings.GetMaxParallelDownloads()))
	sd.thumbDirEntry.SetText(sd.settings.GetThumbnailDirectory())

	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
		}
	}
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.thumbDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply stores the current input values; invalid values are skipped
func (sd *SettingsDialog) apply() {
	sd.settings.SaveAPIKey(strings.TrimSpace(sd.apiKeyEntry.Text))

	if res := strings.TrimSpace(sd.resolutionEntry.Text); res != "" && validateResolution(res) == nil {
		sd.settings.SetResolution(res)
	}

	if n, err := strconv.Atoi(strings.TrimSpace(sd.maxParallelEntry.Text)); err == nil {
		sd.settings.SetMaxParallelDownloads(n)
	}

	sd.settings.SetThumbnailDirectory(strings.TrimSpace(sd.thumbDirEntry.Text))

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
}
