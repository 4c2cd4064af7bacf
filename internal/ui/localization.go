package ui

import (
	"fmt"

	"github.com/ytget/wallpaper-gallery/internal/gallery"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeyFile           = "file"
	KeySettings       = "settings"
	KeyLanguage       = "language"
	KeyChooseFolder   = "choose_folder"
	KeyNoFolder       = "no_folder"
	KeyRefresh        = "refresh"
	KeyFetch          = "fetch"
	KeyResolution     = "resolution"
	KeyAPIKey         = "api_key"
	KeyCount          = "count"
	KeyRange          = "range"
	KeySort           = "sort"
	KeyRemoteTab      = "remote_tab"
	KeyLocalTab       = "local_tab"
	KeySetWallpaper   = "set_wallpaper"
	KeyDownload       = "download"
	KeyOpenPage       = "open_page"
	KeyReveal         = "reveal"
	KeySave           = "save"
	KeyCancel         = "cancel"
	KeyBrowse         = "browse"
	KeyMaxParallel    = "max_parallel"
	KeySettingsSaved  = "settings_saved"
	KeyDownloading    = "downloading"
	KeyEmptyLocal     = "empty_local"
	KeyEmptyRemote    = "empty_remote"
	KeySetOK          = "set_ok"
	KeySetFailed      = "set_failed"
	KeyDownloadOK     = "download_ok"
	KeyDownloadFailed = "download_failed"
	KeyFetchFailed    = "fetch_failed"
	KeyImagesCount    = "images_count"
	KeyThumbDir       = "thumb_dir"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// Format returns the localized text for key formatted with args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// ToastText returns the message for a gallery toast
func (l *Localization) ToastText(t gallery.Toast) string {
	switch t.Action {
	case gallery.ActionFetch:
		return l.GetText(KeyFetchFailed)
	case gallery.ActionDownload:
		if t.Success {
			return l.GetText(KeyDownloadOK)
		}
		return l.GetText(KeyDownloadFailed)
	default:
		if t.Success {
			return l.GetText(KeySetOK)
		}
		return l.GetText(KeySetFailed)
	}
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"zh": "中文",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:       "Wallpaper Gallery",
		KeyFile:           "File",
		KeySettings:       "Settings",
		KeyLanguage:       "Language",
		KeyChooseFolder:   "Choose folder",
		KeyNoFolder:       "No folder selected",
		KeyRefresh:        "Refresh",
		KeyFetch:          "Fetch",
		KeyResolution:     "Min resolution",
		KeyAPIKey:         "API key",
		KeyCount:          "Count",
		KeyRange:          "Range",
		KeySort:           "Sort",
		KeyRemoteTab:      "Online",
		KeyLocalTab:       "Local",
		KeySetWallpaper:   "Set wallpaper",
		KeyDownload:       "Download",
		KeyOpenPage:       "Open page",
		KeyReveal:         "Reveal",
		KeySave:           "Save",
		KeyCancel:         "Cancel",
		KeyBrowse:         "Browse",
		KeyMaxParallel:    "Max parallel downloads",
		KeySettingsSaved:  "Settings saved",
		KeyDownloading:    "Downloading %s (%d%%)",
		KeyEmptyLocal:     "No .jpg or .png files in this folder",
		KeyEmptyRemote:    "Press Fetch to load wallpapers",
		KeySetOK:          "Wallpaper set",
		KeySetFailed:      "Failed to set wallpaper",
		KeyDownloadOK:     "Download complete",
		KeyDownloadFailed: "Download failed",
		KeyFetchFailed:    "Failed to load wallpapers",
		KeyImagesCount:    "%d images",
		KeyThumbDir:       "Thumbnail cache folder",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:       "Галерея обоев",
		KeyFile:           "Файл",
		KeySettings:       "Настройки",
		KeyLanguage:       "Язык",
		KeyChooseFolder:   "Выбрать папку",
		KeyNoFolder:       "Папка не выбрана",
		KeyRefresh:        "Обновить",
		KeyFetch:          "Загрузить",
		KeyResolution:     "Мин. разрешение",
		KeyAPIKey:         "API-ключ",
		KeyCount:          "Количество",
		KeyRange:          "Период",
		KeySort:           "Сортировка",
		KeyRemoteTab:      "Онлайн",
		KeyLocalTab:       "Локальные",
		KeySetWallpaper:   "Установить обои",
		KeyDownload:       "Скачать",
		KeyOpenPage:       "Открыть страницу",
		KeyReveal:         "Показать",
		KeySave:           "Сохранить",
		KeyCancel:         "Отмена",
		KeyBrowse:         "Обзор",
		KeyMaxParallel:    "Макс. параллельных загрузок",
		KeySettingsSaved:  "Настройки сохранены",
		KeyDownloading:    "Скачивание %s (%d%%)",
		KeyEmptyLocal:     "В папке нет файлов .jpg или .png",
		KeyEmptyRemote:    "Нажмите «Загрузить», чтобы получить обои",
		KeySetOK:          "Обои установлены",
		KeySetFailed:      "Не удалось установить обои",
		KeyDownloadOK:     "Скачивание завершено",
		KeyDownloadFailed: "Ошибка скачивания",
		KeyFetchFailed:    "Не удалось загрузить список обоев",
		KeyImagesCount:    "Изображений: %d",
		KeyThumbDir:       "Папка кэша миниатюр",
	}

	l.texts["zh"] = map[string]string{
		KeyAppTitle:       "壁纸画廊",
		KeyFile:           "文件",
		KeySettings:       "设置",
		KeyLanguage:       "语言",
		KeyChooseFolder:   "选择文件夹",
		KeyNoFolder:       "未选择文件夹",
		KeyRefresh:        "刷新",
		KeyFetch:          "获取",
		KeyResolution:     "最低分辨率",
		KeyAPIKey:         "API 密钥",
		KeyCount:          "数量",
		KeyRange:          "时间范围",
		KeySort:           "排序",
		KeyRemoteTab:      "在线",
		KeyLocalTab:       "本地",
		KeySetWallpaper:   "设为壁纸",
		KeyDownload:       "下载",
		KeyOpenPage:       "打开页面",
		KeyReveal:         "在文件夹中显示",
		KeySave:           "保存",
		KeyCancel:         "取消",
		KeyBrowse:         "浏览",
		KeyMaxParallel:    "最大并行下载数",
		KeySettingsSaved:  "设置已保存",
		KeyDownloading:    "正在下载 %s (%d%%)",
		KeyEmptyLocal:     "此文件夹中没有 .jpg 或 .png 文件",
		KeyEmptyRemote:    "点击“获取”加载壁纸",
		KeySetOK:          "壁纸设置成功",
		KeySetFailed:      "壁纸设置失败",
		KeyDownloadOK:     "下载成功",
		KeyDownloadFailed: "下载失败",
		KeyFetchFailed:    "获取壁纸失败",
		KeyImagesCount:    "%d 张图片",
		KeyThumbDir:       "缩略图缓存目录",
	}
}
