package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconRefresh  = "⟳"
	IconClose    = "×"
	IconCheck    = "✓"
	IconError    = "❌"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Grid tile sizing
const (
	ThumbWidth  float32 = 200
	ThumbHeight float32 = 112

	RemoteTileWidth  float32 = 210
	RemoteTileHeight float32 = 190
	LocalTileWidth   float32 = 210
	LocalTileHeight  float32 = 160

	SearchEntryWidth float32 = 110
)

// Window sizing
const (
	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 320
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 280
	ToastHeight   float32 = 56
	ToastMargin   float32 = 20
	ToastAutoHide         = 3 * time.Second
)

// Debounce durations
const (
	ProgressUIDebounce = 150 * time.Millisecond
)

// Thumbnail loading
const (
	MaxConcurrentThumbLoads = 6
	ThumbCacheSize          = 512
)
