package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconBack     = "‹"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Layout sizing (artist / track rows)
const (
	ThumbnailSize float32 = 56
	RowMinWidth   float32 = 280
	RowMinHeight  float32 = 64
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 280
	ToastHeight   float32 = 56
	ToastMargin   float32 = 20
	ToastAutoHide         = 3 * time.Second
)

// Loading indicator sizing
const (
	LoadingWidth  float32 = 200
	LoadingHeight float32 = 80
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 360
	SettingsDialogHeight float32 = 260
)
