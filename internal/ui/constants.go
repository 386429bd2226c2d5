package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconPause    = "⏸"
	IconStop     = "⏹"
	IconFolder   = "📁"
	IconRefresh  = "⟳"
	IconClose    = "×"
	IconBook     = "📖"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	SkipBackLabel      = "−30s"
	SkipForwardLabel   = "+30s"
)

// Layout sizing
const (
	WindowMinWidth  float32 = 640
	WindowMinHeight float32 = 480

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 56

	VolumeSliderWidth float32 = 140
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 360
)

// Slider resolution. The seek slider works in permille of the track so
// dragging stays smooth on multi-hour audiobooks.
const (
	SeekSliderSteps float64 = 1000
)
