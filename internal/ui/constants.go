package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFile     = "📄"
)

// Text fragments
const (
	LabelSeparator = ": "
)

// Layout sizing
const (
	ThumbnailWidth  float32 = 320
	ThumbnailHeight float32 = 180

	SettingsDialogW float32 = 460
	SettingsDialogH float32 = 320
)
