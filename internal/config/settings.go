package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/ytbuddy/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage      = "app_language"
	KeyKeepScratch   = "keep_scratch_files"
	KeyDefaultBucket = "default_format_bucket"
)

// Default values
const (
	DefaultLanguage    = "system"
	DefaultKeepScratch = false
	DefaultBucket      = model.KindVideoAudio
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
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

// GetKeepScratchFiles returns whether staged files are kept after hand-off.
// When false, the scratch directory is removed once the session moves on.
func (s *Settings) GetKeepScratchFiles() bool {
	return s.app.Preferences().BoolWithFallback(KeyKeepScratch, DefaultKeepScratch)
}

// SetKeepScratchFiles sets whether staged files survive hand-off
func (s *Settings) SetKeepScratchFiles(keep bool) {
	s.app.Preferences().SetBool(KeyKeepScratch, keep)
}

// GetDefaultBucket returns the format bucket preselected after a fetch
func (s *Settings) GetDefaultBucket() model.FormatKind {
	bucket := model.FormatKind(s.app.Preferences().String(KeyDefaultBucket))
	switch bucket {
	case model.KindVideoAudio, model.KindAudioOnly:
		return bucket
	}
	s.SetDefaultBucket(DefaultBucket)
	return DefaultBucket
}

// SetDefaultBucket sets the preselected format bucket
func (s *Settings) SetDefaultBucket(bucket model.FormatKind) {
	if bucket != model.KindVideoAudio && bucket != model.KindAudioOnly {
		bucket = DefaultBucket
	}
	s.app.Preferences().SetString(KeyDefaultBucket, string(bucket))
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
