package config

import (
	"fyne.io/fyne/v2"

	"github.com/audreyapp/audrey/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyLibraryDir     = "library_directory"
	KeyTickIntervalMs = "tick_interval_ms"
	KeyResumePlayback = "resume_playback"
	KeyVolume         = "volume"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultTickIntervalMs = 500
	DefaultResumePlayback = true
	DefaultVolume         = 1.0
	DefaultLanguage       = "system"
)

// Tick interval bounds in milliseconds. The position poll is cheap but
// there is no point running it faster than the UI can usefully redraw.
const (
	MinTickIntervalMs = 200
	MaxTickIntervalMs = 1000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLibraryDirectory returns the configured audiobook library directory
func (s *Settings) GetLibraryDirectory() string {
	dir := s.app.Preferences().String(KeyLibraryDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeAudiobooksDir()
		if err != nil {
			defaultDir = "/tmp/audiobooks"
		}
		s.SetLibraryDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetLibraryDirectory sets the audiobook library directory
func (s *Settings) SetLibraryDirectory(dir string) {
	s.app.Preferences().SetString(KeyLibraryDir, dir)
}

// GetTickIntervalMs returns the position poll interval in milliseconds
func (s *Settings) GetTickIntervalMs() int {
	value := s.app.Preferences().Int(KeyTickIntervalMs)
	if value <= 0 {
		s.SetTickIntervalMs(DefaultTickIntervalMs)
		return DefaultTickIntervalMs
	}
	return value
}

// SetTickIntervalMs sets the position poll interval, clamped to the valid
// range
func (s *Settings) SetTickIntervalMs(ms int) {
	if ms < MinTickIntervalMs {
		ms = MinTickIntervalMs
	}
	if ms > MaxTickIntervalMs {
		ms = MaxTickIntervalMs
	}
	s.app.Preferences().SetInt(KeyTickIntervalMs, ms)
}

// GetResumePlayback returns whether saved positions are restored on load
func (s *Settings) GetResumePlayback() bool {
	return s.app.Preferences().BoolWithFallback(KeyResumePlayback, DefaultResumePlayback)
}

// SetResumePlayback sets whether saved positions are restored on load
func (s *Settings) SetResumePlayback(resume bool) {
	s.app.Preferences().SetBool(KeyResumePlayback, resume)
}

// GetVolume returns the stored playback volume in [0, 1]
func (s *Settings) GetVolume() float64 {
	return s.app.Preferences().FloatWithFallback(KeyVolume, DefaultVolume)
}

// SetVolume stores the playback volume, clamped to [0, 1]
func (s *Settings) SetVolume(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	s.app.Preferences().SetFloat(KeyVolume, level)
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
		"pt":     "Português",
	}
}
