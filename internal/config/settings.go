package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/vegascon/internal/model"
	"github.com/ytget/vegascon/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyConverterPath      = "converter_path"
	KeyLastDirectory      = "last_directory"
	KeyLastFormat         = "last_format"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
	KeyNativeFileDialog   = "native_file_dialog"
)

// Default values
const (
	DefaultLastFormat         = model.FormatProEditor
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = false
	DefaultNativeFileDialog   = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetConverterPath returns the user-configured converter path; empty means
// the converter is resolved automatically
func (s *Settings) GetConverterPath() string {
	return s.app.Preferences().String(KeyConverterPath)
}

// SetConverterPath sets the converter path
func (s *Settings) SetConverterPath(path string) {
	s.app.Preferences().SetString(KeyConverterPath, path)
}

// GetLastDirectory returns the directory the file picker starts in
func (s *Settings) GetLastDirectory() string {
	dir := s.app.Preferences().String(KeyLastDirectory)
	if dir == "" {
		defaultDir, err := platform.GetHomeDocumentsDir()
		if err != nil {
			return ""
		}
		return defaultDir
	}
	return dir
}

// SetLastDirectory remembers the directory of the last picked file
func (s *Settings) SetLastDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastDirectory, dir)
}

// GetLastFormat returns the format selected when the app was last used
func (s *Settings) GetLastFormat() model.ProjectFormat {
	format, err := model.ParseFormat(s.app.Preferences().String(KeyLastFormat))
	if err != nil {
		return DefaultLastFormat
	}
	return format
}

// SetLastFormat stores the selected format
func (s *Settings) SetLastFormat(format model.ProjectFormat) {
	if !format.IsValid() {
		format = DefaultLastFormat
	}
	s.app.Preferences().SetString(KeyLastFormat, format.String())
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

// GetAutoRevealOnComplete returns whether to reveal converted files
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal converted files
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetNativeFileDialog returns whether the OS file picker is preferred over
// the Fyne one
func (s *Settings) GetNativeFileDialog() bool {
	return s.app.Preferences().BoolWithFallback(KeyNativeFileDialog, DefaultNativeFileDialog)
}

// SetNativeFileDialog sets the file picker preference
func (s *Settings) SetNativeFileDialog(native bool) {
	s.app.Preferences().SetBool(KeyNativeFileDialog, native)
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
