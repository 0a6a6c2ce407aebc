package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/vegascon/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestConverterPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if path := settings.GetConverterPath(); path != "" {
		t.Errorf("Expected empty converter path by default, got %s", path)
	}

	settings.SetConverterPath("/opt/msvpvf/msvpvf.exe")
	if path := settings.GetConverterPath(); path != "/opt/msvpvf/msvpvf.exe" {
		t.Errorf("Expected configured converter path, got %s", path)
	}
}

func TestLastDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if dir := settings.GetLastDirectory(); dir == "" {
		t.Error("Last directory should default to a home directory")
	}

	settings.SetLastDirectory("/projects")
	if dir := settings.GetLastDirectory(); dir != "/projects" {
		t.Errorf("Expected /projects, got %s", dir)
	}
}

func TestLastFormat(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if format := settings.GetLastFormat(); format != DefaultLastFormat {
		t.Errorf("Expected default format %s, got %s", DefaultLastFormat, format)
	}

	settings.SetLastFormat(model.FormatStudio)
	if format := settings.GetLastFormat(); format != model.FormatStudio {
		t.Errorf("Expected %s, got %s", model.FormatStudio, format)
	}

	settings.SetLastFormat(model.ProjectFormat("bogus"))
	if format := settings.GetLastFormat(); format != DefaultLastFormat {
		t.Errorf("Invalid format should fall back to %s, got %s", DefaultLastFormat, format)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("en")
	if retrievedLang := settings.GetLanguage(); retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestBooleanSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAutoRevealOnComplete() != DefaultAutoRevealComplete {
		t.Error("Unexpected auto-reveal default")
	}
	settings.SetAutoRevealOnComplete(true)
	if !settings.GetAutoRevealOnComplete() {
		t.Error("Auto-reveal should be enabled")
	}

	if settings.GetNativeFileDialog() != DefaultNativeFileDialog {
		t.Error("Unexpected native dialog default")
	}
	settings.SetNativeFileDialog(false)
	if settings.GetNativeFileDialog() {
		t.Error("Native dialog should be disabled")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
