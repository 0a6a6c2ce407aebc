package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/vegascon/internal/config"
	"github.com/ytget/vegascon/internal/convert"
	"github.com/ytget/vegascon/internal/model"
)

// fakeConverter records requests instead of spawning a process
type fakeConverter struct {
	mu         sync.Mutex
	started    []model.ConversionRequest
	startErr   error
	cancelled  int
	executable string
	onUpdate   func(*model.ConversionResult)
	// onStart runs inside StartConversion, before it returns
	onStart func(model.ConversionRequest)
}

var _ convert.Converter = (*fakeConverter)(nil)

func (f *fakeConverter) SetUpdateCallback(callback func(*model.ConversionResult)) {
	f.onUpdate = callback
}

func (f *fakeConverter) Convert(_ context.Context, req model.ConversionRequest) (*model.ConversionResult, error) {
	return &model.ConversionResult{Request: req, Status: model.StatusSucceeded}, nil
}

func (f *fakeConverter) StartConversion(req model.ConversionRequest) (*model.ConversionResult, error) {
	f.mu.Lock()
	if f.startErr != nil {
		f.mu.Unlock()
		return nil, f.startErr
	}
	f.started = append(f.started, req)
	onStart := f.onStart
	f.mu.Unlock()

	if onStart != nil {
		onStart(req)
	}
	return &model.ConversionResult{Request: req, Status: model.StatusInProgress}, nil
}

func (f *fakeConverter) CancelConversion() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled++
	return nil
}

func (f *fakeConverter) IsRunning() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.started) > 0
}

func (f *fakeConverter) Executable() string { return f.executable }

func (f *fakeConverter) SetExecutable(path string) { f.executable = path }

type notice struct {
	title   string
	message string
}

func newTestRootUI(t *testing.T) (*RootUI, *fakeConverter, *[]notice) {
	t.Helper()
	return newTestRootUIWithOptions(t, config.Options{ResourceDir: t.TempDir()})
}

func newTestRootUIWithOptions(t *testing.T, opts config.Options) (*RootUI, *fakeConverter, *[]notice) {
	t.Helper()

	app := test.NewApp()
	t.Cleanup(app.Quit)

	settings := config.NewSettings(app)
	settings.SetLanguage("en")
	converter := &fakeConverter{executable: "msvpvf.exe"}

	ui := NewRootUI(app.NewWindow("test"), app, settings, converter, opts)

	notices := &[]notice{}
	ui.notify = func(title, message string) {
		*notices = append(*notices, notice{title: title, message: message})
	}
	return ui, converter, notices
}

func writeProject(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("project"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func lastNotice(t *testing.T, notices *[]notice) notice {
	t.Helper()
	if len(*notices) == 0 {
		t.Fatal("Expected a dialog to be shown")
	}
	return (*notices)[len(*notices)-1]
}

func TestRootUI_InitialState(t *testing.T) {
	ui, converter, _ := newTestRootUI(t)

	if ui.formatSelect.Selected != model.ProEditorDisplayName {
		t.Errorf("Expected VEGAS Pro selected by default, got %q", ui.formatSelect.Selected)
	}
	if len(ui.versionSelect.Options) != 13 {
		t.Errorf("Expected 13 versions, got %d", len(ui.versionSelect.Options))
	}
	if ui.versionSelect.Selected != "" {
		t.Errorf("No version should be selected, got %q", ui.versionSelect.Selected)
	}
	if converter.onUpdate == nil {
		t.Error("Update callback should be registered")
	}
}

func TestRootUI_FormatChangeResetsVersions(t *testing.T) {
	ui, _, _ := newTestRootUI(t)

	ui.versionSelect.SetSelected("VEGAS Pro 18")
	if ui.form.SelectedVersion() != "VEGAS Pro 18" {
		t.Fatalf("Version not recorded, got %q", ui.form.SelectedVersion())
	}

	ui.formatSelect.SetSelected(model.StudioDisplayName)

	if ui.form.Format() != model.FormatStudio {
		t.Errorf("Expected studio format, got %s", ui.form.Format())
	}
	if len(ui.versionSelect.Options) != 9 {
		t.Errorf("Expected 9 studio versions, got %d", len(ui.versionSelect.Options))
	}
	if ui.versionSelect.Selected != "" || ui.form.SelectedVersion() != "" {
		t.Error("Version selection should be cleared on format change")
	}
	if ui.settings.GetLastFormat() != model.FormatStudio {
		t.Error("Last format should be remembered")
	}
}

func TestRootUI_ValidationErrorsNeverStartConverter(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone.veg")

	tests := []struct {
		name    string
		input   string
		version string
		wantKey string
	}{
		{"no file", "", "VEGAS Pro 15", KeyPleaseSelectFile},
		{"no version", missing, "", KeyPleaseSelectVersion},
		{"nothing", "", "", KeyPleaseSelectFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, converter, notices := newTestRootUI(t)
			if tt.input != "" {
				ui.setInputFile(tt.input)
			}
			if tt.version != "" {
				ui.versionSelect.SetSelected(tt.version)
			}

			ui.onConvertClick()

			if len(converter.started) != 0 {
				t.Error("Converter must not be started")
			}
			got := lastNotice(t, notices)
			if got.message != ui.localization.GetText(tt.wantKey) {
				t.Errorf("Expected %q, got %q", ui.localization.GetText(tt.wantKey), got.message)
			}
			if ui.form.Status() != model.StatusIdle {
				t.Errorf("Form should be back to Idle, got %s", ui.form.Status())
			}
		})
	}
}

func TestRootUI_StartErrorsAreReported(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantKey string
	}{
		{"file removed", fmt.Errorf("stat: %w", model.ErrInputNotFound), KeyFileNotFound},
		{"already running", convert.ErrAlreadyRunning, KeyAlreadyConverting},
		{"other", fmt.Errorf("boom"), KeyConversionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, converter, notices := newTestRootUI(t)
			converter.startErr = tt.err
			ui.setInputFile(writeProject(t, "project.veg"))
			ui.versionSelect.SetSelected("VEGAS Pro 15")

			ui.onConvertClick()

			if got := lastNotice(t, notices).message; got != ui.localization.GetText(tt.wantKey) {
				t.Errorf("Expected %q, got %q", ui.localization.GetText(tt.wantKey), got)
			}
			if ui.form.Status() != model.StatusIdle {
				t.Errorf("Form should be back to Idle, got %s", ui.form.Status())
			}
			if ui.convertBtn.Disabled() {
				t.Error("Convert button should stay enabled")
			}
		})
	}
}

func TestRootUI_ConversionLifecycle(t *testing.T) {
	tests := []struct {
		name      string
		status    model.ConversionStatus
		wantTitle string
		wantKey   string
	}{
		{"succeeded", model.StatusSucceeded, KeySuccess, KeyConversionSucceeded},
		{"failed", model.StatusFailed, KeyError, KeyConversionFailed},
		{"cancelled", model.StatusCancelled, KeyCancelled, KeyConversionCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, converter, notices := newTestRootUI(t)
			input := writeProject(t, "project.veg")
			ui.setInputFile(input)
			ui.versionSelect.SetSelected("VEGAS Pro 12")

			ui.onConvertClick()

			if len(converter.started) != 1 {
				t.Fatalf("Expected one conversion, got %d", len(converter.started))
			}
			req := converter.started[0]
			if req.InputPath != input || req.Version != 12 || req.Format != model.FormatProEditor {
				t.Errorf("Unexpected request: %+v", req)
			}
			if ui.form.Status() != model.StatusInProgress {
				t.Errorf("Expected InProgress, got %s", ui.form.Status())
			}
			if !ui.convertBtn.Disabled() || ui.cancelBtn.Hidden {
				t.Error("Convert should be disabled and Cancel visible while converting")
			}

			// Progress notifications are ignored
			ui.applyResult(&model.ConversionResult{Request: req, Status: model.StatusInProgress})
			if len(*notices) != 0 {
				t.Error("InProgress update should not show a dialog")
			}

			ui.applyResult(&model.ConversionResult{Request: req, Status: tt.status})

			got := lastNotice(t, notices)
			if got.message != ui.localization.GetText(tt.wantKey) {
				t.Errorf("Expected %q, got %q", ui.localization.GetText(tt.wantKey), got.message)
			}
			if got.title != ui.localization.GetText(tt.wantTitle) {
				t.Errorf("Expected title %q, got %q", ui.localization.GetText(tt.wantTitle), got.title)
			}
			if ui.form.Status() != model.StatusIdle {
				t.Errorf("Form should be back to Idle, got %s", ui.form.Status())
			}
			if ui.convertBtn.Disabled() || !ui.cancelBtn.Hidden {
				t.Error("Controls should be restored after completion")
			}
		})
	}
}

func TestRootUI_CancelClick(t *testing.T) {
	ui, converter, _ := newTestRootUI(t)

	test.Tap(ui.cancelBtn)

	if converter.cancelled != 1 {
		t.Errorf("Expected one cancel, got %d", converter.cancelled)
	}
}

func TestRootUI_SetInputFileRemembersDirectory(t *testing.T) {
	ui, _, _ := newTestRootUI(t)
	input := writeProject(t, "project.vf")

	ui.setInputFile(input)

	if ui.fileEntry.Text != input || ui.form.InputPath() != input {
		t.Errorf("Input path not stored: entry=%q form=%q", ui.fileEntry.Text, ui.form.InputPath())
	}
	if ui.settings.GetLastDirectory() != filepath.Dir(input) {
		t.Errorf("Expected last directory %s, got %s", filepath.Dir(input), ui.settings.GetLastDirectory())
	}
}

func TestRootUI_SettingsSavedUpdatesConverter(t *testing.T) {
	ui, converter, _ := newTestRootUI(t)
	exe := writeProject(t, "custom-converter")

	ui.settings.SetConverterPath(exe)
	ui.settings.SetLanguage("ru")
	ui.onSettingsSaved()

	if converter.executable != exe {
		t.Errorf("Expected executable %s, got %s", exe, converter.executable)
	}
	if ui.localization.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected ru, got %s", ui.localization.GetCurrentLanguage())
	}
	if ui.convertBtn.Text != ui.localization.GetText(KeyConvert) {
		t.Error("Button texts should follow the language")
	}
}

func TestRootUI_ResultBeforeStartReturns(t *testing.T) {
	ui, converter, notices := newTestRootUI(t)
	converter.onStart = func(req model.ConversionRequest) {
		if ui.form.Status() != model.StatusInProgress {
			t.Errorf("Form should be InProgress when the converter starts, got %s", ui.form.Status())
		}
		ui.applyResult(&model.ConversionResult{Request: req, Status: model.StatusSucceeded})
	}
	ui.setInputFile(writeProject(t, "project.veg"))
	ui.versionSelect.SetSelected("VEGAS Pro 16")

	ui.onConvertClick()

	if got := lastNotice(t, notices).message; got != ui.localization.GetText(KeyConversionSucceeded) {
		t.Errorf("Expected success message, got %q", got)
	}
	if ui.form.Status() != model.StatusIdle {
		t.Errorf("Form should be back to Idle, got %s", ui.form.Status())
	}
	if ui.convertBtn.Disabled() || !ui.cancelBtn.Hidden {
		t.Error("Controls should not stay busy after an immediate result")
	}
}

func TestRootUI_ExplicitConverterSurvivesSettingsSave(t *testing.T) {
	explicit := writeProject(t, "explicit-converter")
	ui, converter, _ := newTestRootUIWithOptions(t, config.Options{
		Converter:   explicit,
		ResourceDir: t.TempDir(),
	})
	converter.executable = explicit

	ui.settings.SetConverterPath("")
	ui.settings.SetLanguage("pt")
	ui.onSettingsSaved()

	if converter.executable != explicit {
		t.Errorf("Expected explicit converter %s to be kept, got %s", explicit, converter.executable)
	}
	if ui.localization.GetCurrentLanguage() != "pt" {
		t.Errorf("Expected pt, got %s", ui.localization.GetCurrentLanguage())
	}
}
