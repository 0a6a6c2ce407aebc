package ui

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/vegascon/internal/config"
	"github.com/ytget/vegascon/internal/convert"
	"github.com/ytget/vegascon/internal/model"
	"github.com/ytget/vegascon/internal/platform"
)

// RootUI represents the main window: the conversion form
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	form         *Form
	converter    convert.Converter
	settings     *config.Settings
	options      config.Options
	localization *Localization
	resourceDir  string

	// Widgets
	fileLabel     *widget.Label
	fileEntry     *widget.Entry
	browseBtn     *widget.Button
	formatLabel   *widget.Label
	formatSelect  *widget.Select
	versionLabel  *widget.Label
	versionSelect *widget.Select
	versionIcon   *canvas.Image
	convertBtn    *widget.Button
	cancelBtn     *widget.Button
	statusLabel   *widget.Label
	spinner       *widget.ProgressBarInfinite

	// notify shows a blocking message; replaced in tests
	notify func(title, message string)
}

// NewRootUI creates and initializes the main UI. opts are the runtime options
// the app was started with; an explicit converter in opts outranks the saved
// preference.
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, converter convert.Converter, opts config.Options) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		form:         NewForm(settings.GetLastFormat()),
		converter:    converter,
		settings:     settings,
		options:      opts,
		localization: localization,
		resourceDir:  platform.ResolveResourceDir(opts.ResourceDir),
	}
	ui.notify = func(title, message string) {
		dialog.ShowInformation(title, message, ui.window)
	}

	log.Printf("RootUI initialized with converter %s, resources %s", converter.Executable(), ui.resourceDir)

	window.SetTitle(localization.GetText(KeyAppTitle))
	if icon := LoadAppIcon(ui.resourceDir); icon != nil {
		window.SetIcon(icon)
	}

	ui.converter.SetUpdateCallback(ui.onConversionUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// File selection
	ui.fileLabel = widget.NewLabel(ui.localization.GetText(KeySelectFile))
	ui.fileEntry = widget.NewEntry()
	ui.fileEntry.SetPlaceHolder(ui.localization.GetText(KeyNoFileSelected))
	ui.fileEntry.Disable()
	ui.browseBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyBrowse), theme.FolderOpenIcon(), ui.onBrowseClick)

	// Format selection
	ui.formatLabel = widget.NewLabel(ui.localization.GetText(KeySelectFormat))
	formatOptions := make([]string, 0, len(model.Formats()))
	for _, format := range model.Formats() {
		formatOptions = append(formatOptions, format.DisplayName())
	}
	ui.formatSelect = widget.NewSelect(formatOptions, ui.onFormatChanged)

	// Version selection with the selected version's icon next to it
	ui.versionLabel = widget.NewLabel(ui.localization.GetText(KeySelectVersion))
	ui.versionSelect = widget.NewSelect(ui.form.VersionLabels(), ui.onVersionChanged)
	ui.versionIcon = canvas.NewImageFromResource(nil)
	ui.versionIcon.FillMode = canvas.ImageFillContain
	ui.versionIcon.SetMinSize(fyne.NewSize(VersionIconSize, VersionIconSize))
	ui.versionIcon.Hide()

	// Actions
	ui.convertBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyConvert), theme.MediaPlayIcon(), ui.onConvertClick)
	ui.convertBtn.Importance = widget.HighImportance
	ui.cancelBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyCancel), theme.CancelIcon(), ui.onCancelClick)
	ui.cancelBtn.Hide()

	// Progress
	ui.statusLabel = widget.NewLabel("")
	ui.spinner = widget.NewProgressBarInfinite()
	ui.spinner.Stop()
	ui.spinner.Hide()

	// Selecting the initial format populates the version list
	ui.formatSelect.SetSelected(ui.form.Format().DisplayName())

	content := container.NewVBox(
		ui.fileLabel,
		container.NewBorder(nil, nil, nil, ui.browseBtn, ui.fileEntry),
		ui.formatLabel,
		ui.formatSelect,
		ui.versionLabel,
		container.NewBorder(nil, nil, ui.versionIcon, nil, ui.versionSelect),
		container.NewBorder(nil, nil, nil, ui.cancelBtn, ui.convertBtn),
		ui.spinner,
		ui.statusLabel,
	)

	ui.window.SetContent(container.NewPadded(content))
	ui.window.SetOnDropped(ui.onFilesDropped)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.fileLabel.SetText(ui.localization.GetText(KeySelectFile))
	ui.fileEntry.SetPlaceHolder(ui.localization.GetText(KeyNoFileSelected))
	ui.browseBtn.SetText(ui.localization.GetText(KeyBrowse))
	ui.formatLabel.SetText(ui.localization.GetText(KeySelectFormat))
	ui.versionLabel.SetText(ui.localization.GetText(KeySelectVersion))
	ui.convertBtn.SetText(ui.localization.GetText(KeyConvert))
	ui.cancelBtn.SetText(ui.localization.GetText(KeyCancel))
	if ui.form.Status() == model.StatusInProgress {
		ui.statusLabel.SetText(ui.localization.GetText(KeyConverting))
	}
}

// onBrowseClick opens the project file picker
func (ui *RootUI) onBrowseClick() {
	showFilePicker(
		ui.window,
		ui.localization.GetText(KeySelectFile),
		ui.settings.GetLastDirectory(),
		ui.settings.GetNativeFileDialog(),
		projectFileFilters,
		ui.setInputFile,
	)
}

// onFilesDropped accepts a project file dropped onto the window
func (ui *RootUI) onFilesDropped(_ fyne.Position, uris []fyne.URI) {
	for _, uri := range uris {
		if platform.IsProjectFile(uri.Path()) {
			ui.setInputFile(uri.Path())
			return
		}
	}
	ui.notify(ui.localization.GetText(KeyError), ui.localization.GetText(KeyUnsupportedFile))
}

// setInputFile stores the picked path; nothing else about the file is kept
func (ui *RootUI) setInputFile(path string) {
	if path == "" {
		return
	}
	log.Printf("Selected project file: %s", path)
	ui.form.SetInputPath(path)
	ui.fileEntry.SetText(path)
	ui.settings.SetLastDirectory(filepath.Dir(path))
}

// onFormatChanged repopulates the version list for the new format
func (ui *RootUI) onFormatChanged(displayName string) {
	format, err := model.ParseFormat(displayName)
	if err != nil {
		log.Printf("Ignoring unknown format %q: %v", displayName, err)
		return
	}

	entries := ui.form.SelectFormat(format)
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}

	ui.versionSelect.Options = labels
	ui.versionSelect.ClearSelected()
	ui.versionSelect.Refresh()
	ui.updateVersionIcon()
	ui.settings.SetLastFormat(format)
}

// onVersionChanged records the selected version and shows its icon
func (ui *RootUI) onVersionChanged(label string) {
	if err := ui.form.SelectVersion(label); err != nil {
		log.Printf("Ignoring version %q: %v", label, err)
	}
	ui.updateVersionIcon()
}

// updateVersionIcon shows the selected version's icon; a missing icon hides it
func (ui *RootUI) updateVersionIcon() {
	entry, ok := ui.form.SelectedEntry()
	var icon fyne.Resource
	if ok {
		icon = LoadVersionIcon(ui.resourceDir, entry)
	}

	if icon == nil {
		ui.versionIcon.Resource = nil
		ui.versionIcon.Hide()
		return
	}
	ui.versionIcon.Resource = icon
	ui.versionIcon.Show()
	ui.versionIcon.Refresh()
}

// onConvertClick validates the form and starts the converter
func (ui *RootUI) onConvertClick() {
	req, err := ui.form.Submit()
	if err != nil {
		log.Printf("Conversion request rejected: %v", err)
		ui.form.Reset()
		ui.showError(err)
		return
	}

	log.Printf("Converting %s to %s (output %s)", req.InputPath, req.TargetLabel(), req.OutputPath)

	// The form must be InProgress before the converter can report back
	if err := ui.form.SetStatus(model.StatusInProgress); err != nil {
		log.Printf("Unexpected form state: %v", err)
	}
	ui.setBusy(true)

	if _, err := ui.converter.StartConversion(req); err != nil {
		log.Printf("Failed to start conversion %s: %v", req.ID, err)
		ui.setBusy(false)
		ui.failValidation()
		ui.showError(err)
	}
}

// onCancelClick stops the running conversion
func (ui *RootUI) onCancelClick() {
	if err := ui.converter.CancelConversion(); err != nil {
		log.Printf("Cancel ignored: %v", err)
	}
}

// onConversionUpdate receives status updates from the conversion service
func (ui *RootUI) onConversionUpdate(result *model.ConversionResult) {
	log.Printf("Conversion update: id=%s status=%s exit=%d", result.Request.ID, result.Status, result.ExitCode)
	fyne.Do(func() {
		ui.applyResult(result)
	})
}

// applyResult reports a finished conversion and returns the form to Idle
func (ui *RootUI) applyResult(result *model.ConversionResult) {
	if !result.Status.IsFinished() {
		return
	}

	if err := ui.form.SetStatus(result.Status); err != nil {
		log.Printf("Unexpected form state: %v", err)
	}
	ui.setBusy(false)

	switch result.Status {
	case model.StatusSucceeded:
		ui.notify(ui.localization.GetText(KeySuccess), ui.localization.GetText(KeyConversionSucceeded))
		ui.sendCompletionNotification(result)
		if ui.settings.GetAutoRevealOnComplete() {
			ui.revealOutput(result.Request)
		}
	case model.StatusCancelled:
		ui.notify(ui.localization.GetText(KeyCancelled), ui.localization.GetText(KeyConversionCancelled))
	default:
		ui.notify(ui.localization.GetText(KeyError), ui.localization.GetText(KeyConversionFailed))
	}

	ui.form.Reset()
}

// failValidation moves a form that never reached the converter through
// Failed back to Idle
func (ui *RootUI) failValidation() {
	if err := ui.form.SetStatus(model.StatusFailed); err != nil {
		log.Printf("Unexpected form state: %v", err)
	}
	ui.form.Reset()
}

// showError maps an error to a localized message in a blocking dialog
func (ui *RootUI) showError(err error) {
	ui.notify(ui.localization.GetText(KeyError), ui.errorMessage(err))
}

// errorMessage returns the localized text for err
func (ui *RootUI) errorMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrMissingInput):
		return ui.localization.GetText(KeyPleaseSelectFile)
	case errors.Is(err, model.ErrMissingVersion):
		return ui.localization.GetText(KeyPleaseSelectVersion)
	case errors.Is(err, model.ErrInputNotFound):
		return ui.localization.GetText(KeyFileNotFound)
	case errors.Is(err, model.ErrUnknownVersion):
		return ui.localization.GetText(KeyInvalidVersion)
	case errors.Is(err, convert.ErrAlreadyRunning):
		return ui.localization.GetText(KeyAlreadyConverting)
	default:
		return ui.localization.GetText(KeyConversionFailed)
	}
}

// setBusy toggles the in-progress controls
func (ui *RootUI) setBusy(busy bool) {
	if busy {
		ui.convertBtn.Disable()
		ui.browseBtn.Disable()
		ui.formatSelect.Disable()
		ui.versionSelect.Disable()
		ui.cancelBtn.Show()
		ui.spinner.Show()
		ui.spinner.Start()
		ui.statusLabel.SetText(ui.localization.GetText(KeyConverting))
		return
	}

	ui.convertBtn.Enable()
	ui.browseBtn.Enable()
	ui.formatSelect.Enable()
	ui.versionSelect.Enable()
	ui.cancelBtn.Hide()
	ui.spinner.Stop()
	ui.spinner.Hide()
	ui.statusLabel.SetText("")
}

// sendCompletionNotification sends a system notification for a converted file
func (ui *RootUI) sendCompletionNotification(result *model.ConversionResult) {
	ui.app.SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyConversionSucceeded),
		Content: fmt.Sprintf("%s → %s", filepath.Base(result.Request.InputPath), result.Request.TargetLabel()),
	})
}

// revealOutput shows the converted file in the system file manager
func (ui *RootUI) revealOutput(req model.ConversionRequest) {
	target := platform.LocateOutput(req)
	if err := platform.OpenFileInManager(target); err != nil {
		log.Printf("Error revealing %s: %v", target, err)
		ui.notify(ui.localization.GetText(KeyError), ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error())
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies changed settings to the running app
func (ui *RootUI) onSettingsSaved() {
	executable := platform.ResolveConverter(ui.options.ConverterPath(ui.settings))
	ui.converter.SetExecutable(executable)
	log.Printf("Converter set to %s", executable)

	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
}
