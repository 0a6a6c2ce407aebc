package ui

import (
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/vegascon/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	converterEntry *widget.Entry
	autoRevealChk  *widget.Check
	nativeDlgChk   *widget.Check
	languageSelect *widget.Select

	// languageCodes maps a language display name back to its code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings have been written.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	// Converter executable
	sd.converterEntry = widget.NewEntry()
	sd.converterEntry.SetPlaceHolder(l.GetText(KeyConverterPlaceholder))
	browseBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseConverter)
	converterRow := container.NewBorder(nil, nil, nil, browseBtn, sd.converterEntry)

	sd.autoRevealChk = widget.NewCheck(l.GetText(KeyAutoReveal), nil)
	sd.nativeDlgChk = widget.NewCheck(l.GetText(KeyNativeDialog), nil)

	// Language selection by display name
	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyConverterPath)),
		converterRow,
		widget.NewSeparator(),
		sd.autoRevealChk,
		sd.nativeDlgChk,
		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.converterEntry.SetText(sd.settings.GetConverterPath())
	sd.autoRevealChk.SetChecked(sd.settings.GetAutoRevealOnComplete())
	sd.nativeDlgChk.SetChecked(sd.settings.GetNativeFileDialog())

	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
			break
		}
	}
}

// onBrowseConverter picks the converter executable
func (sd *SettingsDialog) onBrowseConverter() {
	showFilePicker(
		sd.window,
		sd.localization.GetText(KeyConverterPath),
		"",
		sd.settings.GetNativeFileDialog(),
		nil,
		sd.converterEntry.SetText,
	)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// An empty path restores automatic lookup
	sd.settings.SetConverterPath(strings.TrimSpace(sd.converterEntry.Text))
	sd.settings.SetAutoRevealOnComplete(sd.autoRevealChk.Checked)
	sd.settings.SetNativeFileDialog(sd.nativeDlgChk.Checked)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
