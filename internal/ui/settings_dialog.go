package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/audreyapp/audrey/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	libraryDirEntry   *widget.Entry
	tickIntervalEntry *widget.Entry
	resumeCheck       *widget.Check
	languageSelect    *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog in one step
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, window, localization, onSaved).Show()
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Library directory selection
	sd.libraryDirEntry = widget.NewEntry()
	sd.libraryDirEntry.SetPlaceHolder("Library directory path")

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	libraryDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.libraryDirEntry)

	// Position poll interval
	sd.tickIntervalEntry = widget.NewEntry()
	sd.tickIntervalEntry.SetPlaceHolder(strconv.Itoa(config.MinTickIntervalMs) + "-" + strconv.Itoa(config.MaxTickIntervalMs))

	// Resume toggle
	sd.resumeCheck = widget.NewCheck(sd.localization.GetText(KeyResumePlayback), nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLibraryDirectory)+":"),
		libraryDirRow,

		widget.NewLabel(sd.localization.GetText(KeyTickInterval)+":"),
		sd.tickIntervalEntry,

		sd.resumeCheck,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.libraryDirEntry.SetText(sd.settings.GetLibraryDirectory())
	sd.tickIntervalEntry.SetText(strconv.Itoa(sd.settings.GetTickIntervalMs()))
	sd.resumeCheck.SetChecked(sd.settings.GetResumePlayback())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.libraryDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Validate and save library directory
	if dir := sd.libraryDirEntry.Text; dir != "" {
		sd.settings.SetLibraryDirectory(dir)
	}

	// Validate and save poll interval
	if text := sd.tickIntervalEntry.Text; text != "" {
		if ms, err := strconv.Atoi(text); err == nil {
			sd.settings.SetTickIntervalMs(ms)
		}
	}

	// Save resume toggle
	sd.settings.SetResumePlayback(sd.resumeCheck.Checked)

	// Save language
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
