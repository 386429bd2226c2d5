package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"github.com/sirupsen/logrus"

	"github.com/audreyapp/audrey/internal/config"
	"github.com/audreyapp/audrey/internal/library"
	"github.com/audreyapp/audrey/internal/model"
	"github.com/audreyapp/audrey/internal/platform"
	"github.com/audreyapp/audrey/internal/playback"
	"github.com/audreyapp/audrey/internal/progress"
)

// RootUI owns the main window, the two screens and the navigation between
// them, and runs the position poll loop that drives the player display
type RootUI struct {
	window       fyne.Window
	session      *playback.Session
	catalog      *library.Catalog
	store        *progress.Store
	settings     *config.Settings
	localization *Localization

	libraryScreen *LibraryScreen
	playerScreen  *PlayerScreen
	playerVisible bool

	tickerStop chan struct{}
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, session *playback.Session, store *progress.Store) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	// Ensure the library directory exists
	libraryDir := settings.GetLibraryDirectory()
	if err := platform.CreateDirectoryIfNotExists(libraryDir); err != nil {
		logrus.WithError(err).WithField("dir", libraryDir).Warn("creating library directory failed")
	}

	ui := &RootUI{
		window:       window,
		session:      session,
		catalog:      library.NewCatalog(libraryDir),
		store:        store,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.Resize(fyne.NewSize(WindowMinWidth, WindowMinHeight))

	ui.libraryScreen = NewLibraryScreen(window, ui.catalog, localization, ui.showPlayer, ui.onShowSettings)
	ui.playerScreen = NewPlayerScreen(window, session, store, settings, localization, ui.showLibrary)

	// Restore the persisted volume before anything is loaded
	session.SetVolume(settings.GetVolume())

	// Session snapshots arrive on the poll goroutine and on whichever
	// goroutine issued a command; rendering happens on the Fyne thread.
	session.Subscribe(func(state model.PlaybackState) {
		fyne.Do(func() {
			ui.playerScreen.ApplyState(state)
		})
	})

	ui.createMenu()
	ui.showLibrary()
	ui.startTicker()

	return ui
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with the current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.libraryScreen.RefreshTexts()
	ui.playerScreen.RefreshTexts()
}

// showLibrary navigates to the library screen, saving the position of a
// playing track first
func (ui *RootUI) showLibrary() {
	if ui.playerVisible {
		ui.playerScreen.Leave()
		ui.playerVisible = false
	}

	ui.libraryScreen.Refresh()
	ui.window.SetContent(ui.libraryScreen.Content())
}

// showPlayer loads the chosen track into the session and navigates to the
// player screen. A failed load keeps the library screen up.
func (ui *RootUI) showPlayer(track model.Track) {
	if err := ui.session.Load(track); err != nil {
		logrus.WithError(err).WithField("path", track.Path).Warn("loading track failed")
		dialog.ShowError(err, ui.window)
		return
	}

	ui.playerScreen.SetTrack(track)
	ui.playerVisible = true
	ui.window.SetContent(ui.playerScreen.Content())
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies changed settings: a new library directory means a
// fresh catalog, a new poll interval means a restarted ticker
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	libraryDir := ui.settings.GetLibraryDirectory()
	if libraryDir != ui.catalog.Dir() {
		if err := platform.CreateDirectoryIfNotExists(libraryDir); err != nil {
			logrus.WithError(err).WithField("dir", libraryDir).Warn("creating library directory failed")
		}
		ui.catalog = library.NewCatalog(libraryDir)
		ui.libraryScreen.SetCatalog(ui.catalog)
		if !ui.playerVisible {
			ui.libraryScreen.Refresh()
		}
	}

	ui.restartTicker()
}

// startTicker launches the position poll goroutine with the configured
// interval
func (ui *RootUI) startTicker() {
	interval := time.Duration(ui.settings.GetTickIntervalMs()) * time.Millisecond
	stop := make(chan struct{})
	ui.tickerStop = stop

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				ui.session.Tick()
			}
		}
	}()

	logrus.WithField("interval", interval).Debug("position poll started")
}

// restartTicker stops the poll goroutine and starts a new one, picking up
// an interval change
func (ui *RootUI) restartTicker() {
	if ui.tickerStop != nil {
		close(ui.tickerStop)
	}
	ui.startTicker()
}

// Shutdown stops the poll loop, saves the position of a loaded track and
// tears the session down. Call once when the application exits.
func (ui *RootUI) Shutdown() {
	if ui.tickerStop != nil {
		close(ui.tickerStop)
		ui.tickerStop = nil
	}

	if ui.playerVisible {
		ui.playerScreen.Leave()
		ui.playerVisible = false
	}

	ui.session.Close()
}
