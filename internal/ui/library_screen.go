package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/audreyapp/audrey/internal/library"
	"github.com/audreyapp/audrey/internal/model"
	"github.com/audreyapp/audrey/internal/platform"
)

// LibraryScreen shows the audiobook collection and lets the user pick a
// track to listen to
type LibraryScreen struct {
	window       fyne.Window
	catalog      *library.Catalog
	localization *Localization

	tracks        []model.Track
	selectedIndex int

	titleLabel  *widget.Label
	statusLabel *widget.Label
	trackList   *widget.List
	listenBtn   *widget.Button
	addBtn      *widget.Button
	refreshBtn  *widget.Button
	settingsBtn *widget.Button

	content *fyne.Container

	// Callbacks
	onListen   func(track model.Track)
	onSettings func()
}

// NewLibraryScreen creates the library screen
func NewLibraryScreen(window fyne.Window, catalog *library.Catalog, localization *Localization, onListen func(model.Track), onSettings func()) *LibraryScreen {
	ls := &LibraryScreen{
		window:        window,
		catalog:       catalog,
		localization:  localization,
		selectedIndex: -1,
		onListen:      onListen,
		onSettings:    onSettings,
	}

	ls.createUI()
	return ls
}

// Content returns the screen's root canvas object
func (ls *LibraryScreen) Content() fyne.CanvasObject {
	return ls.content
}

// SetCatalog points the screen at a different library directory. The list
// is not rescanned until the next Refresh.
func (ls *LibraryScreen) SetCatalog(catalog *library.Catalog) {
	ls.catalog = catalog
}

// createUI creates and arranges all screen components
func (ls *LibraryScreen) createUI() {
	ls.titleLabel = widget.NewLabel(ls.localization.GetText(KeyLibraryTitle))
	ls.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ls.titleLabel.Alignment = fyne.TextAlignCenter

	ls.statusLabel = widget.NewLabel("")
	ls.statusLabel.Alignment = fyne.TextAlignCenter
	ls.statusLabel.Hide()

	ls.trackList = widget.NewList(
		func() int {
			return len(ls.tracks)
		},
		func() fyne.CanvasObject { return ls.createTrackItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ls.updateTrackItem(id, obj) },
	)
	ls.trackList.OnSelected = ls.onTrackSelect
	ls.trackList.OnUnselected = func(widget.ListItemID) {
		ls.selectedIndex = -1
		ls.listenBtn.Disable()
	}

	ls.listenBtn = widget.NewButton(ls.localization.GetText(KeyListen), ls.onListenClick)
	ls.listenBtn.Importance = widget.HighImportance
	ls.listenBtn.Disable()

	ls.addBtn = widget.NewButton(ls.localization.GetText(KeyAddAudiobook), ls.onAddClick)
	ls.refreshBtn = widget.NewButton(ls.localization.GetText(KeyRefresh), func() { ls.Refresh() })
	ls.settingsBtn = widget.NewButton(IconSettings, func() {
		if ls.onSettings != nil {
			ls.onSettings()
		}
	})
	ls.settingsBtn.Importance = widget.LowImportance

	toolbar := container.NewHBox(ls.listenBtn, ls.addBtn, ls.refreshBtn, ls.settingsBtn)

	top := container.NewVBox(ls.titleLabel, container.NewCenter(toolbar), ls.statusLabel)
	ls.content = container.NewBorder(top, nil, nil, nil, ls.trackList)
}

// createTrackItem creates a new track row widget for the list template
func (ls *LibraryScreen) createTrackItem() fyne.CanvasObject {
	row := NewTrackRow(&model.Track{}, ls.localization)
	row.SetCallbacks(ls.onRevealTrack)
	return row
}

// updateTrackItem updates a track row with current data
func (ls *LibraryScreen) updateTrackItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ls.tracks) {
		return
	}

	if row, ok := item.(*TrackRow); ok {
		row.SetCallbacks(ls.onRevealTrack)
		row.UpdateTrack(&ls.tracks[id])
	}
}

// Refresh rescans the library directory and redraws the list. A failed scan
// leaves the list empty with a warning shown; it is not fatal.
func (ls *LibraryScreen) Refresh() {
	tracks, err := ls.catalog.Scan()
	if err != nil {
		logrus.WithError(err).WithField("dir", ls.catalog.Dir()).Warn("library scan failed")
		ls.tracks = nil
		ls.statusLabel.SetText(ls.localization.GetText(KeyScanFailed))
		ls.statusLabel.Show()
	} else {
		ls.tracks = tracks
		if len(tracks) == 0 {
			ls.statusLabel.SetText(ls.localization.GetText(KeyNoAudiobooks))
			ls.statusLabel.Show()
		} else {
			ls.statusLabel.Hide()
		}
	}

	ls.selectedIndex = -1
	ls.listenBtn.Disable()
	ls.trackList.UnselectAll()
	ls.trackList.Refresh()
}

// onTrackSelect handles track selection from the list
func (ls *LibraryScreen) onTrackSelect(id widget.ListItemID) {
	if id >= len(ls.tracks) {
		return
	}
	ls.selectedIndex = id
	ls.listenBtn.Enable()
}

// onListenClick opens the player for the selected track
func (ls *LibraryScreen) onListenClick() {
	if ls.selectedIndex < 0 || ls.selectedIndex >= len(ls.tracks) {
		return
	}
	if ls.onListen != nil {
		ls.onListen(ls.tracks[ls.selectedIndex])
	}
}

// onAddClick imports an audio file into the library directory
func (ls *LibraryScreen) onAddClick() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		src := reader.URI().Path()
		reader.Close()

		if _, err := ls.catalog.Import(src); err != nil {
			logrus.WithError(err).WithField("path", src).Warn("audiobook import failed")
			dialog.ShowError(err, ls.window)
			return
		}

		ls.Refresh()
		dialog.ShowInformation(
			ls.localization.GetText(KeyAddAudiobook),
			ls.localization.GetText(KeyAudiobookAdded),
			ls.window,
		)
	}, ls.window)
}

// onRevealTrack shows a track in the system file manager
func (ls *LibraryScreen) onRevealTrack(filePath string) {
	if err := platform.RevealFileInManager(filePath); err != nil {
		logrus.WithError(err).WithField("path", filePath).Warn("reveal in file manager failed")
		dialog.ShowError(err, ls.window)
	}
}

// RefreshTexts updates all screen texts with the current language
func (ls *LibraryScreen) RefreshTexts() {
	ls.titleLabel.SetText(ls.localization.GetText(KeyLibraryTitle))
	ls.listenBtn.SetText(ls.localization.GetText(KeyListen))
	ls.addBtn.SetText(ls.localization.GetText(KeyAddAudiobook))
	ls.refreshBtn.SetText(ls.localization.GetText(KeyRefresh))
	ls.trackList.Refresh()
}
