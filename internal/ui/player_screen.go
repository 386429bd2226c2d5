package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/audreyapp/audrey/internal/config"
	"github.com/audreyapp/audrey/internal/model"
	"github.com/audreyapp/audrey/internal/playback"
	"github.com/audreyapp/audrey/internal/progress"
)

// PlayerScreen shows the transport controls for the loaded audiobook and
// renders the session snapshots delivered by the tick loop
type PlayerScreen struct {
	window       fyne.Window
	session      *playback.Session
	store        *progress.Store
	settings     *config.Settings
	localization *Localization

	track model.Track

	titleLabel   *widget.Label
	timeLabel    *widget.Label
	seekSlider   *widget.Slider
	playBtn      *widget.Button
	skipBackBtn  *widget.Button
	skipFwdBtn   *widget.Button
	restartBtn   *widget.Button
	backBtn      *widget.Button
	volumeLabel  *widget.Label
	volumeSlider *widget.Slider

	content *fyne.Container

	// applyingState guards the sliders against feeding programmatic value
	// updates back into the session as user seeks
	applyingState bool
	lastStatus    model.PlaybackStatus

	// Callbacks
	onBack func()
}

// NewPlayerScreen creates the player screen
func NewPlayerScreen(window fyne.Window, session *playback.Session, store *progress.Store, settings *config.Settings, localization *Localization, onBack func()) *PlayerScreen {
	ps := &PlayerScreen{
		window:       window,
		session:      session,
		store:        store,
		settings:     settings,
		localization: localization,
		lastStatus:   model.StatusIdle,
		onBack:       onBack,
	}

	ps.createUI()
	return ps
}

// Content returns the screen's root canvas object
func (ps *PlayerScreen) Content() fyne.CanvasObject {
	return ps.content
}

// createUI creates and arranges all screen components
func (ps *PlayerScreen) createUI() {
	ps.titleLabel = widget.NewLabel("")
	ps.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ps.titleLabel.Alignment = fyne.TextAlignCenter
	ps.titleLabel.Truncation = fyne.TextTruncateEllipsis

	ps.timeLabel = widget.NewLabel(model.FormatDuration(0) + " / " + model.FormatDuration(0))
	ps.timeLabel.Alignment = fyne.TextAlignCenter
	ps.timeLabel.TextStyle = fyne.TextStyle{Monospace: true}

	ps.seekSlider = widget.NewSlider(0, SeekSliderSteps)
	ps.seekSlider.Step = 1
	ps.seekSlider.OnChangeEnded = ps.onSeekEnded

	ps.playBtn = widget.NewButton(ps.localization.GetText(KeyListen), ps.onPlayPauseClick)
	ps.playBtn.Importance = widget.HighImportance

	ps.skipBackBtn = widget.NewButton(SkipBackLabel, func() {
		ps.session.SkipBack()
	})
	ps.skipFwdBtn = widget.NewButton(SkipForwardLabel, func() {
		ps.session.SkipForward()
	})

	ps.restartBtn = widget.NewButton(ps.localization.GetText(KeyRestart), ps.onRestartClick)

	ps.backBtn = widget.NewButton(ps.localization.GetText(KeyBackToLibrary), func() {
		if ps.onBack != nil {
			ps.onBack()
		}
	})

	ps.volumeLabel = widget.NewLabel(ps.localization.GetText(KeyVolume))
	ps.volumeSlider = widget.NewSlider(0, 1)
	ps.volumeSlider.Step = 0.05
	ps.volumeSlider.SetValue(ps.settings.GetVolume())
	ps.volumeSlider.OnChanged = ps.onVolumeChanged

	volumeRow := container.NewBorder(nil, nil, ps.volumeLabel, nil, ps.volumeSlider)

	transport := container.NewCenter(container.NewHBox(
		ps.skipBackBtn, ps.playBtn, ps.skipFwdBtn,
	))
	secondary := container.NewCenter(container.NewHBox(ps.restartBtn, ps.backBtn))

	ps.content = container.NewVBox(
		ps.titleLabel,
		ps.timeLabel,
		ps.seekSlider,
		transport,
		volumeRow,
		widget.NewSeparator(),
		secondary,
	)
}

// SetTrack points the screen at the freshly loaded track and, when the
// resume toggle is on, seeks to the position saved on a previous run. The
// session stays paused after the seek, matching how it was left.
func (ps *PlayerScreen) SetTrack(track model.Track) {
	ps.track = track
	ps.titleLabel.SetText(track.GetDisplayTitle())

	if ps.settings.GetResumePlayback() {
		pos, err := ps.store.Lookup(track.Path)
		if err != nil {
			logrus.WithError(err).WithField("path", track.Path).Warn("resume position lookup failed")
		} else if pos > 0 {
			ps.session.Seek(pos)
		}
	}
}

// ApplyState renders a session snapshot. Must be called on the Fyne event
// thread.
func (ps *PlayerScreen) ApplyState(state model.PlaybackState) {
	ps.applyingState = true
	defer func() { ps.applyingState = false }()

	ps.timeLabel.SetText(state.GetTimeString())
	ps.seekSlider.SetValue(state.Progress() * SeekSliderSteps)

	if state.Status != ps.lastStatus {
		ps.lastStatus = state.Status
		if state.Status == model.StatusPlaying {
			ps.playBtn.SetText(ps.localization.GetText(KeyPauseAction))
		} else {
			ps.playBtn.SetText(ps.localization.GetText(KeyListen))
		}
	}
}

// Leave saves the current position and halts playback. Called when the user
// navigates back to the library and on application shutdown.
func (ps *PlayerScreen) Leave() {
	state := ps.session.State()
	if !state.Status.HasTrack() {
		return
	}

	if err := ps.store.Save(ps.track.Path, state.PositionSec); err != nil {
		logrus.WithError(err).WithField("path", ps.track.Path).Warn("saving position failed")
	}
	ps.session.Stop()
}

// onPlayPauseClick toggles between playing and paused
func (ps *PlayerScreen) onPlayPauseClick() {
	if ps.session.State().Status == model.StatusPlaying {
		ps.session.Pause()
	} else {
		ps.session.Play()
	}
}

// onRestartClick rewinds to the beginning and clears the saved position
func (ps *PlayerScreen) onRestartClick() {
	ps.session.Stop()
	if err := ps.store.Reset(ps.track.Path); err != nil {
		logrus.WithError(err).WithField("path", ps.track.Path).Warn("resetting saved position failed")
	}
}

// onSeekEnded seeks to the released slider position
func (ps *PlayerScreen) onSeekEnded(value float64) {
	if ps.applyingState {
		return
	}
	duration := ps.session.State().DurationSec
	if duration <= 0 {
		return
	}
	ps.session.Seek(value / SeekSliderSteps * duration)
}

// onVolumeChanged applies and persists the new volume level
func (ps *PlayerScreen) onVolumeChanged(value float64) {
	if ps.applyingState {
		return
	}
	ps.session.SetVolume(value)
	ps.settings.SetVolume(value)
}

// RefreshTexts updates all screen texts with the current language
func (ps *PlayerScreen) RefreshTexts() {
	ps.restartBtn.SetText(ps.localization.GetText(KeyRestart))
	ps.backBtn.SetText(ps.localization.GetText(KeyBackToLibrary))
	ps.volumeLabel.SetText(ps.localization.GetText(KeyVolume))
	if ps.lastStatus == model.StatusPlaying {
		ps.playBtn.SetText(ps.localization.GetText(KeyPauseAction))
	} else {
		ps.playBtn.SetText(ps.localization.GetText(KeyListen))
	}
}
