package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/audreyapp/audrey/internal/model"
)

// TrackRow represents a compact audiobook row widget in the library list
type TrackRow struct {
	widget.BaseWidget

	track        *model.Track
	localization *Localization

	// UI components
	titleLabel  *widget.Label
	detailLabel *widget.Label
	revealBtn   *widget.Button

	// Callbacks
	onReveal func(filePath string)
}

// NewTrackRow creates a new track row widget
func NewTrackRow(track *model.Track, localization *Localization) *TrackRow {
	if track == nil {
		track = &model.Track{}
	}

	tr := &TrackRow{
		track:        track,
		localization: localization,
	}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	tr.updateFromTrack()
	return tr
}

// SetCallbacks sets the action callbacks
func (tr *TrackRow) SetCallbacks(onReveal func(filePath string)) {
	tr.onReveal = onReveal
}

// UpdateTrack updates the row with new track data
func (tr *TrackRow) UpdateTrack(track *model.Track) {
	if track == nil {
		return
	}

	tr.track = track
	tr.updateFromTrack()
	tr.Refresh()
}

// createUI creates the UI components
func (tr *TrackRow) createUI() {
	tr.titleLabel = widget.NewLabel("")
	tr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.titleLabel.Truncation = fyne.TextTruncateEllipsis
	tr.titleLabel.Alignment = fyne.TextAlignLeading

	tr.detailLabel = widget.NewLabel("")
	tr.detailLabel.Truncation = fyne.TextTruncateEllipsis
	tr.detailLabel.Alignment = fyne.TextAlignLeading

	tr.revealBtn = widget.NewButton(IconFolder, func() {
		if tr.onReveal != nil && tr.track.Path != "" {
			tr.onReveal(tr.track.Path)
		}
	})
	tr.revealBtn.Importance = widget.LowImportance
}

// updateFromTrack refreshes labels from the current track data
func (tr *TrackRow) updateFromTrack() {
	tr.titleLabel.SetText(tr.track.GetDisplayTitle())

	author := tr.track.Author
	if author == "" {
		author = tr.localization.GetText(KeyUnknownAuthor)
	}
	tr.detailLabel.SetText(author + MiddleDotSeparator + tr.track.GetDurationString() +
		MiddleDotSeparator + tr.track.GetSizeString())
}

// CreateRenderer creates the widget renderer
func (tr *TrackRow) CreateRenderer() fyne.WidgetRenderer {
	text := container.NewVBox(tr.titleLabel, tr.detailLabel)
	content := container.NewBorder(nil, nil, nil, tr.revealBtn, text)
	return widget.NewSimpleRenderer(content)
}

// MinSize returns the minimum size for the row
func (tr *TrackRow) MinSize() fyne.Size {
	min := tr.BaseWidget.MinSize()
	if min.Width < RowMinWidth {
		min.Width = RowMinWidth
	}
	if min.Height < RowMinHeight {
		min.Height = RowMinHeight
	}
	return min
}
