package model

// PlaybackState is a read-only snapshot of the playback session published
// to observers after every tick and every state-changing command.
//
// Invariants: Track is nil exactly when Status is Idle, and PositionSec
// stays within [0, DurationSec] whenever a track is loaded.
type PlaybackState struct {
	Status      PlaybackStatus
	Track       *Track // nil when Idle
	PositionSec float64
	DurationSec float64
	Volume      float64 // 0.0 to 1.0
}

// Progress returns playback progress in [0, 1], or 0 when the duration is
// unknown
func (s PlaybackState) Progress() float64 {
	if s.DurationSec <= 0 {
		return 0
	}
	p := s.PositionSec / s.DurationSec
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// GetTimeString returns "position / duration" for display, e.g.
// "12:04 / 05:30:00"
func (s PlaybackState) GetTimeString() string {
	return FormatDuration(s.PositionSec) + " / " + FormatDuration(s.DurationSec)
}
