package model

// PlaybackStatus represents the status of the playback session
type PlaybackStatus string

const (
	// StatusIdle means no track has been loaded yet
	StatusIdle PlaybackStatus = "Idle"

	// StatusLoaded means a track is open in the engine but has not started
	StatusLoaded PlaybackStatus = "Loaded"

	// StatusPlaying means audio is currently playing
	StatusPlaying PlaybackStatus = "Playing"

	// StatusPaused means playback is paused and can be resumed
	StatusPaused PlaybackStatus = "Paused"

	// StatusStopped means playback was stopped; the track stays loaded and
	// the position is reset to the beginning
	StatusStopped PlaybackStatus = "Stopped"
)

// String returns the string representation of PlaybackStatus
func (ps PlaybackStatus) String() string {
	return string(ps)
}

// HasTrack returns true if a track is loaded in this status
func (ps PlaybackStatus) HasTrack() bool {
	return ps != StatusIdle
}

// IsActive returns true if the session is playing or paused mid-track
func (ps PlaybackStatus) IsActive() bool {
	return ps == StatusPlaying || ps == StatusPaused
}
