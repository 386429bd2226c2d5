package engine

import "fmt"

// Engine opens media files and hands out playback handles. One handle is
// live at a time; opening a new file while another handle exists is allowed,
// but the caller is responsible for releasing the old handle exactly once.
type Engine interface {
	// Open loads the file at path and returns a handle for it. It fails
	// with *OpenError when the file is missing or cannot be loaded.
	Open(path string) (Handle, error)

	// Close shuts the engine down and releases all native resources.
	Close()
}

// Handle represents one open media stream inside the engine.
type Handle interface {
	// Play starts or resumes playback
	Play() error

	// Pause suspends playback, keeping the position
	Pause() error

	// Stop halts playback and rewinds to the beginning; the stream stays
	// open so Play can restart it
	Stop() error

	// Seek moves the playback position to the given absolute offset in
	// seconds
	Seek(seconds float64) error

	// Position returns the current playback position in seconds
	Position() (float64, error)

	// Duration returns the total stream duration in seconds, or 0 while
	// the engine has not determined it yet
	Duration() (float64, error)

	// Ended reports whether the stream reached its natural end
	Ended() (bool, error)

	// SetVolume sets the playback volume, level in [0, 1]
	SetVolume(level float64) error

	// Release frees the native resources behind this handle. Must be
	// called exactly once; any use after Release fails.
	Release() error
}

// OpenError is returned when a media file cannot be opened: missing,
// unreadable, or an unsupported codec. It is the only engine error callers
// are expected to handle explicitly.
type OpenError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *OpenError) Error() string {
	return fmt.Sprintf("open media %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause
func (e *OpenError) Unwrap() error {
	return e.Err
}
