package engine

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/wildeyedskies/go-mpv/mpv"
)

// mpv volume scale; the Handle contract uses [0, 1]
const mpvMaxVolume = 100

// MPVEngine drives a single embedded libmpv instance. mpv only plays one
// file at a time, so a handle is the right to control the currently loaded
// file; loading another file invalidates the previous handle.
type MPVEngine struct {
	mu       sync.Mutex
	instance *mpv.Mpv
	current  *mpvHandle
	closed   bool
}

// NewMPVEngine creates and initializes the libmpv instance, configured for
// audio-only playback. keep-open makes mpv pause at end of file instead of
// unloading it, which keeps position queries valid after a natural end.
func NewMPVEngine() (*MPVEngine, error) {
	instance := mpv.Create()

	instance.SetOptionString("audio-display", "no")
	instance.SetOptionString("video", "no")
	instance.SetOptionString("idle", "yes")
	instance.SetOptionString("keep-open", "always")

	if err := instance.Initialize(); err != nil {
		instance.TerminateDestroy()
		return nil, fmt.Errorf("initialize mpv: %w", err)
	}

	return &MPVEngine{instance: instance}, nil
}

// Open loads the file at path, paused at the beginning
func (e *MPVEngine) Open(path string) (Handle, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, &OpenError{Path: path, Err: errors.New("engine is closed")}
	}

	// Load paused so the session decides when playback starts
	if err := e.instance.Command([]string{"set", "pause", "yes"}); err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	if err := e.instance.Command([]string{"loadfile", path, "replace"}); err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	// The old handle now points at an unloaded file; mark it stale so its
	// commands become errors rather than acting on the new stream
	if e.current != nil {
		e.current.stale = true
	}

	h := &mpvHandle{engine: e, path: path}
	e.current = h
	return h, nil
}

// Close shuts down libmpv. Outstanding handles become inert.
func (e *MPVEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	if e.current != nil {
		e.current.stale = true
		e.current = nil
	}
	e.instance.Command([]string{"quit"})
	e.instance.TerminateDestroy()
}

// mpvHandle is the control surface for the file currently loaded in mpv
type mpvHandle struct {
	engine   *MPVEngine
	path     string
	stale    bool
	released bool
}

var errHandleInvalid = errors.New("engine handle is no longer valid")

// checkLocked verifies the handle still controls the loaded file. Callers
// must hold engine.mu.
func (h *mpvHandle) checkLocked() error {
	if h.released || h.stale || h.engine.closed {
		return errHandleInvalid
	}
	return nil
}

func (h *mpvHandle) command(args ...string) error {
	h.engine.mu.Lock()
	defer h.engine.mu.Unlock()

	if err := h.checkLocked(); err != nil {
		return err
	}
	return h.engine.instance.Command(args)
}

func (h *mpvHandle) Play() error {
	return h.command("set", "pause", "no")
}

func (h *mpvHandle) Pause() error {
	return h.command("set", "pause", "yes")
}

// Stop pauses and rewinds. mpv's own "stop" command unloads the file, which
// would forbid restarting; pause+seek keeps the stream open as the contract
// requires.
func (h *mpvHandle) Stop() error {
	if err := h.command("set", "pause", "yes"); err != nil {
		return err
	}
	return h.command("seek", "0", "absolute")
}

func (h *mpvHandle) Seek(seconds float64) error {
	return h.command("seek", strconv.FormatFloat(seconds, 'f', 3, 64), "absolute")
}

func (h *mpvHandle) Position() (float64, error) {
	return h.getDouble("time-pos")
}

func (h *mpvHandle) Duration() (float64, error) {
	d, err := h.getDouble("duration")
	if err != nil {
		// mpv has no duration until the demuxer reports one; treat that
		// as unknown rather than a failure
		logrus.WithField("path", h.path).Debug("duration not available yet")
		return 0, nil
	}
	return d, nil
}

func (h *mpvHandle) Ended() (bool, error) {
	h.engine.mu.Lock()
	defer h.engine.mu.Unlock()

	if err := h.checkLocked(); err != nil {
		return false, err
	}
	v, err := h.engine.instance.GetProperty("eof-reached", mpv.FORMAT_FLAG)
	if err != nil {
		return false, err
	}
	ended, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("unexpected eof-reached value %v", v)
	}
	return ended, nil
}

func (h *mpvHandle) SetVolume(level float64) error {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	return h.command("set", "volume", strconv.FormatFloat(level*mpvMaxVolume, 'f', 1, 64))
}

// Release stops playback and invalidates the handle. The underlying mpv
// instance stays alive for the next Open.
func (h *mpvHandle) Release() error {
	h.engine.mu.Lock()
	defer h.engine.mu.Unlock()

	if h.released {
		return errHandleInvalid
	}
	h.released = true

	if h.stale || h.engine.closed {
		return nil
	}
	if h.engine.current == h {
		h.engine.current = nil
	}
	return h.engine.instance.Command([]string{"stop"})
}

func (h *mpvHandle) getDouble(name string) (float64, error) {
	h.engine.mu.Lock()
	defer h.engine.mu.Unlock()

	if err := h.checkLocked(); err != nil {
		return 0, err
	}
	v, err := h.engine.instance.GetProperty(name, mpv.FORMAT_DOUBLE)
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("unexpected %s value %v", name, v)
	}
	return f, nil
}
