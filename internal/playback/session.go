package playback

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/audreyapp/audrey/internal/engine"
	"github.com/audreyapp/audrey/internal/model"
)

// SkipSeconds is how far SkipForward/SkipBack jump
const SkipSeconds = 30

// Observer receives a state snapshot after every tick and every
// state-changing command. Observers are called synchronously on the
// goroutine that triggered the change; keep them cheap.
type Observer func(model.PlaybackState)

// Session is the playback session controller. All engine access goes
// through it; the UI never touches the engine handle directly.
//
// Commands arrive from the UI event thread while Tick runs on the poll
// goroutine, so all state is guarded by a mutex.
type Session struct {
	mu        sync.Mutex
	eng       engine.Engine
	handle    engine.Handle
	track     *model.Track
	status    model.PlaybackStatus
	position  float64
	duration  float64
	volume    float64
	resync    bool // next tick accepts any engine position (after seek/load/stop)
	observers []Observer
}

// NewSession creates an idle session on top of the given engine
func NewSession(eng engine.Engine) *Session {
	return &Session{
		eng:    eng,
		status: model.StatusIdle,
		volume: 1.0,
	}
}

// Subscribe registers an observer for state snapshots
func (s *Session) Subscribe(obs Observer) {
	s.mu.Lock()
	s.observers = append(s.observers, obs)
	s.mu.Unlock()
}

// State returns the current state snapshot
func (s *Session) State() model.PlaybackState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Load opens track in the engine and transitions to Loaded. Any previously
// loaded track is stopped and its handle released exactly once. On failure
// the session keeps its prior state untouched, so the new file is opened
// before the old handle is given up.
func (s *Session) Load(track model.Track) error {
	h, err := s.eng.Open(track.Path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	old := s.handle
	s.handle = h
	t := track
	s.track = &t
	s.status = model.StatusLoaded
	s.position = 0
	s.duration = track.DurationSec
	s.resync = true

	if err := h.SetVolume(s.volume); err != nil {
		logrus.WithError(err).Warn("apply volume to new track")
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if old != nil {
		if err := old.Release(); err != nil {
			logrus.WithError(err).Warn("release replaced engine handle")
		}
	}

	s.publish(snap)
	return nil
}

// Play starts or resumes playback. Valid from Loaded, Paused and Stopped;
// a no-op when already Playing or when nothing is loaded.
func (s *Session) Play() {
	s.mu.Lock()
	if s.status != model.StatusLoaded && s.status != model.StatusPaused && s.status != model.StatusStopped {
		s.mu.Unlock()
		return
	}
	if err := s.handle.Play(); err != nil {
		s.mu.Unlock()
		logrus.WithError(err).Warn("engine play command failed")
		return
	}
	s.status = model.StatusPlaying
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
}

// Pause suspends playback. Valid only from Playing; a no-op otherwise.
func (s *Session) Pause() {
	s.mu.Lock()
	if s.status != model.StatusPlaying {
		s.mu.Unlock()
		return
	}
	if err := s.handle.Pause(); err != nil {
		s.mu.Unlock()
		logrus.WithError(err).Warn("engine pause command failed")
		return
	}
	s.status = model.StatusPaused
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
}

// Stop halts playback and rewinds to the beginning. The track stays loaded,
// which distinguishes Stopped from Idle. A no-op when Idle.
func (s *Session) Stop() {
	s.mu.Lock()
	if s.status == model.StatusIdle {
		s.mu.Unlock()
		return
	}
	if err := s.handle.Stop(); err != nil {
		s.mu.Unlock()
		logrus.WithError(err).Warn("engine stop command failed")
		return
	}
	s.status = model.StatusStopped
	s.position = 0
	s.resync = true
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
}

// Seek moves to an absolute position in seconds, clamped to the track
// bounds. The playback status is unchanged. A no-op when Idle.
func (s *Session) Seek(seconds float64) {
	s.mu.Lock()
	if s.status == model.StatusIdle {
		s.mu.Unlock()
		return
	}
	target := s.clampPositionLocked(seconds)
	if err := s.handle.Seek(target); err != nil {
		s.mu.Unlock()
		logrus.WithError(err).Warn("engine seek command failed")
		return
	}
	s.position = target
	s.resync = true
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
}

// SkipForward jumps ahead by SkipSeconds, clamped to the track end
func (s *Session) SkipForward() {
	s.seekRelative(SkipSeconds)
}

// SkipBack jumps back by SkipSeconds, clamped to the beginning
func (s *Session) SkipBack() {
	s.seekRelative(-SkipSeconds)
}

func (s *Session) seekRelative(delta float64) {
	s.mu.Lock()
	pos := s.position
	s.mu.Unlock()
	s.Seek(pos + delta)
}

// SetVolume sets the playback volume, clamped to [0, 1]. It has no state
// dependency and never fails: with no track loaded the level is stored and
// applied on the next Load.
func (s *Session) SetVolume(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}

	s.mu.Lock()
	s.volume = level
	if s.handle != nil {
		if err := s.handle.SetVolume(level); err != nil {
			logrus.WithError(err).Warn("engine volume command failed")
		}
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
}

// Tick reconciles the published state with the engine: refreshes the
// duration once the engine knows it, pulls the current position while
// Playing, and detects the natural end of the track, which transitions to
// Stopped with the position reset. Call it on a fixed interval.
func (s *Session) Tick() {
	s.mu.Lock()

	if s.handle != nil && s.duration <= 0 {
		if d, err := s.handle.Duration(); err == nil && d > 0 {
			s.duration = d
		}
	}

	if s.status == model.StatusPlaying {
		ended, err := s.handle.Ended()
		if err != nil {
			logrus.WithError(err).Warn("engine end-of-track query failed")
		} else if ended {
			if err := s.handle.Stop(); err != nil {
				logrus.WithError(err).Warn("engine rewind after end of track failed")
			}
			s.status = model.StatusStopped
			s.position = 0
			s.resync = true
			snap := s.snapshotLocked()
			s.mu.Unlock()
			s.publish(snap)
			return
		}

		pos, err := s.handle.Position()
		switch {
		case err != nil:
			logrus.WithError(err).Debug("engine position query failed")
		case s.resync:
			s.position = s.clampPositionLocked(pos)
			s.resync = false
		case pos > s.position:
			// Readings never move the published position backwards
			// outside an explicit seek or stop
			s.position = s.clampPositionLocked(pos)
		}
	}

	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
}

// Position returns the current playback position in seconds
func (s *Session) Position() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

// Close releases the engine handle and returns the session to Idle. Used on
// application shutdown.
func (s *Session) Close() {
	s.mu.Lock()
	h := s.handle
	s.handle = nil
	s.track = nil
	s.status = model.StatusIdle
	s.position = 0
	s.duration = 0
	s.mu.Unlock()

	if h != nil {
		if err := h.Release(); err != nil {
			logrus.WithError(err).Warn("release engine handle on close")
		}
	}
}

// clampPositionLocked bounds a position to [0, duration]. With an unknown
// duration only the lower bound applies.
func (s *Session) clampPositionLocked(seconds float64) float64 {
	if seconds < 0 {
		return 0
	}
	if s.duration > 0 && seconds > s.duration {
		return s.duration
	}
	return seconds
}

func (s *Session) snapshotLocked() model.PlaybackState {
	return model.PlaybackState{
		Status:      s.status,
		Track:       s.track,
		PositionSec: s.position,
		DurationSec: s.duration,
		Volume:      s.volume,
	}
}

// publish delivers one snapshot to every observer, outside the session
// lock so observers may call back into the session
func (s *Session) publish(snap model.PlaybackState) {
	s.mu.Lock()
	observers := s.observers
	s.mu.Unlock()

	for _, obs := range observers {
		obs(snap)
	}
}
