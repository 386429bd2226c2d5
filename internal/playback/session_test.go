package playback

import (
	"errors"
	"testing"

	"github.com/audreyapp/audrey/internal/engine"
	"github.com/audreyapp/audrey/internal/model"
)

// fakeEngine simulates the media engine without touching libmpv. Handles
// record every command so tests can assert on release counts and positions.
type fakeEngine struct {
	handles  []*fakeHandle
	failPath string
}

func (e *fakeEngine) Open(path string) (engine.Handle, error) {
	if path == e.failPath {
		return nil, &engine.OpenError{Path: path, Err: errors.New("no such file")}
	}
	h := &fakeHandle{path: path}
	e.handles = append(e.handles, h)
	return h, nil
}

func (e *fakeEngine) Close() {}

type fakeHandle struct {
	path     string
	pos      float64
	duration float64
	playing  bool
	ended    bool
	released int
	volume   float64
}

func (h *fakeHandle) Play() error  { h.playing = true; return nil }
func (h *fakeHandle) Pause() error { h.playing = false; return nil }

func (h *fakeHandle) Stop() error {
	h.playing = false
	h.ended = false
	h.pos = 0
	return nil
}

func (h *fakeHandle) Seek(seconds float64) error {
	h.pos = seconds
	return nil
}

func (h *fakeHandle) Position() (float64, error) { return h.pos, nil }
func (h *fakeHandle) Duration() (float64, error) { return h.duration, nil }
func (h *fakeHandle) Ended() (bool, error)       { return h.ended, nil }

func (h *fakeHandle) SetVolume(level float64) error {
	h.volume = level
	return nil
}

func (h *fakeHandle) Release() error {
	h.released++
	if h.released > 1 {
		return errors.New("handle released twice")
	}
	return nil
}

// advance simulates the engine playing forward by the given seconds
func (h *fakeHandle) advance(seconds float64) {
	if h.playing {
		h.pos += seconds
	}
}

func newTestSession() (*Session, *fakeEngine) {
	eng := &fakeEngine{failPath: "/missing.mp3"}
	return NewSession(eng), eng
}

func loadTrack(t *testing.T, s *Session, path string, duration float64) {
	t.Helper()
	err := s.Load(model.Track{ID: path, Path: path, DurationSec: duration})
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
}

func TestSession_StateMachineTransitions(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(s *Session)
		op       func(s *Session)
		expected model.PlaybackStatus
	}{
		{
			name:     "idle load to loaded",
			setup:    func(s *Session) {},
			op:       func(s *Session) { loadTrack(t, s, "/a.mp3", 300) },
			expected: model.StatusLoaded,
		},
		{
			name:     "loaded play to playing",
			setup:    func(s *Session) { loadTrack(t, s, "/a.mp3", 300) },
			op:       func(s *Session) { s.Play() },
			expected: model.StatusPlaying,
		},
		{
			name: "playing pause to paused",
			setup: func(s *Session) {
				loadTrack(t, s, "/a.mp3", 300)
				s.Play()
			},
			op:       func(s *Session) { s.Pause() },
			expected: model.StatusPaused,
		},
		{
			name: "paused play resumes",
			setup: func(s *Session) {
				loadTrack(t, s, "/a.mp3", 300)
				s.Play()
				s.Pause()
			},
			op:       func(s *Session) { s.Play() },
			expected: model.StatusPlaying,
		},
		{
			name: "playing stop to stopped",
			setup: func(s *Session) {
				loadTrack(t, s, "/a.mp3", 300)
				s.Play()
			},
			op:       func(s *Session) { s.Stop() },
			expected: model.StatusStopped,
		},
		{
			name: "stopped play restarts",
			setup: func(s *Session) {
				loadTrack(t, s, "/a.mp3", 300)
				s.Play()
				s.Stop()
			},
			op:       func(s *Session) { s.Play() },
			expected: model.StatusPlaying,
		},
		{
			name: "stopped load new track to loaded",
			setup: func(s *Session) {
				loadTrack(t, s, "/a.mp3", 300)
				s.Play()
				s.Stop()
			},
			op:       func(s *Session) { loadTrack(t, s, "/b.mp3", 120) },
			expected: model.StatusLoaded,
		},
		// Invalid transitions are no-ops
		{
			name:     "idle play is noop",
			setup:    func(s *Session) {},
			op:       func(s *Session) { s.Play() },
			expected: model.StatusIdle,
		},
		{
			name:     "idle pause is noop",
			setup:    func(s *Session) {},
			op:       func(s *Session) { s.Pause() },
			expected: model.StatusIdle,
		},
		{
			name:     "idle stop is noop",
			setup:    func(s *Session) {},
			op:       func(s *Session) { s.Stop() },
			expected: model.StatusIdle,
		},
		{
			name:     "loaded pause is noop",
			setup:    func(s *Session) { loadTrack(t, s, "/a.mp3", 300) },
			op:       func(s *Session) { s.Pause() },
			expected: model.StatusLoaded,
		},
		{
			name: "playing play is noop",
			setup: func(s *Session) {
				loadTrack(t, s, "/a.mp3", 300)
				s.Play()
			},
			op:       func(s *Session) { s.Play() },
			expected: model.StatusPlaying,
		},
		{
			name: "stopped pause is noop",
			setup: func(s *Session) {
				loadTrack(t, s, "/a.mp3", 300)
				s.Play()
				s.Stop()
			},
			op:       func(s *Session) { s.Pause() },
			expected: model.StatusStopped,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, _ := newTestSession()
			test.setup(s)
			test.op(s)
			if got := s.State().Status; got != test.expected {
				t.Errorf("status = %s, expected %s", got, test.expected)
			}
		})
	}
}

func TestSession_IdleHasNoTrack(t *testing.T) {
	s, _ := newTestSession()
	state := s.State()
	if state.Status != model.StatusIdle {
		t.Fatalf("fresh session status = %s, expected Idle", state.Status)
	}
	if state.Track != nil {
		t.Error("Idle state should carry no track")
	}
}

func TestSession_SeekClamping(t *testing.T) {
	tests := []struct {
		name     string
		target   float64
		expected float64
	}{
		{"within bounds", 150, 150},
		{"below zero", -20, 0},
		{"beyond duration", 500, 300},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, _ := newTestSession()
			loadTrack(t, s, "/a.mp3", 300)
			s.Seek(test.target)
			if got := s.State().PositionSec; got != test.expected {
				t.Errorf("Seek(%v): position = %v, expected %v", test.target, got, test.expected)
			}
		})
	}
}

func TestSession_SeekDoesNotChangeStatus(t *testing.T) {
	s, _ := newTestSession()
	loadTrack(t, s, "/a.mp3", 300)
	s.Play()
	s.Seek(100)
	if got := s.State().Status; got != model.StatusPlaying {
		t.Errorf("status after seek = %s, expected Playing", got)
	}
}

func TestSession_SeekWhileIdleIsNoop(t *testing.T) {
	s, _ := newTestSession()
	s.Seek(100)
	state := s.State()
	if state.Status != model.StatusIdle || state.PositionSec != 0 {
		t.Errorf("seek while idle changed state: %+v", state)
	}
}

func TestSession_VolumeClamping(t *testing.T) {
	tests := []struct {
		level    float64
		expected float64
	}{
		{0.5, 0.5},
		{-0.3, 0},
		{1.8, 1},
		{0, 0},
		{1, 1},
	}

	for _, test := range tests {
		s, _ := newTestSession()
		s.SetVolume(test.level)
		if got := s.State().Volume; got != test.expected {
			t.Errorf("SetVolume(%v): volume = %v, expected %v", test.level, got, test.expected)
		}
	}
}

func TestSession_VolumeAppliedOnLoad(t *testing.T) {
	s, eng := newTestSession()
	s.SetVolume(0.25)
	loadTrack(t, s, "/a.mp3", 300)
	if got := eng.handles[0].volume; got != 0.25 {
		t.Errorf("handle volume = %v, expected 0.25", got)
	}
}

func TestSession_StopResetsPosition(t *testing.T) {
	s, eng := newTestSession()
	loadTrack(t, s, "/a.mp3", 300)
	s.Play()
	eng.handles[0].advance(42)
	s.Tick()
	if got := s.State().PositionSec; got != 42 {
		t.Fatalf("position before stop = %v, expected 42", got)
	}

	s.Stop()
	state := s.State()
	if state.Status != model.StatusStopped {
		t.Errorf("status = %s, expected Stopped", state.Status)
	}
	if state.PositionSec != 0 {
		t.Errorf("position = %v, expected 0", state.PositionSec)
	}
}

func TestSession_TickNeverDecreasesPositionWhilePlaying(t *testing.T) {
	s, eng := newTestSession()
	loadTrack(t, s, "/a.mp3", 300)
	s.Play()

	h := eng.handles[0]
	last := 0.0
	for i := 0; i < 10; i++ {
		h.advance(0.5)
		s.Tick()
		pos := s.State().PositionSec
		if pos < last {
			t.Fatalf("tick %d: position decreased from %v to %v", i, last, pos)
		}
		last = pos
	}

	// A transient engine glitch reporting an earlier position is ignored
	h.pos = 1
	s.Tick()
	if pos := s.State().PositionSec; pos < last {
		t.Errorf("position regressed to %v after engine glitch, expected >= %v", pos, last)
	}
}

func TestSession_TickDetectsEndOfTrack(t *testing.T) {
	s, eng := newTestSession()
	loadTrack(t, s, "/a.mp3", 300)
	s.Play()

	h := eng.handles[0]
	h.pos = 300
	h.ended = true
	s.Tick()

	state := s.State()
	if state.Status != model.StatusStopped {
		t.Errorf("status = %s, expected Stopped after natural end", state.Status)
	}
	if state.PositionSec != 0 {
		t.Errorf("position = %v, expected 0 after natural end", state.PositionSec)
	}
	if state.Track == nil {
		t.Error("track should stay loaded after natural end")
	}
}

func TestSession_TickRefreshesUnknownDuration(t *testing.T) {
	s, eng := newTestSession()
	loadTrack(t, s, "/a.mp3", 0)

	eng.handles[0].duration = 180
	s.Tick()
	if got := s.State().DurationSec; got != 180 {
		t.Errorf("duration = %v, expected 180 from engine", got)
	}
}

func TestSession_PlaySeekStopScenario(t *testing.T) {
	s, eng := newTestSession()
	loadTrack(t, s, "/a.mp3", 300)
	s.Play()

	h := eng.handles[0]
	h.advance(10)
	s.Tick()
	if got := s.State().PositionSec; got != 10 {
		t.Fatalf("tick reported %v, expected 10", got)
	}

	s.Seek(250)
	h.advance(1)
	s.Tick()
	if got := s.State().PositionSec; got < 250 {
		t.Fatalf("tick after seek reported %v, expected >= 250", got)
	}

	s.Stop()
	state := s.State()
	if state.Status != model.StatusStopped || state.PositionSec != 0 {
		t.Errorf("after stop: status=%s position=%v, expected Stopped/0", state.Status, state.PositionSec)
	}
}

func TestSession_LoadReplacementReleasesOldHandleOnce(t *testing.T) {
	s, eng := newTestSession()
	loadTrack(t, s, "/b.mp3", 200)
	s.Play()

	loadTrack(t, s, "/a.mp3", 300)

	if got := eng.handles[0].released; got != 1 {
		t.Errorf("old handle released %d times, expected exactly 1", got)
	}
	if got := eng.handles[1].released; got != 0 {
		t.Errorf("new handle released %d times, expected 0", got)
	}
	if got := s.State().Status; got != model.StatusLoaded {
		t.Errorf("status = %s, expected Loaded", got)
	}
}

func TestSession_LoadFailureKeepsState(t *testing.T) {
	s, eng := newTestSession()
	loadTrack(t, s, "/b.mp3", 200)
	s.Play()
	eng.handles[0].advance(15)
	s.Tick()

	err := s.Load(model.Track{ID: "missing", Path: "/missing.mp3"})
	if err == nil {
		t.Fatal("Load of missing file should fail")
	}
	var openErr *engine.OpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("error type = %T, expected *engine.OpenError", err)
	}

	state := s.State()
	if state.Status != model.StatusPlaying {
		t.Errorf("status = %s, expected still Playing on previous track", state.Status)
	}
	if state.Track == nil || state.Track.Path != "/b.mp3" {
		t.Errorf("track = %+v, expected previous track", state.Track)
	}
	if got := eng.handles[0].released; got != 0 {
		t.Errorf("previous handle released %d times on failed load, expected 0", got)
	}
}

func TestSession_SkipClamping(t *testing.T) {
	s, _ := newTestSession()
	loadTrack(t, s, "/a.mp3", 300)

	s.SkipBack()
	if got := s.State().PositionSec; got != 0 {
		t.Errorf("skip back at start: position = %v, expected 0", got)
	}

	s.Seek(290)
	s.SkipForward()
	if got := s.State().PositionSec; got != 300 {
		t.Errorf("skip forward near end: position = %v, expected 300", got)
	}

	s.Seek(100)
	s.SkipForward()
	if got := s.State().PositionSec; got != 130 {
		t.Errorf("skip forward: position = %v, expected 130", got)
	}
	s.SkipBack()
	if got := s.State().PositionSec; got != 100 {
		t.Errorf("skip back: position = %v, expected 100", got)
	}
}

func TestSession_ObserverReceivesSnapshots(t *testing.T) {
	s, eng := newTestSession()

	var snapshots []model.PlaybackState
	s.Subscribe(func(state model.PlaybackState) {
		snapshots = append(snapshots, state)
	})

	loadTrack(t, s, "/a.mp3", 300)
	s.Play()
	eng.handles[0].advance(1)
	s.Tick()

	if len(snapshots) != 3 {
		t.Fatalf("observer called %d times, expected 3 (load, play, tick)", len(snapshots))
	}
	if snapshots[0].Status != model.StatusLoaded {
		t.Errorf("first snapshot status = %s, expected Loaded", snapshots[0].Status)
	}
	if snapshots[1].Status != model.StatusPlaying {
		t.Errorf("second snapshot status = %s, expected Playing", snapshots[1].Status)
	}
	if snapshots[2].PositionSec != 1 {
		t.Errorf("tick snapshot position = %v, expected 1", snapshots[2].PositionSec)
	}
}

func TestSession_CloseReleasesHandle(t *testing.T) {
	s, eng := newTestSession()
	loadTrack(t, s, "/a.mp3", 300)
	s.Play()

	s.Close()

	if got := eng.handles[0].released; got != 1 {
		t.Errorf("handle released %d times on close, expected 1", got)
	}
	state := s.State()
	if state.Status != model.StatusIdle || state.Track != nil {
		t.Errorf("after close: %+v, expected Idle with no track", state)
	}
}
