package playback

// Package playback implements the playback session controller: the single
// authoritative owner of what is currently playing and where. It holds the
// one live engine handle, enforces the Idle/Loaded/Playing/Paused/Stopped
// state machine, and publishes state snapshots to observers after every
// command and every tick of the position poll.
