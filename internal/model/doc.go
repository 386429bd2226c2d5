package model

// Package model defines domain data structures used across the app: track
// descriptors discovered by the library scan, the playback status enum, and
// the playback state snapshot published to the UI. Structures are designed
// for direct binding in the UI and explicit state transitions.
