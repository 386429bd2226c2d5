package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It renders the library and player screens, wires user
// interactions to the playback session, and applies session snapshots to
// the widgets on the Fyne event thread. All UI strings are localized via
// Localization.
