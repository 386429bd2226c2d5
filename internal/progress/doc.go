package progress

// Package progress persists resume positions per audiobook in a small
// SQLite database, so a book picked up again after an application restart
// continues where the listener left off.
