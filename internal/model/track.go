package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Track represents a single audiobook file discovered by the library scan.
// It is immutable once created; a rescan produces fresh descriptors.
type Track struct {
	ID          string
	Path        string
	Title       string // tag title, or file stem when the file carries no tags
	Author      string // tag artist, empty when unknown
	DurationSec float64
	SizeBytes   int64
	Ext         string // lowercase extension including the dot, e.g. ".mp3"
	ModTime     time.Time
}

// GetDisplayTitle returns the tag title when present, otherwise the file
// name without its extension
func (t *Track) GetDisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	base := filepath.Base(t.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// GetDurationString returns the duration formatted as mm:ss or hh:mm:ss,
// or "—" when the duration is not known yet
func (t *Track) GetDurationString() string {
	if t.DurationSec <= 0 {
		return DashPlaceholder
	}
	return FormatDuration(t.DurationSec)
}

// GetSizeString returns the file size in human readable form
func (t *Track) GetSizeString() string {
	return FormatFileSize(t.SizeBytes)
}

// DashPlaceholder is shown where a value is unknown
const DashPlaceholder = "—"

// File size formatting constants
const (
	FileSizeUnit  = 1024
	FileSizeUnits = "KMGTPE"
)

// FormatDuration formats a duration in seconds as mm:ss, or hh:mm:ss for
// durations of an hour or more. Negative values render as 00:00.
func FormatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// FormatFileSize formats a size in bytes to human readable form
func FormatFileSize(bytes int64) string {
	if bytes < FileSizeUnit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(FileSizeUnit), 0
	for n := bytes / FileSizeUnit; n >= FileSizeUnit; n /= FileSizeUnit {
		div *= FileSizeUnit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), FileSizeUnits[exp])
}
