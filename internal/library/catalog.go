package library

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dhowden/tag"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/audreyapp/audrey/internal/model"
)

// supportedExtensions lists the audio formats the catalog accepts
var supportedExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".ogg":  true,
	".flac": true,
	".m4a":  true,
	".aac":  true,
}

// IsSupported reports whether path has a supported audio extension
func IsSupported(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// Catalog scans a library directory for audiobook files
type Catalog struct {
	dir string
}

// NewCatalog creates a catalog rooted at dir
func NewCatalog(dir string) *Catalog {
	return &Catalog{dir: dir}
}

// Dir returns the library directory this catalog scans
func (c *Catalog) Dir() string {
	return c.dir
}

// Scan walks the library directory and returns a descriptor for every
// supported audio file, sorted by path so repeated scans of an unchanged
// directory produce the same order. Unreadable individual files are
// skipped with a warning; an unreadable root directory is an error.
func (c *Catalog) Scan() ([]model.Track, error) {
	if _, err := os.Stat(c.dir); err != nil {
		return nil, fmt.Errorf("scan library %s: %w", c.dir, err)
	}

	var tracks []model.Track
	err := filepath.WalkDir(c.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logrus.WithError(err).WithField("path", path).Warn("skipping unreadable entry")
			return nil
		}
		if d.IsDir() || !IsSupported(path) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			logrus.WithError(err).WithField("path", path).Warn("skipping file without stat info")
			return nil
		}

		track := model.Track{
			ID:        uuid.NewString(),
			Path:      path,
			SizeBytes: info.Size(),
			ModTime:   info.ModTime(),
			Ext:       strings.ToLower(filepath.Ext(path)),
		}
		track.Title, track.Author = readTags(path)
		tracks = append(tracks, track)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan library %s: %w", c.dir, err)
	}

	sort.Slice(tracks, func(i, j int) bool {
		return tracks[i].Path < tracks[j].Path
	})
	return tracks, nil
}

// Import copies the file at src into the library directory and returns the
// destination path. The library directory is created if needed.
func (c *Catalog) Import(src string) (string, error) {
	if !IsSupported(src) {
		return "", fmt.Errorf("import %s: unsupported audio format", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("import %s: %w", src, err)
	}
	defer in.Close()

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return "", fmt.Errorf("import %s: %w", src, err)
	}

	dst := filepath.Join(c.dir, filepath.Base(src))
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("import %s: %w", src, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("import %s: %w", src, err)
	}
	return dst, nil
}

// readTags pulls title and artist metadata from the file. Untagged or
// unparsable files are fine; display falls back to the file name.
func readTags(path string) (title, author string) {
	f, err := os.Open(path)
	if err != nil {
		return "", ""
	}
	defer f.Close()

	meta, err := tag.ReadFrom(f)
	if err != nil {
		return "", ""
	}
	return strings.TrimSpace(meta.Title()), strings.TrimSpace(meta.Artist())
}
