// ABOUTME: Music library discovery
// ABOUTME: Walks a directory tree collecting playable audio files as tracks
package library

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/harperreed/tuneloop/pkg/audio/decode"
	"github.com/samber/lo"
)

// Track is one playable file. IDs are ordinal in discovery order.
type Track struct {
	ID          int
	Path        string
	Duration    time.Duration
	HasDuration bool
	Title       string
}

// DisplayTitle is the title, or the file name when no title is set
func (t Track) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	return filepath.Base(t.Path)
}

// Scan walks root recursively and returns every supported audio file in
// lexical walk order. Unreadable subdirectories are skipped; an unreadable
// root is an error.
func Scan(root string, logger *slog.Logger) ([]Track, error) {
	if logger == nil {
		logger = slog.Default()
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read music directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("music path %s is not a directory", root)
	}

	var tracks []Track
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Warn("skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !decode.Supported(path) {
			return nil
		}

		tracks = append(tracks, Track{
			ID:    len(tracks),
			Path:  path,
			Title: d.Name(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	logger.Info("library scanned", "root", root, "tracks", len(tracks))
	return tracks, nil
}

// Probe returns copies of tracks with durations read from the files.
// Files that fail to open keep an unknown duration.
func Probe(tracks []Track, logger *slog.Logger) []Track {
	if logger == nil {
		logger = slog.Default()
	}

	return lo.Map(tracks, func(t Track, _ int) Track {
		d, ok, err := decode.Probe(t.Path)
		if err != nil {
			logger.Warn("failed to probe track", "path", t.Path, "error", err)
			return t
		}
		t.Duration = d
		t.HasDuration = ok
		return t
	})
}
