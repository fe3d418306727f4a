// ABOUTME: Tests for music library discovery
// ABOUTME: Tests recursive scanning, extension filtering and duration probing
package library

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/tuneloop/internal/testtone"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanFindsSupportedFiles(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.mp3"))
	touch(t, filepath.Join(root, "a.FLAC"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "album", "01.ogg"))
	touch(t, filepath.Join(root, "album", "cover.jpg"))
	touch(t, filepath.Join(root, "album", "deep", "02.wav"))

	tracks, err := Scan(root, nil)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	expected := []string{
		filepath.Join(root, "a.FLAC"),
		filepath.Join(root, "album", "01.ogg"),
		filepath.Join(root, "album", "deep", "02.wav"),
		filepath.Join(root, "b.mp3"),
	}
	got := make([]string, len(tracks))
	for i, tr := range tracks {
		got[i] = tr.Path
	}
	if len(got) != len(expected) {
		t.Fatalf("expected %d tracks, got %v", len(expected), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("track %d: expected %s, got %s", i, expected[i], got[i])
		}
		if tracks[i].ID != i {
			t.Errorf("track %d: expected ID %d, got %d", i, i, tracks[i].ID)
		}
	}

	if tracks[1].Title != "01.ogg" {
		t.Errorf("expected title from file name, got %q", tracks[1].Title)
	}
}

func TestScanEmptyDirectory(t *testing.T) {
	tracks, err := Scan(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(tracks) != 0 {
		t.Errorf("expected no tracks, got %d", len(tracks))
	}
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"), nil)
	if err == nil {
		t.Fatal("expected error for missing root")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestScanRootIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")
	touch(t, path)

	if _, err := Scan(path, nil); err == nil {
		t.Error("expected error when root is a file")
	}
}

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		track Track
		want  string
	}{
		{Track{Path: "/music/a.mp3", Title: "Song"}, "Song"},
		{Track{Path: "/music/a.mp3"}, "a.mp3"},
	}

	for _, tt := range tests {
		if got := tt.track.DisplayTitle(); got != tt.want {
			t.Errorf("DisplayTitle() = %q, want %q", got, tt.want)
		}
	}
}

func TestProbe(t *testing.T) {
	root := t.TempDir()
	good := filepath.Join(root, "tone.wav")
	if err := testtone.WriteWAV(good, testtone.Options{SampleRate: 8000, Channels: 1, Length: 2 * time.Second}); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(root, "zz_broken.flac"))

	tracks, err := Scan(root, nil)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	probed := Probe(tracks, nil)
	if len(probed) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(probed))
	}
	if !probed[0].HasDuration || probed[0].Duration != 2*time.Second {
		t.Errorf("expected 2s for tone, got %v (known=%v)", probed[0].Duration, probed[0].HasDuration)
	}
	if probed[1].HasDuration {
		t.Error("expected unknown duration for broken file")
	}
	if tracks[0].HasDuration {
		t.Error("expected Probe to leave the input untouched")
	}
}
