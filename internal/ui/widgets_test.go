// ABOUTME: Tests for the region renderers and full frames
// ABOUTME: Checks frame geometry and the text each widget shows
package ui

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/tuneloop/internal/layout"
	"github.com/harperreed/tuneloop/internal/protocol"
	"github.com/mattn/go-runewidth"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func checkGeometry(t *testing.T, frame string, width, height int) []string {
	t.Helper()
	lines := strings.Split(stripANSI(frame), "\n")
	if len(lines) != height {
		t.Fatalf("%dx%d: expected %d lines, got %d", width, height, height, len(lines))
	}
	for i, l := range lines {
		if w := runewidth.StringWidth(l); w != width {
			t.Fatalf("%dx%d: line %d is %d cells wide: %q", width, height, i, w, l)
		}
	}
	return lines
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{time.Minute, "01:00"},
		{4*time.Minute + 5*time.Second + 900*time.Millisecond, "04:05"},
		{75 * time.Minute, "75:00"},
		{-time.Second, "00:00"},
	}

	for _, tt := range tests {
		if got := formatTime(tt.d); got != tt.want {
			t.Errorf("formatTime(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestProgressRatio(t *testing.T) {
	if got := progressRatio(time.Minute, 4*time.Minute, true); got != 0.25 {
		t.Errorf("expected 0.25, got %v", got)
	}
	if got := progressRatio(time.Minute, 0, false); got != 0 {
		t.Errorf("expected 0 without total, got %v", got)
	}
	if got := progressRatio(5*time.Minute, 4*time.Minute, true); got != 1 {
		t.Errorf("expected ratio capped at 1, got %v", got)
	}
}

func TestFit(t *testing.T) {
	if got := fit("abc", 5); got != "abc  " {
		t.Errorf("expected padding, got %q", got)
	}
	if got := fit("abcdef", 4); runewidth.StringWidth(got) != 4 {
		t.Errorf("expected truncation to 4 cells, got %q", got)
	}
	if got := fit("音楽ファイル", 5); runewidth.StringWidth(got) != 5 {
		t.Errorf("expected wide runes truncated to 5 cells, got %q", got)
	}
}

func TestFrameDrawsTitledBorder(t *testing.T) {
	theme := DefaultTheme()
	lines := frame(theme, "Box", []styledLine{plain("hi", theme.Text)}, layout.Rect{Width: 12, Height: 3})

	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	top := stripANSI(lines[0])
	if !strings.HasPrefix(top, "┌─ Box ") || !strings.HasSuffix(top, "┐") {
		t.Errorf("unexpected top border %q", top)
	}
	if got := stripANSI(lines[1]); got != "│hi        │" {
		t.Errorf("unexpected content row %q", got)
	}
	if got := stripANSI(lines[2]); got != "└──────────┘" {
		t.Errorf("unexpected bottom border %q", got)
	}
}

func TestRenderNowPlaying(t *testing.T) {
	theme := DefaultTheme()
	r := layout.Rect{Width: 40, Height: 5}
	track := testTracks(1)[0]

	tests := []struct {
		name   string
		status protocol.PlaybackStatus
		want   string
	}{
		{"playing", protocol.StatusPlaying, "▶ song-0.mp3"},
		{"paused", protocol.StatusPaused, "⏸ song-0.mp3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := stripANSI(strings.Join(renderNowPlaying(theme, &track, tt.status, "", r), "\n"))
			if !strings.Contains(out, tt.want) {
				t.Errorf("expected %q in\n%s", tt.want, out)
			}
		})
	}

	idle := stripANSI(strings.Join(renderNowPlaying(theme, nil, protocol.StatusStopped, "", r), "\n"))
	if !strings.Contains(idle, "Welcome to tuneloop") {
		t.Errorf("expected welcome line, got\n%s", idle)
	}

	failed := stripANSI(strings.Join(renderNowPlaying(theme, nil, protocol.StatusStopped, "bad file", r), "\n"))
	if !strings.Contains(failed, "bad file") {
		t.Errorf("expected error line, got\n%s", failed)
	}
}

func TestRenderTrackListScrollsToSelection(t *testing.T) {
	theme := DefaultTheme()
	tracks := testTracks(20)
	r := layout.Rect{Width: 40, Height: 7}

	out := stripANSI(strings.Join(renderTrackList(theme, tracks, 12, 10, r), "\n"))

	if !strings.Contains(out, " 13. ") {
		t.Errorf("expected selected row visible, got\n%s", out)
	}
	if strings.Contains(out, "  1. ") {
		t.Errorf("expected list scrolled past the first row, got\n%s", out)
	}
	if !strings.Contains(out, " 11. ▶ song-10.mp3") {
		t.Errorf("expected playing marker, got\n%s", out)
	}
}

func TestRenderTrackListEmpty(t *testing.T) {
	out := stripANSI(strings.Join(renderTrackList(DefaultTheme(), nil, 0, noTrack, layout.Rect{Width: 40, Height: 7}), "\n"))
	if !strings.Contains(out, "No audio files found") {
		t.Errorf("expected empty message, got\n%s", out)
	}
}

func TestRenderVisualization(t *testing.T) {
	theme := DefaultTheme()
	r := layout.Rect{Width: 12, Height: 4}

	wave := make([]uint64, WaveLength)
	wave[len(wave)-1] = 100

	lines := renderVisualization(theme, wave, true, r)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	top := []rune(stripANSI(lines[1]))
	bottom := []rune(stripANSI(lines[2]))
	if top[len(top)-2] != '█' || bottom[len(bottom)-2] != '█' {
		t.Errorf("expected full column for the newest sample, got %q / %q", string(top), string(bottom))
	}
	if top[1] != ' ' {
		t.Errorf("expected empty cell for silent sample, got %q", string(top))
	}

	idle := stripANSI(strings.Join(renderVisualization(theme, wave, false, r), "\n"))
	if strings.Contains(idle, "█") {
		t.Errorf("expected flat line while not playing, got\n%s", idle)
	}
}

func TestRenderPlaybackControl(t *testing.T) {
	theme := DefaultTheme()
	c, _, _ := newTestController(1, 1.0)

	state := controlState{
		position: time.Minute,
		total:    4 * time.Minute,
		hasTotal: true,
		volume:   0.75,
		status:   protocol.StatusPaused,
	}
	out := stripANSI(strings.Join(renderPlaybackControl(theme, &c.bar, state, layout.Rect{Width: 60, Height: 5}), "\n"))

	for _, want := range []string{"01:00 / 04:00", "Volume: 75%", "Space: Resume"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in\n%s", want, out)
		}
	}

	state.status = protocol.StatusStopped
	state.hasTotal = false
	short := stripANSI(strings.Join(renderPlaybackControl(theme, &c.bar, state, layout.Rect{Width: 60, Height: 4}), "\n"))
	if strings.Contains(short, "Enter: Play") {
		t.Errorf("expected hints dropped when short, got\n%s", short)
	}
	if strings.Contains(short, "/ 04:00") {
		t.Errorf("expected no total when unknown, got\n%s", short)
	}
}

func TestRenderStatusBar(t *testing.T) {
	lines := renderStatusBar(DefaultTheme(), defaultKeyMap().statusHints(), layout.Rect{Width: 120, Height: 1})
	out := stripANSI(lines[0])

	for _, want := range []string{"q:Quit", "Enter:Play", "+/-:Volume", "  |  "} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}

func TestRenderFullFrame(t *testing.T) {
	c, _, events := newTestController(3, 0.75)
	events.Push(protocol.TrackStarted{Index: 1, Duration: 4 * time.Minute, HasDuration: true})
	events.Push(protocol.Progress{Position: time.Minute})
	c.DrainEvents()

	lines := checkGeometry(t, c.Render(100, 30), 100, 30)
	out := strings.Join(lines, "\n")

	for _, want := range []string{
		"Now Playing", "▶ song-1.mp3", "song-0.mp3", "song-2.mp3",
		"Visualization", "01:00 / 04:00", "Volume: 75%", "q:Quit",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in frame", want)
		}
	}
}

func TestRenderCompactFrame(t *testing.T) {
	c, _, _ := newTestController(3, 1.0)

	lines := checkGeometry(t, c.Render(60, 15), 60, 15)
	out := strings.Join(lines, "\n")

	if strings.Contains(out, "Visualization") {
		t.Error("expected no visualization in compact mode")
	}
	if !strings.Contains(out, "song-0.mp3") {
		t.Error("expected track list in compact mode")
	}
}

func TestRenderGeometryAcrossSizes(t *testing.T) {
	c, _, events := newTestController(30, 1.0)
	startTrack(c, events, 3)

	for _, size := range [][2]int{{20, 10}, {79, 19}, {80, 20}, {132, 43}, {200, 100}, {20, 6}, {5, 2}, {1, 1}} {
		checkGeometry(t, c.Render(size[0], size[1]), size[0], size[1])
	}
}
