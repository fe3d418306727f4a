// ABOUTME: Region renderers for the player screen
// ABOUTME: Each widget draws one layout region as exactly its width by height cells
package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/harperreed/tuneloop/internal/layout"
	"github.com/harperreed/tuneloop/internal/library"
	"github.com/harperreed/tuneloop/internal/protocol"
	"github.com/mattn/go-runewidth"
)

const (
	welcomeMessage = "🎵 Welcome to tuneloop"
	emptyLibrary   = "No audio files found"
)

// sparkline glyphs from empty to full cell
var sparkGlyphs = []rune(" ▁▂▃▄▅▆▇█")

// fit truncates or pads s to exactly width display cells
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "…")
	return runewidth.FillRight(s, width)
}

// center places s in the middle of width cells
func center(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "…")
	left := (width - runewidth.StringWidth(s)) / 2
	return fit(strings.Repeat(" ", left)+s, width)
}

// styledLine is one row of content rendered after padding.
// A prerendered line is already styled and sized and is used as is.
type styledLine struct {
	text        string
	style       lipgloss.Style
	prerendered bool
}

func plain(text string, style lipgloss.Style) styledLine {
	return styledLine{text: text, style: style}
}

func (l styledLine) render(width int) string {
	if l.prerendered {
		return l.text
	}
	return l.style.Render(fit(l.text, width))
}

// frame draws a titled box around content lines, clipped to r.
// Regions too small for a border get the bare content.
func frame(theme Theme, title string, content []styledLine, r layout.Rect) []string {
	if r.Empty() {
		return nil
	}

	lines := make([]string, 0, r.Height)
	if r.Height < 2 || r.Width < 2 {
		for i := 0; i < r.Height; i++ {
			var l styledLine
			if i < len(content) {
				l = content[i]
			}
			lines = append(lines, l.render(r.Width))
		}
		return lines
	}

	inner := r.Width - 2

	label := ""
	if inner >= 4 && title != "" {
		label = runewidth.Truncate(" "+title+" ", inner-1, "")
	}
	fill := inner - 1 - runewidth.StringWidth(label)
	if label == "" {
		fill = inner
	}
	top := theme.Border.Render("┌")
	if label != "" {
		top += theme.Border.Render("─") + theme.Title.Render(label)
	}
	top += theme.Border.Render(strings.Repeat("─", fill) + "┐")
	lines = append(lines, top)

	side := theme.Border.Render("│")
	for i := 0; i < r.Height-2; i++ {
		var l styledLine
		if i < len(content) {
			l = content[i]
		}
		lines = append(lines, side+l.render(inner)+side)
	}

	lines = append(lines, theme.Border.Render("└"+strings.Repeat("─", inner)+"┘"))
	return lines
}

// innerHeight is the number of content rows inside a framed region
func innerHeight(r layout.Rect) int {
	if r.Height < 2 || r.Width < 2 {
		return r.Height
	}
	return r.Height - 2
}

func innerWidth(r layout.Rect) int {
	if r.Height < 2 || r.Width < 2 {
		return r.Width
	}
	return r.Width - 2
}

// renderNowPlaying shows the status icon and title of the loaded track
func renderNowPlaying(theme Theme, track *library.Track, status protocol.PlaybackStatus, lastError string, r layout.Rect) []string {
	width := innerWidth(r)

	var line styledLine
	switch {
	case track != nil:
		style := theme.Title
		if status == protocol.StatusPaused {
			style = theme.Paused
		}
		line = plain(center(statusIcon(status)+" "+track.DisplayTitle(), width), style)
	case lastError != "":
		line = plain(center("⚠ "+lastError, width), theme.Error)
	default:
		line = plain(center(welcomeMessage, width), theme.Title)
	}

	content := make([]styledLine, innerHeight(r))
	if len(content) > 0 {
		content[(len(content)-1)/2] = line
	}
	return frame(theme, "Now Playing", content, r)
}

func statusIcon(status protocol.PlaybackStatus) string {
	switch status {
	case protocol.StatusPlaying:
		return "▶"
	case protocol.StatusPaused:
		return "⏸"
	default:
		return "⏹"
	}
}

// renderTrackList numbers every track, marks the playing one and keeps the
// selection in view
func renderTrackList(theme Theme, tracks []library.Track, selected, playing int, r layout.Rect) []string {
	rows := innerHeight(r)
	width := innerWidth(r)
	title := fmt.Sprintf("Track List (%d)", len(tracks))

	if len(tracks) == 0 {
		content := make([]styledLine, rows)
		if rows > 0 {
			content[(rows-1)/2] = plain(center(emptyLibrary, width), theme.Dim)
		}
		return frame(theme, title, content, r)
	}

	offset := 0
	if rows > 0 && selected >= rows {
		offset = selected - rows + 1
	}

	content := make([]styledLine, 0, rows)
	for i := offset; i < len(tracks) && len(content) < rows; i++ {
		marker := "  "
		if i == playing {
			marker = "▶ "
		}
		text := fmt.Sprintf("%3d. %s%s", i+1, marker, tracks[i].DisplayTitle())

		style := theme.Text
		switch {
		case i == selected:
			style = theme.Selected
		case i == playing:
			style = theme.Playing
		}
		content = append(content, plain(text, style))
	}
	return frame(theme, title, content, r)
}

// renderVisualization draws the wave history as a sparkline, newest on the right
func renderVisualization(theme Theme, wave []uint64, playing bool, r layout.Rect) []string {
	rows := innerHeight(r)
	width := innerWidth(r)

	samples := make([]uint64, width)
	if playing {
		start := max(len(wave)-width, 0)
		copy(samples[width-min(width, len(wave)):], wave[start:])
	}

	style := theme.Wave
	if !playing {
		style = theme.WaveIdle
	}

	content := make([]styledLine, rows)
	for row := 0; row < rows; row++ {
		fromBottom := rows - 1 - row
		var b strings.Builder
		for _, v := range samples {
			eighths := int(min(v, 100)) * rows * 8 / 100
			level := min(max(eighths-fromBottom*8, 0), 8)
			if !playing && fromBottom == 0 {
				level = 1
			}
			b.WriteRune(sparkGlyphs[level])
		}
		content[row] = plain(b.String(), style)
	}
	return frame(theme, "Visualization", content, r)
}

// formatTime renders d as mm:ss
func formatTime(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func timeLabel(position, total time.Duration, hasTotal bool) string {
	if hasTotal {
		return formatTime(position) + " / " + formatTime(total)
	}
	return formatTime(position)
}

func progressRatio(position, total time.Duration, hasTotal bool) float64 {
	if !hasTotal || total <= 0 {
		return 0
	}
	return math.Min(math.Max(float64(position)/float64(total), 0), 1)
}

// playbackHints are the context hints shown under the gauge
func playbackHints(status protocol.PlaybackStatus, sep string) string {
	switch status {
	case protocol.StatusPlaying:
		return strings.Join([]string{"Space: Pause", "[/]: Prev/Next", "+/-: Volume"}, sep)
	case protocol.StatusPaused:
		return strings.Join([]string{"Space: Resume", "[/]: Prev/Next", "+/-: Volume"}, sep)
	default:
		return strings.Join([]string{"Enter: Play", "↑/↓: Navigate"}, sep)
	}
}

// controlState is the slice of controller state the control band needs
type controlState struct {
	position time.Duration
	total    time.Duration
	hasTotal bool
	volume   float64
	status   protocol.PlaybackStatus
}

// renderPlaybackControl draws the progress gauge box, the time and volume
// line and the hints line, dropping rows from the bottom when short
func renderPlaybackControl(theme Theme, bar *progress.Model, s controlState, r layout.Rect) []string {
	if r.Empty() {
		return nil
	}

	gaugeRect := layout.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: min(3, r.Height)}
	gaugeWidth := innerWidth(gaugeRect)

	label := timeLabel(s.position, s.total, s.hasTotal)
	gauge := plain(fit(label, gaugeWidth), theme.Text)
	if barWidth := gaugeWidth - runewidth.StringWidth(label) - 1; barWidth > 0 {
		bar.Width = barWidth
		gauge.text = bar.ViewAs(progressRatio(s.position, s.total, s.hasTotal)) + " " + theme.Text.Render(label)
		gauge.prerendered = true
	}

	var lines []string
	if gaugeRect.Height == 3 {
		lines = frame(theme, "Progress", []styledLine{gauge}, gaugeRect)
	} else {
		lines = frame(theme, "", []styledLine{plain(fit(label, r.Width), theme.Text)}, gaugeRect)
	}

	info := fmt.Sprintf("%s%sVolume: %d%%", label, theme.Separator, int(math.Round(s.volume*100)))
	extra := []styledLine{
		plain(center(info, r.Width), theme.Text),
		plain(center(playbackHints(s.status, theme.Separator), r.Width), theme.Dim),
	}
	for i := 0; len(lines) < r.Height; i++ {
		var l styledLine
		if i < len(extra) {
			l = extra[i]
		}
		lines = append(lines, l.render(r.Width))
	}
	return lines
}

// keyHint is one entry of the status bar
type keyHint struct {
	key  string
	desc string
}

// renderStatusBar joins key hints into a single centered row
func renderStatusBar(theme Theme, hints []keyHint, r layout.Rect) []string {
	if r.Empty() {
		return nil
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = h.key + ":" + h.desc
	}
	line := theme.Dim.Render(center(strings.Join(parts, theme.Separator), r.Width))

	lines := []string{line}
	for len(lines) < r.Height {
		lines = append(lines, strings.Repeat(" ", r.Width))
	}
	return lines
}
