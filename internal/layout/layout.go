// ABOUTME: Responsive layout calculator for the terminal UI
// ABOUTME: Maps terminal dimensions to stacked screen regions
package layout

import "github.com/samber/lo"

const (
	// CompactWidth is the width below which the visualization is hidden
	CompactWidth = 80

	// SmallHeight is the height below which the fixed bands shrink
	SmallHeight = 20

	// MinMiddleHeight is the minimum height of the track list band
	MinMiddleHeight = 5

	nowPlayingHeight      = 5
	nowPlayingSmallHeight = 3
	controlHeight         = 5
	controlSmallHeight    = 4
	statusHeight          = 1

	// trackListPercent is the track list share of a split middle band
	trackListPercent = 55
)

// Rect is a terminal region in cells, origin top-left
type Rect struct {
	X, Y          int
	Width, Height int
}

// Bottom is the row just below the region
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Right is the column just right of the region
func (r Rect) Right() int {
	return r.X + r.Width
}

// Empty reports whether the region has no cells
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// AppLayout holds every region of the player screen.
// Visualization is nil in compact mode.
type AppLayout struct {
	NowPlaying      Rect
	TrackList       Rect
	Visualization   *Rect
	PlaybackControl Rect
	StatusBar       Rect
}

// Compact reports whether the layout hides the visualization
func (l AppLayout) Compact() bool {
	return l.Visualization == nil
}

// Calculate computes the layout for a terminal of width by height cells.
//
// Bands from the top: now playing, middle (track list and visualization),
// playback control, status bar. When the terminal is too short for every
// band, the middle keeps its minimum while it can and the fixed bands give
// up rows, the larger one first. The status bar always keeps the last row.
func Calculate(width, height int) AppLayout {
	width = max(width, 0)
	height = max(height, 0)

	wantNowPlaying, wantControl := nowPlayingHeight, controlHeight
	if height < SmallHeight {
		wantNowPlaying, wantControl = nowPlayingSmallHeight, controlSmallHeight
	}

	status := min(statusHeight, height)
	rest := height - status

	middle := min(MinMiddleHeight, rest)
	rest -= middle

	nowPlaying, control := wantNowPlaying, wantControl
	for nowPlaying+control > rest {
		if nowPlaying > control {
			nowPlaying--
		} else {
			control--
		}
	}
	middle += rest - nowPlaying - control

	l := AppLayout{
		NowPlaying:      Rect{X: 0, Y: 0, Width: width, Height: nowPlaying},
		PlaybackControl: Rect{X: 0, Y: nowPlaying + middle, Width: width, Height: control},
		StatusBar:       Rect{X: 0, Y: nowPlaying + middle + control, Width: width, Height: status},
	}

	middleY := nowPlaying
	if width < CompactWidth {
		l.TrackList = Rect{X: 0, Y: middleY, Width: width, Height: middle}
		return l
	}

	listWidth := lo.Clamp(width*trackListPercent/100, 0, width)
	l.TrackList = Rect{X: 0, Y: middleY, Width: listWidth, Height: middle}
	l.Visualization = &Rect{X: listWidth, Y: middleY, Width: width - listWidth, Height: middle}
	return l
}

// Cache memoizes the most recent layout
type Cache struct {
	valid  bool
	width  int
	height int
	layout AppLayout
}

// Get returns the layout for the size, recomputing only when it changed
func (c *Cache) Get(width, height int) AppLayout {
	if c.valid && c.width == width && c.height == height {
		return c.layout
	}

	c.layout = Calculate(width, height)
	c.width = width
	c.height = height
	c.valid = true
	return c.layout
}
