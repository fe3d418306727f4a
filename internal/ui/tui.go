// ABOUTME: TUI initialization and control
// ABOUTME: Wraps the controller in a bubbletea program driven by a tick
package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg marks the end of one controller tick
type tickMsg time.Time

// Model is the bubbletea model around a Controller
type Model struct {
	controller *Controller
	tick       time.Duration
	width      int
	height     int
}

// NewModel creates a TUI model ticking at the given interval
func NewModel(controller *Controller, tick time.Duration) Model {
	return Model{
		controller: controller,
		tick:       tick,
	}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the tick
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// Wave sample for the tick that just finished, then the new tick's events
		m.controller.SampleWave()
		m.controller.DrainEvents()
		return m, m.tickCmd()
	case tea.KeyMsg:
		if m.controller.HandleKey(msg) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	return m.controller.Render(m.width, m.height)
}

// Run owns the terminal until the user quits or ctx is cancelled
func Run(ctx context.Context, controller *Controller, tick time.Duration) error {
	p := tea.NewProgram(NewModel(controller, tick), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}
