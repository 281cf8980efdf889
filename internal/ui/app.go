package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// redrawEvery paces view refreshes. It has to undercut the shortest flash
// duration or a flash could clear without ever being drawn.
const redrawEvery = 200 * time.Millisecond

// Model is the root application state for Bubble Tea.
type Model struct {
	opts Options
	keys keyMap

	theme  Theme
	width  int
	height int
	ready  bool

	// selected indexes into the layout order.
	selected int

	live     bool
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	return Model{
		opts:  opts,
		keys:  DefaultKeyMap(),
		theme: GetTheme(""),
		live:  true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, tickCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m, tickCmd()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}

	order := m.opts.Layout.Snapshot().Order
	m.selected = clampIndex(m.selected, len(order))
	var selectedID string
	if len(order) > 0 {
		selectedID = order[m.selected]
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))

	case key.Matches(msg, m.keys.Refresh):
		if m.opts.Refresh != nil {
			m.opts.Refresh()
		}

	case key.Matches(msg, m.keys.ToggleLive):
		if m.opts.ToggleLive != nil {
			m.live = m.opts.ToggleLive()
		}

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(order)-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.MoveUp):
		if m.selected > 0 {
			m.opts.Layout.Move(selectedID, order[m.selected-1])
			m.selected--
		}

	case key.Matches(msg, m.keys.MoveDown):
		// Moving down is lifting the next tile above this one.
		if m.selected < len(order)-1 {
			m.opts.Layout.Move(order[m.selected+1], selectedID)
			m.selected++
		}

	case key.Matches(msg, m.keys.FeatureSlotA):
		m.opts.Layout.Promote(selectedID, 0)

	case key.Matches(msg, m.keys.FeatureSlotB):
		m.opts.Layout.Promote(selectedID, 1)

	case key.Matches(msg, m.keys.Unfeature):
		m.opts.Layout.Demote(selectedID)

	case key.Matches(msg, m.keys.ToggleCollapse):
		m.opts.Layout.ToggleCollapse(selectedID)
	}

	return m, nil
}

func clampIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Messages

type tickMsg time.Time

// Commands

func tickCmd() tea.Cmd {
	return tea.Tick(redrawEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
