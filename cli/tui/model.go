// Package tui provides a full-screen terminal UI for generating and reading
// travel vibe boards, built on the Bubble Tea framework.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/travelvibe/vibeboard/guide"
)

// Generator produces a vibe board for a destination.
type Generator interface {
	Generate(ctx context.Context, destination string) (*guide.Board, error)
}

type viewState int

const (
	inputView viewState = iota
	loadingView
	boardView
)

// Model is the root Bubble Tea model.
type Model struct {
	gen   Generator
	state viewState

	input textinput.Model
	spin  spinner.Model

	destination string
	board       *guide.Board
	errMsg      string

	scroll int
	width  int
	height int
}

// boardMsg carries the outcome of one generation call back into Update.
type boardMsg struct {
	board *guide.Board
	err   error
}

// New creates the TUI model around a generator.
func New(gen Generator) *Model {
	ti := textinput.New()
	ti.Placeholder = "Tokyo"
	ti.CharLimit = 120
	ti.Width = 40
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return &Model{
		gen:    gen,
		state:  inputView,
		input:  ti,
		spin:   sp,
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// generateCmd runs one generation call off the UI loop.
func generateCmd(gen Generator, destination string) tea.Cmd {
	return func() tea.Msg {
		board, err := gen.Generate(context.Background(), destination)
		return boardMsg{board: board, err: err}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.state != loadingView {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case boardMsg:
		if msg.err != nil {
			m.state = inputView
			m.errMsg = msg.err.Error()
			m.input.Focus()
			return m, textinput.Blink
		}
		m.state = boardView
		m.board = msg.board
		m.scroll = 0
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.ForceQuit) {
		return m, tea.Quit
	}

	switch m.state {
	case inputView:
		return m.handleInputKey(msg)
	case boardView:
		return m.handleBoardKey(msg)
	}
	// Loading: only force-quit is honored; the call runs to completion.
	return m, nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Submit):
		destination := strings.TrimSpace(m.input.Value())
		if destination == "" {
			m.errMsg = "Please enter a valid destination!"
			return m, nil
		}
		m.destination = destination
		m.errMsg = ""
		m.state = loadingView
		return m, tea.Batch(m.spin.Tick, generateCmd(m.gen, destination))

	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if m.scroll > 0 {
			m.scroll--
		}
	case key.Matches(msg, keys.Down):
		if m.scroll < m.maxScroll() {
			m.scroll++
		}
	case key.Matches(msg, keys.Back):
		m.state = inputView
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.QuitBoard):
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) boardLines() []string {
	if m.board == nil {
		return nil
	}
	return strings.Split(m.board.Content, "\n")
}

func (m *Model) maxScroll() int {
	lines := len(m.boardLines())
	visible := m.contentHeight()
	if lines <= visible {
		return 0
	}
	return lines - visible
}

// contentHeight is the number of board lines that fit between the header and
// the help line.
func (m *Model) contentHeight() int {
	h := m.height - 4
	if h < 1 {
		h = 1
	}
	return h
}
