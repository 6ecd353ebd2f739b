package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/travelvibe/vibeboard/guide"
)

// stubGenerator is a test double for the Generator interface.
type stubGenerator struct {
	content string
	err     error
	calls   []string
}

func (s *stubGenerator) Generate(_ context.Context, destination string) (*guide.Board, error) {
	s.calls = append(s.calls, destination)
	if s.err != nil {
		return nil, s.err
	}
	return &guide.Board{Destination: destination, Content: s.content}, nil
}

func typeString(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewModel(t *testing.T) {
	m := New(&stubGenerator{})

	if m.state != inputView {
		t.Errorf("initial state = %d, want inputView (0)", m.state)
	}
	if m.input.Value() != "" {
		t.Errorf("initial input = %q, want empty", m.input.Value())
	}
}

func TestSubmitStartsGeneration(t *testing.T) {
	gen := &stubGenerator{content: "board"}
	m := New(gen)

	typeString(m, "Tokyo")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.state != loadingView {
		t.Fatalf("state after enter = %d, want loadingView (1)", m.state)
	}
	if m.destination != "Tokyo" {
		t.Errorf("destination = %q", m.destination)
	}
	if cmd == nil {
		t.Fatal("expected a command to run the generation")
	}
}

func TestSubmitEmptyShowsError(t *testing.T) {
	m := New(&stubGenerator{})

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.state != inputView {
		t.Fatalf("state = %d, want inputView", m.state)
	}
	if !strings.Contains(m.errMsg, "valid destination") {
		t.Errorf("errMsg = %q", m.errMsg)
	}
}

func TestBoardMsgSuccess(t *testing.T) {
	m := New(&stubGenerator{})
	m.state = loadingView

	m.Update(boardMsg{board: &guide.Board{Destination: "Tokyo", Content: "line1\nline2"}})

	if m.state != boardView {
		t.Fatalf("state = %d, want boardView (2)", m.state)
	}
	if len(m.boardLines()) != 2 {
		t.Errorf("boardLines = %d, want 2", len(m.boardLines()))
	}
}

// TestBoardMsgFailure verifies a failed generation returns to the input view
// with the error text preserved.
func TestBoardMsgFailure(t *testing.T) {
	m := New(&stubGenerator{})
	m.state = loadingView

	m.Update(boardMsg{err: errors.New("connection refused")})

	if m.state != inputView {
		t.Fatalf("state = %d, want inputView", m.state)
	}
	if !strings.Contains(m.errMsg, "connection refused") {
		t.Errorf("errMsg = %q, want underlying text", m.errMsg)
	}
}

func TestBoardScroll(t *testing.T) {
	m := New(&stubGenerator{})
	m.height = 10
	m.state = boardView
	m.board = &guide.Board{Destination: "Tokyo", Content: strings.Repeat("line\n", 30)}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.scroll != 1 {
		t.Errorf("scroll after j = %d, want 1", m.scroll)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if m.scroll != 0 {
		t.Errorf("scroll after k = %d, want 0", m.scroll)
	}

	// Never below zero.
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if m.scroll != 0 {
		t.Errorf("scroll = %d, want clamped at 0", m.scroll)
	}
}

func TestBoardBackToInput(t *testing.T) {
	m := New(&stubGenerator{})
	m.state = boardView
	m.board = &guide.Board{Destination: "Tokyo", Content: "x"}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if m.state != inputView {
		t.Fatalf("state = %d, want inputView", m.state)
	}
	if m.input.Value() != "" {
		t.Errorf("input = %q, want cleared", m.input.Value())
	}
}

func TestGenerateCmdDeliversBoardMsg(t *testing.T) {
	gen := &stubGenerator{content: "body text"}

	msg := generateCmd(gen, "Tokyo")()

	bm, ok := msg.(boardMsg)
	if !ok {
		t.Fatalf("msg type = %T", msg)
	}
	if bm.err != nil {
		t.Fatalf("unexpected error: %v", bm.err)
	}
	if bm.board.Content != "body text" {
		t.Errorf("Content = %q", bm.board.Content)
	}
	if len(gen.calls) != 1 {
		t.Errorf("calls = %v, want exactly one", gen.calls)
	}
}

func TestViewRendersInput(t *testing.T) {
	m := New(&stubGenerator{})

	view := m.View()
	if !strings.Contains(view, "Travel Vibe Curator") {
		t.Error("input view missing title")
	}
}

func TestViewRendersBoard(t *testing.T) {
	m := New(&stubGenerator{})
	m.state = boardView
	m.board = &guide.Board{Destination: "Tokyo", Content: "unmistakable-line"}

	view := m.View()
	if !strings.Contains(view, "unmistakable-line") {
		t.Error("board view missing content")
	}
	if !strings.Contains(view, "Tokyo") {
		t.Error("board view missing destination header")
	}
}
