package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model.
func (m *Model) View() string {
	switch m.state {
	case loadingView:
		return m.renderLoading()
	case boardView:
		return m.renderBoard()
	default:
		return m.renderInput()
	}
}

func (m *Model) renderInput() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("🗺️  Travel Vibe Curator"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("Local phrases, music, food, and a first-day plan for any destination."))
	b.WriteString("\n\n")
	b.WriteString("Destination: ")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter generate • esc quit"))
	return b.String()
}

func (m *Model) renderLoading() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("🗺️  Travel Vibe Curator"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s Creating vibe board for %s...", m.spin.View(), m.destination))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("ctrl+c quit"))
	return b.String()
}

func (m *Model) renderBoard() string {
	var b strings.Builder

	header := fmt.Sprintf("✨ %s", m.board.Destination)
	if total := m.board.Usage.TotalTokens; total > 0 {
		header += subtleStyle.Render(fmt.Sprintf("  (%d tokens)", total))
	}
	b.WriteString(headerStyle.Width(m.width).Render(titleStyle.Render(header)))
	b.WriteString("\n")

	lines := m.boardLines()
	start := m.scroll
	end := start + m.contentHeight()
	if end > len(lines) {
		end = len(lines)
	}
	for _, line := range lines[start:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	help := "up/k dn/j scroll • esc new destination • q quit"
	if m.maxScroll() > 0 {
		help = fmt.Sprintf("%d/%d • %s", m.scroll+1, m.maxScroll()+1, help)
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}
