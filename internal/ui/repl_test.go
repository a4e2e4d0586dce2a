package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeLine(t *testing.T, m tea.Model, line string) tea.Model {
	t.Helper()
	for _, r := range line {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return m
}

func TestReplEvaluatesLine(t *testing.T) {
	m := typeLine(t, NewREPL(nil, 16), "2 + 3 * 4")

	view := m.View()
	if !strings.Contains(view, "2 + 3 * 4") {
		t.Fatalf("input missing from view:\n%s", view)
	}
	if !strings.Contains(view, "= 14") {
		t.Fatalf("result missing from view:\n%s", view)
	}
}

func TestReplUsesSessionVars(t *testing.T) {
	m := typeLine(t, NewREPL(map[string]float64{"radius": 3}, 16), "radius * 2")

	if view := m.View(); !strings.Contains(view, "= 6") {
		t.Fatalf("session binding ignored:\n%s", view)
	}
}

func TestReplShowsDiagnostics(t *testing.T) {
	m := typeLine(t, NewREPL(nil, 16), "(1 + 2")

	view := m.View()
	if !strings.Contains(view, "SYN2002") {
		t.Fatalf("diagnostic code missing from view:\n%s", view)
	}
}

func TestReplEmptyLineIgnored(t *testing.T) {
	m, _ := NewREPL(nil, 16).Update(tea.KeyMsg{Type: tea.KeyEnter})

	repl := m.(*replModel)
	if len(repl.history) != 0 {
		t.Fatalf("empty line must not enter history")
	}
}

func TestReplExitCommand(t *testing.T) {
	var cmd tea.Cmd
	m := NewREPL(nil, 16)
	for _, r := range "exit" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
	if !m.(*replModel).quitting {
		t.Fatalf("model did not mark itself quitting")
	}
}
