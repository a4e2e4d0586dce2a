// Package ui contains the interactive terminal front end.
package ui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"ember/internal/diagfmt"
	"ember/internal/driver"
)

const historyLimit = 200

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

type historyEntry struct {
	src    string
	output string
	isErr  bool
}

type replModel struct {
	input          textinput.Model
	history        []historyEntry
	vars           map[string]float64
	maxDiagnostics int
	width          int
	quitting       bool
}

// NewREPL returns a Bubble Tea model for the read-eval-print loop. Vars
// seed every line's variable bindings for the whole session.
func NewREPL(vars map[string]float64, maxDiagnostics int) tea.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = promptStyle
	ti.Placeholder = "expression"
	ti.Focus()

	return &replModel{
		input:          ti,
		vars:           vars,
		maxDiagnostics: maxDiagnostics,
		width:          80,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			if line == "exit" || line == ":q" {
				m.quitting = true
				return m, tea.Quit
			}
			m.push(m.evalLine(line))
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) View() string {
	var b strings.Builder
	for _, entry := range m.history {
		b.WriteString(promptStyle.Render("> "))
		b.WriteString(runewidth.Truncate(entry.src, m.width-2, "…"))
		b.WriteString("\n")
		style := valueStyle
		if entry.isErr {
			style = errorStyle
		}
		for _, line := range strings.Split(strings.TrimRight(entry.output, "\n"), "\n") {
			b.WriteString(style.Render(line))
			b.WriteString("\n")
		}
	}
	if m.quitting {
		return b.String()
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("enter to evaluate, exit or ctrl+d to leave"))
	b.WriteString("\n")
	return b.String()
}

// evalLine runs one submitted line against the session bindings.
func (m *replModel) evalLine(line string) historyEntry {
	res, err := driver.EvalSource("repl", []byte(line), m.vars, m.maxDiagnostics)
	if err != nil {
		return historyEntry{src: line, output: err.Error(), isErr: true}
	}
	if res.Bag.HasErrors() {
		var buf bytes.Buffer
		res.Bag.Sort()
		diagfmt.Pretty(&buf, res.Bag, res.FileSet, diagfmt.PrettyOpts{
			PathMode: diagfmt.PathModeBasename,
		})
		return historyEntry{src: line, output: buf.String(), isErr: true}
	}
	if !res.Result.HasValue {
		return historyEntry{src: line, output: "no result"}
	}
	return historyEntry{src: line, output: fmt.Sprintf("= %g", res.Result.Value)}
}

func (m *replModel) push(entry historyEntry) {
	m.history = append(m.history, entry)
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
}
