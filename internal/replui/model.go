// Package replui is the bubbletea model behind the interactive REPL:
// a single scrolling transcript of input/output pairs behind one
// text input, no split panes or pinned variable panel.
package replui

import (
	"fmt"
	"strings"

	calc "github.com/blueset/calc-sub004"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HistoryEntry is one evaluated line's input and rendered output.
type HistoryEntry struct {
	Input   string
	Output  string
	IsError bool
}

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	outputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Model implements tea.Model for the REPL.
type Model struct {
	session *calc.Session
	input   textinput.Model

	history    []string
	historyIdx int
	transcript []HistoryEntry

	width, height int
	quitting      bool
}

// New creates a REPL model over a fresh session.
func New() Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "e.g. 5 km to mi"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 70

	return Model{
		session:    calc.NewSession(),
		input:      ti,
		historyIdx: -1,
		width:      80,
		height:     24,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = m.width - 4
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyUp:
		return m.historyUp(), nil
	case tea.KeyDown:
		return m.historyDown(), nil
	case tea.KeyEnter:
		return m.handleEnter()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) historyUp() Model {
	if len(m.history) == 0 {
		return m
	}
	if m.historyIdx == -1 {
		m.historyIdx = len(m.history) - 1
	} else if m.historyIdx > 0 {
		m.historyIdx--
	}
	m.input.SetValue(m.history[m.historyIdx])
	m.input.SetCursor(len(m.input.Value()))
	return m
}

func (m Model) historyDown() Model {
	if m.historyIdx == -1 {
		return m
	}
	m.historyIdx++
	if m.historyIdx >= len(m.history) {
		m.historyIdx = -1
		m.input.SetValue("")
	} else {
		m.input.SetValue(m.history[m.historyIdx])
	}
	m.input.SetCursor(len(m.input.Value()))
	return m
}

func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	m.historyIdx = -1
	if line == "" {
		return m, nil
	}

	if strings.HasPrefix(line, ":") {
		return m.handleCommand(line)
	}

	m.history = append(m.history, line)
	m = m.evaluate(line)
	return m, nil
}

func (m Model) handleCommand(line string) (tea.Model, tea.Cmd) {
	switch line {
	case ":q", ":quit":
		m.quitting = true
		return m, tea.Quit
	case ":vars", ":v":
		m.transcript = append(m.transcript, HistoryEntry{Input: line, Output: "(variable listing is session-local; re-evaluate a name to see its value)"})
	case ":help", ":h":
		m.transcript = append(m.transcript, HistoryEntry{Input: line, Output: "Enter expressions to evaluate. :vars, :quit."})
	default:
		m.transcript = append(m.transcript, HistoryEntry{Input: line, Output: fmt.Sprintf("unknown command %q", line), IsError: true})
	}
	return m, nil
}

// evaluate runs one line through the session and appends the visible
// result to the transcript.
func (m Model) evaluate(line string) Model {
	result, err := m.session.Eval(line)
	if err != nil {
		m.transcript = append(m.transcript, HistoryEntry{Input: line, Output: err.Error(), IsError: true})
		return m
	}
	for _, ln := range result.Lines {
		if ln.Rendered == "" {
			continue
		}
		m.transcript = append(m.transcript, HistoryEntry{Input: ln.Text, Output: ln.Rendered, IsError: ln.HasError})
	}
	return m
}

// Quitting reports whether the user asked to exit.
func (m Model) Quitting() bool { return m.quitting }

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(helpStyle.Render("calc — enter an expression, :help for commands, ctrl+c to quit") + "\n\n")
	for _, e := range m.transcript {
		b.WriteString(promptStyle.Render("> "+e.Input) + "\n")
		if e.IsError {
			b.WriteString("  " + errorStyle.Render(e.Output) + "\n")
		} else {
			b.WriteString("  " + outputStyle.Render(e.Output) + "\n")
		}
	}
	b.WriteString(m.input.View())
	return b.String()
}
