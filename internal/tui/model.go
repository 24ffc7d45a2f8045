// Package tui is an interactive date interpreter built on bubbletea.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mph-llm-experiments/adate/internal/chrono"
)

const historySize = 10

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(44)

	confidenceColors = map[chrono.Confidence]lipgloss.Color{
		chrono.ConfidenceHigh:   lipgloss.Color("10"),
		chrono.ConfidenceMedium: lipgloss.Color("11"),
		chrono.ConfidenceLow:    lipgloss.Color("13"),
		chrono.ConfidenceNone:   lipgloss.Color("9"),
	}
)

// Entry is an input and the result it produced.
type Entry struct {
	Input  string
	Result chrono.Result
}

// Model is the bubbletea model for the interpreter screen.
type Model struct {
	anchors       chrono.Anchors
	minConfidence chrono.Confidence

	editBuffer string
	editCursor int
	current    chrono.Result

	history  []Entry
	quitting bool
}

// New returns a Model that interprets input against anchors.
func New(anchors chrono.Anchors, minConfidence chrono.Confidence) Model {
	m := Model{anchors: anchors, minConfidence: minConfidence}
	m.reinterpret()
	return m
}

// Run starts the program and blocks until the user quits.
func Run(m Model) error {
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("failed to run tui: %w", err)
	}
	return nil
}

// Input returns the current input line.
func (m Model) Input() string { return m.editBuffer }

// Current returns the interpretation of the current input line.
func (m Model) Current() chrono.Result { return m.current }

// History returns submitted entries, newest first.
func (m Model) History() []Entry { return m.history }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeys(msg)
	}
	return m, nil
}

func (m *Model) reinterpret() {
	m.current = m.anchors.Interpret(strings.TrimSpace(m.editBuffer))
}

func (m *Model) submit() {
	input := strings.TrimSpace(m.editBuffer)
	if input == "" {
		return
	}
	m.history = append([]Entry{{Input: input, Result: m.current}}, m.history...)
	if len(m.history) > historySize {
		m.history = m.history[:historySize]
	}
	m.editBuffer = ""
	m.editCursor = 0
	m.reinterpret()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("adate"))
	fmt.Fprintf(&b, "  context %s, range %s to %s\n\n", m.anchors.Context, m.anchors.Min, m.anchors.Max)

	b.WriteString(promptStyle.Render("> "))
	b.WriteString(m.editBuffer[:m.editCursor])
	b.WriteString("█")
	b.WriteString(m.editBuffer[m.editCursor:])
	b.WriteString("\n\n")

	b.WriteString(m.panel(m.current))
	b.WriteString("\n")

	if len(m.history) > 0 {
		b.WriteString("\nHistory\n")
		for _, e := range m.history {
			fmt.Fprintf(&b, "  %-16s %s\n", e.Input, m.summary(e.Result))
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: keep  ctrl+u: clear  esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) panel(r chrono.Result) string {
	style := panelStyle.BorderForeground(confidenceColors[r.Confidence])
	if strings.TrimSpace(m.editBuffer) == "" {
		return style.Render("Type a date such as 13/1/24")
	}

	date := "-"
	if r.OK() {
		date = r.Date.String()
	}
	lines := []string{
		fmt.Sprintf("Date:       %s", date),
		fmt.Sprintf("Format:     %s (%d)", r.Format, r.Format.Code()),
		fmt.Sprintf("Confidence: %s", confidenceLabel(r.Confidence)),
	}
	if !r.AtLeast(m.minConfidence) {
		lines = append(lines, "Rejected")
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) summary(r chrono.Result) string {
	style := lipgloss.NewStyle().Foreground(confidenceColors[r.Confidence])
	if !r.OK() {
		return style.Render(r.Format.String())
	}
	return style.Render(fmt.Sprintf("%s  %s", r.Date, confidenceLabel(r.Confidence)))
}

func confidenceLabel(c chrono.Confidence) string {
	return strings.ToLower(c.String())
}
