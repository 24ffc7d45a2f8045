package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		m.submit()
		return m, nil

	case "backspace", "ctrl+h":
		if m.editCursor > 0 {
			m.editBuffer = m.editBuffer[:m.editCursor-1] + m.editBuffer[m.editCursor:]
			m.editCursor--
		}

	case "delete", "ctrl+d":
		if m.editCursor < len(m.editBuffer) {
			m.editBuffer = m.editBuffer[:m.editCursor] + m.editBuffer[m.editCursor+1:]
		}

	case "left", "ctrl+b":
		if m.editCursor > 0 {
			m.editCursor--
		}

	case "right", "ctrl+f":
		if m.editCursor < len(m.editBuffer) {
			m.editCursor++
		}

	case "home", "ctrl+a":
		m.editCursor = 0

	case "end", "ctrl+e":
		m.editCursor = len(m.editBuffer)

	case "ctrl+k":
		// Kill to end of line
		m.editBuffer = m.editBuffer[:m.editCursor]

	case "ctrl+u":
		m.editBuffer = ""
		m.editCursor = 0

	default:
		// Dates are ASCII; anything longer than one byte is a key name.
		if s := msg.String(); len(s) == 1 {
			m.editBuffer = m.editBuffer[:m.editCursor] + s + m.editBuffer[m.editCursor:]
			m.editCursor++
		} else {
			return m, nil
		}
	}

	m.reinterpret()
	return m, nil
}
