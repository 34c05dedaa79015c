package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

var formLabels = [numFormFields]string{"Location", "Breach Type", "Impact"}

func (m *model) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case keyTab:
			m.setFocus((m.focus + 1) % numFocusTargets)
			return m, nil
		case keyShiftTab:
			m.setFocus((m.focus + numFocusTargets - 1) % numFocusTargets)
			return m, nil
		case keyEnter:
			return m, m.submit()
		case keyEsc:
			if m.focus == focusSearch && m.searchInput.Value() != "" {
				m.searchInput.Reset()
				return m, m.loadBreachesCmd()
			}
			return m, nil
		case keyQuit:
			if m.focus == focusTable {
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case focusTable:
		m.table, cmd = m.table.Update(msg)
	default:
		i := m.formIndex()
		m.formInputs[i], cmd = m.formInputs[i].Update(msg)
	}
	return m, cmd
}

// submit handles Enter for the focused component.
func (m *model) submit() tea.Cmd {
	switch m.focus {
	case focusSearch:
		return m.searchBreachesCmd(m.searchInput.Value())
	case focusTable:
		if len(m.breaches) == 0 {
			return nil
		}
		i := m.table.Cursor()
		if i < 0 || i >= len(m.breaches) {
			return nil
		}
		m.selected = m.breaches[i]
		m.state = detailScreen
		return nil
	default:
		return m.recordBreachCmd(m.formRequest())
	}
}

func (m *model) formIndex() int {
	return int(m.focus - focusLocation)
}

func (m *model) setFocus(f focusTarget) {
	m.focus = f
	m.searchInput.Blur()
	for i := range m.formInputs {
		m.formInputs[i].Blur()
	}
	m.table.Blur()

	switch f {
	case focusSearch:
		m.searchInput.Focus()
	case focusTable:
		m.table.Focus()
	default:
		m.formInputs[m.formIndex()].Focus()
	}
}

func (m *model) viewMain() string {
	var b strings.Builder
	b.WriteString(m.theme.title.Render("Data Breach Tracker"))
	b.WriteString("\n")
	b.WriteString(m.inputLine("Search", m.searchInput.View(), m.focus == focusSearch))
	b.WriteString("\n")
	for i, in := range m.formInputs {
		b.WriteString(m.inputLine(formLabels[i], in.View(), in.Focused()))
	}
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.theme.err.Render("Error: " + m.err.Error()))
	} else if m.status != "" {
		b.WriteString(m.theme.status.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.help.Render(
		"tab/shift+tab: focus • enter: submit/search/details • esc: clear search • ctrl+t: theme (" +
			m.theme.name + ") • ctrl+c: quit"))
	return b.String()
}
