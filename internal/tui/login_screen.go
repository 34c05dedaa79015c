package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/breachtracker/internal/ctxutil"
)

func (m *model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case keyTab, keyShiftTab:
			if m.usernameInput.Focused() {
				m.usernameInput.Blur()
				m.passwordInput.Focus()
			} else {
				m.passwordInput.Blur()
				m.usernameInput.Focus()
			}
			return m, nil
		case keyEnter:
			return m, m.login()
		}
	}

	var cmd tea.Cmd
	if m.usernameInput.Focused() {
		m.usernameInput, cmd = m.usernameInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

// login accepts any credentials. The username only names the operator in
// log entries.
func (m *model) login() tea.Cmd {
	m.operator = strings.TrimSpace(m.usernameInput.Value())
	if m.operator != "" {
		m.ctx = ctxutil.WithOperator(m.ctx, m.operator)
	}
	m.passwordInput.Reset()
	m.usernameInput.Blur()
	m.passwordInput.Blur()
	m.logger.Info("operator logged in", "operator", m.operator)

	m.state = mainScreen
	m.setFocus(focusLocation)
	return m.loadBreachesCmd()
}

func (m *model) viewLogin() string {
	var b strings.Builder
	b.WriteString(m.theme.title.Render("Breach Tracker Login"))
	b.WriteString("\n")
	b.WriteString(m.inputLine("Username", m.usernameInput.View(), m.usernameInput.Focused()))
	b.WriteString(m.inputLine("Password", m.passwordInput.View(), m.passwordInput.Focused()))
	b.WriteString(m.theme.help.Render("tab: switch field • enter: login • ctrl+t: theme • ctrl+c: quit"))
	return b.String()
}

func (m *model) inputLine(label, view string, focused bool) string {
	style := m.theme.label
	if focused {
		style = m.theme.focused
	}
	return style.Render(label+":") + " " + view + "\n"
}
