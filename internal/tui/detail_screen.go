package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case keyEsc, keyBack, keyEnter, keyQuit:
			m.selected = nil
			m.state = mainScreen
			m.setFocus(focusTable)
		}
	}
	return m, nil
}

func (m *model) viewDetail() string {
	var b strings.Builder
	b.WriteString(m.theme.title.Render("Breach Details"))
	b.WriteString("\n")
	if m.selected != nil {
		b.WriteString(m.detailLine("ID", fmt.Sprintf("%d", m.selected.ID)))
		b.WriteString(m.detailLine("Location", m.selected.Location))
		b.WriteString(m.detailLine("Breach Type", m.selected.BreachType))
		b.WriteString(m.detailLine("Impact", m.selected.Impact))
	}
	b.WriteString(m.theme.help.Render("esc/b: back • ctrl+c: quit"))
	return b.String()
}

func (m *model) detailLine(label, value string) string {
	return m.theme.label.Render(label+":") + " " + value + "\n"
}
