// Package tui implements the interactive terminal interface for recording and
// browsing breaches.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/breachtracker/internal/ports/primary"
)

// Run starts the TUI and blocks until the user quits. The caller owns the
// service and closes it afterwards.
func Run(ctx context.Context, service primary.BreachService, opts Options) error {
	m := newModel(ctx, service, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case keyInterrupt:
			return m, tea.Quit
		case keyTheme:
			m.toggleTheme()
			return m, nil
		}

	case breachesLoadedMsg:
		m.breaches = msg.breaches
		m.table.SetRows(breachRows(msg.breaches))
		m.table.SetCursor(0)
		m.err = nil
		if msg.searched && msg.query != "" {
			m.status = fmt.Sprintf("%d match(es) for %q", len(msg.breaches), msg.query)
		} else {
			m.status = fmt.Sprintf("%d breach(es)", len(msg.breaches))
		}
		return m, nil

	case breachRecordedMsg:
		if msg.resp == nil || !msg.resp.Recorded {
			return m, nil
		}
		m.clearForm()
		m.logger.Debug("breach recorded from TUI", "breach_id", msg.resp.BreachID)
		return m, m.loadBreachesCmd()

	case errMsg:
		m.err = msg.err
		m.logger.Error("TUI operation failed", "error", msg.err)
		return m, nil
	}

	switch m.state {
	case loginScreen:
		return m.updateLogin(msg)
	case mainScreen:
		return m.updateMain(msg)
	case detailScreen:
		return m.updateDetail(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m *model) View() string {
	var body string
	switch m.state {
	case loginScreen:
		body = m.viewLogin()
	case mainScreen:
		body = m.viewMain()
	case detailScreen:
		body = m.viewDetail()
	}
	return m.theme.frame.Render(body)
}

func (m *model) resize(width, height int) {
	m.width, m.height = width, height
	m.table.SetColumns(breachColumns(width))
	if h := height - 14; h > 3 {
		m.table.SetHeight(h)
	}
}
