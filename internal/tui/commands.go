package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/breachtracker/internal/ports/primary"
)

func (m *model) loadBreachesCmd() tea.Cmd {
	ctx, service := m.ctx, m.service
	return func() tea.Msg {
		breaches, err := service.ListBreaches(ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return breachesLoadedMsg{breaches: breaches}
	}
}

func (m *model) searchBreachesCmd(query string) tea.Cmd {
	ctx, service := m.ctx, m.service
	return func() tea.Msg {
		breaches, err := service.SearchBreaches(ctx, query)
		if err != nil {
			return errMsg{err: err}
		}
		return breachesLoadedMsg{breaches: breaches, query: query, searched: true}
	}
}

func (m *model) recordBreachCmd(req primary.RecordBreachRequest) tea.Cmd {
	ctx, service := m.ctx, m.service
	return func() tea.Msg {
		resp, err := service.RecordBreach(ctx, req)
		if err != nil {
			return errMsg{err: err}
		}
		return breachRecordedMsg{resp: resp}
	}
}
