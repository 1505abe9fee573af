package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/vitalog/internal/app"
	"github.com/alexanderramin/vitalog/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// overviewLoadedMsg signals that the overview has been recomputed.
type overviewLoadedMsg struct {
	overview *app.Overview
	err      error
}

type dashboardKeys struct {
	Refresh key.Binding
	Quit    key.Binding
}

var defaultDashboardKeys = dashboardKeys{
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// dashboardModel is a live view of the status overview. Each refresh
// rescores the latest records and appends a snapshot, same as the
// status command.
type dashboardModel struct {
	app      *App
	keys     dashboardKeys
	spin     spinner.Model
	loading  bool
	overview *app.Overview
	err      error
}

func newDashboardModel(a *App) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(formatter.ColorPurple)
	return dashboardModel{
		app:     a,
		keys:    defaultDashboardKeys,
		spin:    s,
		loading: true,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.load())
}

func (m dashboardModel) load() tea.Cmd {
	a := m.app
	return func() tea.Msg {
		overview, err := a.Status.Overview(context.Background())
		return overviewLoadedMsg{overview: overview, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			if !m.loading {
				m.loading = true
				return m, tea.Batch(m.spin.Tick, m.load())
			}
		}
		return m, nil

	case overviewLoadedMsg:
		m.loading = false
		m.overview = msg.overview
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m dashboardModel) View() string {
	if m.loading {
		return fmt.Sprintf("\n  %s %s\n", m.spin.View(), formatter.Dim("scoring check-ins..."))
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render(m.err.Error()) + "\n"
	}

	help := formatter.Dim("r refresh · q quit")
	return "\n" + formatter.FormatOverview(m.overview) + "\n" + help + "\n"
}
