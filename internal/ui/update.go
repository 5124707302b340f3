package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case spinner.TickMsg:
		if !m.refreshInFlight {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		return m, tea.Batch(m.startRefresh(), scheduleTick(m.autoRefresh))

	case toastTickMsg:
		if !m.toast.visible() {
			m.toast = toast{}
			return m, nil
		}
		return m, scheduleToastTick()

	case incidentsLoadedMsg:
		m.applyRefresh(msg)
		return m, nil

	case incidentCreatedMsg:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd

	case showAlertMsg:
		m.alert = NewAlertOverlay(msg.text)
		return m, nil

	case AlertDismissedMsg:
		m.alert = nil
		if m.formVisible {
			return m, m.form.Focus()
		}
		return m, nil

	case DetailClosedMsg:
		m.closeDetail()
		return m, nil

	case FormHiddenMsg:
		m.formVisible = false
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	if m.formVisible && m.alert == nil {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}

	if m.alert != nil {
		var cmd tea.Cmd
		m.alert, cmd = m.alert.Update(msg)
		return cmd
	}

	if m.formVisible {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return cmd
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Escape) {
			m.showHelp = false
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return nil
	case key.Matches(msg, m.keys.NewIncident):
		return m.openForm()
	case key.Matches(msg, m.keys.Refresh):
		return m.forceRefresh()
	case key.Matches(msg, m.keys.Copy):
		return m.copySelectedID()
	case key.Matches(msg, m.keys.Theme):
		return m.cycleTheme()
	}

	if m.detailOpen() {
		if key.Matches(msg, m.keys.Enter) {
			m.selectCurrent()
			return nil
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.list.Move(-1)
	case key.Matches(msg, m.keys.Down):
		m.list.Move(1)
	case key.Matches(msg, m.keys.PageUp):
		m.list.Move(-m.listPageSize())
	case key.Matches(msg, m.keys.PageDown):
		m.list.Move(m.listPageSize())
	case key.Matches(msg, m.keys.Home):
		m.list.Top()
	case key.Matches(msg, m.keys.End):
		m.list.Bottom()
	case key.Matches(msg, m.keys.Enter):
		m.selectCurrent()
	}
	return nil
}

func (m *App) listPageSize() int {
	return max(m.bodyHeight()-paneBorderPadding, 1)
}
