package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, textarea.Blink)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		if !m.ready {
			m.ready = true
		}
		m.applyLayout()

	case tea.KeyMsg:
		if cmd := m.handleKey(typed); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case responseMsg:
		m.handleResponseMessage(typed)

	case statusMsg:
		m.setStatusMessage(typed)

	case exportResultMsg:
		m.handleExportResult(typed)

	case settingsSavedMsg:
		m.handleSettingsSaved(typed)

	case spinner.TickMsg:
		if m.sending {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(typed)
			cmds = append(cmds, cmd)
		}

	default:
		if cmd := m.updateFocusedInput(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		m.cancelInFlightSend()
		return tea.Quit

	case "tab":
		if m.focus == focusForm {
			m.nextRequestTab()
			return nil
		}
		m.responseTab = (m.responseTab + 1) % 3
		m.refreshResponseView()
		return nil

	case "shift+tab":
		if m.focus == focusForm {
			m.prevRequestTab()
			return nil
		}
		m.responseTab = (m.responseTab + 2) % 3
		m.refreshResponseView()
		return nil

	case "ctrl+o":
		m.toggleFocus()
		return nil

	case "ctrl+r":
		return m.dispatchRequest()

	case "ctrl+p":
		m.cycleMethod()
		return nil

	case "ctrl+l":
		m.loadExample()
		return nil

	case "ctrl+s":
		return m.exportConfig()

	case "ctrl+d":
		return m.persistSettings()

	case "esc":
		if m.editing {
			m.abortRowEdit()
			return nil
		}
		if m.sending {
			m.cancelInFlightSend()
			return nil
		}
		if m.focus == focusResponse {
			m.toggleFocus()
		}
		return nil
	}

	if m.focus == focusResponse {
		var cmd tea.Cmd
		m.responseView, cmd = m.responseView.Update(msg)
		return cmd
	}

	return m.handleFormKey(msg)
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	if m.editing {
		switch key {
		case "enter":
			m.commitRowEdit()
			return nil
		case "ctrl+n":
			m.switchRowEditField()
			return nil
		}
		return m.updateFocusedInput(msg)
	}

	switch m.activeTab {
	case tabURL:
		if key == "enter" {
			return m.dispatchRequest()
		}
		return m.updateFocusedInput(msg)

	case tabBody:
		return m.updateFocusedInput(msg)

	case tabQuery, tabHeaders:
		switch key {
		case "up", "k":
			m.moveRowCursor(-1)
		case "down", "j":
			m.moveRowCursor(1)
		case "enter":
			m.openSelectedRow()
		case "a":
			m.addRow()
		case "d":
			m.removeRow()
		}
	}
	return nil
}

func (m *Model) toggleFocus() {
	if m.focus == focusForm {
		m.commitRowEdit()
		m.focus = focusResponse
		m.urlInput.Blur()
		m.bodyInput.Blur()
		return
	}
	m.focus = focusForm
	m.applyTabFocus()
}
