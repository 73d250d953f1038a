package ui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unkn0wn-root/restforge/internal/builder"
	"github.com/unkn0wn-root/restforge/internal/config"
	"github.com/unkn0wn-root/restforge/internal/exportcfg"
	"github.com/unkn0wn-root/restforge/internal/outcome"
)

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}

// dispatchRequest assembles the current builder state and sends it. A
// second dispatch while one is in flight is rejected; esc cancels the
// running one first.
func (m *Model) dispatchRequest() tea.Cmd {
	if m.sending {
		m.setStatusMessage(statusMsg{
			text:  "Request already in flight (esc to cancel)",
			level: statusWarn,
		})
		return nil
	}

	m.commitRowEdit()
	m.syncStateFromInputs()
	outbound := builder.Assemble(m.state)

	sendCtx, sendCancel := context.WithCancel(context.Background())
	m.sendCancel = sendCancel
	m.sending = true
	m.result = outcome.Pending()
	m.latest = nil
	m.setStatusMessage(statusMsg{
		text:  fmt.Sprintf("%s %s", outbound.Method, outbound.URL),
		level: statusInfo,
	})

	client := m.client
	opts := m.httpOptions
	send := func() tea.Msg {
		defer sendCancel()
		resp, err := client.Execute(sendCtx, outbound, opts)
		return responseMsg{response: resp, err: err}
	}
	return tea.Batch(m.spin.Tick, send)
}

func (m *Model) cancelInFlightSend() {
	if m.sendCancel != nil {
		m.sendCancel()
		m.setStatusMessage(statusMsg{text: "Canceling in-progress request...", level: statusInfo})
	}
}

func (m *Model) handleResponseMessage(msg responseMsg) {
	m.sending = false
	m.sendCancel = nil

	if isCanceled(msg.err) {
		m.result = outcome.Idle()
		m.setStatusMessage(statusMsg{text: "Request canceled", level: statusInfo})
		m.refreshResponseView()
		return
	}

	m.latest = msg.response
	m.result = outcome.FromResponse(msg.response, msg.err)

	switch m.result.Phase {
	case outcome.PhaseSuccess:
		m.setStatusMessage(statusMsg{
			text: fmt.Sprintf(
				"%d %s in %s",
				m.result.Status,
				m.result.StatusText,
				m.result.Duration.Round(roundingUnit(m.result.Duration)),
			),
			level: statusSuccess,
		})
	case outcome.PhaseFailure:
		m.setStatusMessage(statusMsg{text: m.result.Message, level: statusError})
	}
	m.refreshResponseView()
}

// exportConfig snapshots the builder state to api-config.json in the
// configured export directory.
func (m *Model) exportConfig() tea.Cmd {
	m.commitRowEdit()
	m.syncStateFromInputs()
	state := m.state.Clone()
	dir := m.exportDir

	return func() tea.Msg {
		path, err := exportcfg.Save(state, dir)
		return exportResultMsg{path: path, err: err}
	}
}

// persistSettings writes the request options and export directory in
// effect right now back to the settings file, making them the defaults
// for future sessions.
func (m *Model) persistSettings() tea.Cmd {
	follow := m.httpOptions.FollowRedirects
	settings := config.Settings{
		ExportDir: m.exportDir,
		Request: config.RequestSettings{
			Timeout:         m.httpOptions.Timeout.String(),
			FollowRedirects: &follow,
			Insecure:        m.httpOptions.InsecureSkipVerify,
			ProxyURL:        m.httpOptions.ProxyURL,
		},
	}

	handle := m.cfg.SettingsHandle
	if handle.Path == "" {
		handle.Path = filepath.Join(config.Dir(), "settings.toml")
		handle.Format = config.SettingsFormatTOML
	}

	return func() tea.Msg {
		err := config.SaveSettings(settings, handle)
		return settingsSavedMsg{path: handle.Path, err: err}
	}
}

func (m *Model) handleSettingsSaved(msg settingsSavedMsg) {
	if msg.err != nil {
		m.setStatusMessage(statusMsg{
			text:  fmt.Sprintf("Save settings failed: %v", msg.err),
			level: statusError,
		})
		return
	}
	m.setStatusMessage(statusMsg{
		text:  fmt.Sprintf("Defaults saved to %s", msg.path),
		level: statusSuccess,
	})
}

func (m *Model) handleExportResult(msg exportResultMsg) {
	if msg.err != nil {
		m.setStatusMessage(statusMsg{
			text:  fmt.Sprintf("Export failed: %v", msg.err),
			level: statusError,
		})
		return
	}
	m.setStatusMessage(statusMsg{
		text:  fmt.Sprintf("Exported %s", msg.path),
		level: statusSuccess,
	})
}
