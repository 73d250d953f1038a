package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/unkn0wn-root/restforge/internal/entry"
	"github.com/unkn0wn-root/restforge/internal/outcome"
)

const (
	formPaneHeight = 10
	chromeHeight   = 3 // header + tabs + status bar
)

func (m *Model) applyLayout() {
	inner := maxInt(m.width-4, 20)
	m.urlInput.Width = inner - 12
	m.keyInput.Width = inner/2 - 4
	m.valueInput.Width = inner/2 - 4
	m.bodyInput.SetWidth(inner)
	m.bodyInput.SetHeight(formPaneHeight - 2)

	responseHeight := maxInt(m.height-chromeHeight-formPaneHeight-4, 3)
	m.responseView.Width = inner
	m.responseView.Height = responseHeight
	m.refreshResponseView()
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	sections := []string{
		m.renderHeader(),
		m.renderRequestTabs(),
		m.renderFormPane(),
		m.renderResponsePane(),
		m.renderStatusBar(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	methodStyle := lipgloss.NewStyle().
		Foreground(m.theme.MethodColors.MethodColor(string(m.state.Method))).
		Bold(true)

	title := m.theme.HeaderTitle.Render(appTitle)
	if m.cfg.Version != "" {
		title += " " + m.theme.FormHint.Render(m.cfg.Version)
	}
	method := methodStyle.Render(string(m.state.Method))
	target := m.urlInput.Value()
	if strings.TrimSpace(target) == "" {
		target = m.theme.FormHint.Render("(no URL)")
	} else {
		target = m.theme.HeaderValue.Render(target)
	}

	line := fmt.Sprintf("%s  %s %s", title, method, target)
	return m.theme.Header.Render(truncateLine(line, maxInt(m.width-2, 10)))
}

func (m Model) renderRequestTabs() string {
	parts := make([]string, 0, 4)
	for tab := tabURL; tab <= tabBody; tab++ {
		label := tab.title()
		if tab == tabQuery {
			label = fmt.Sprintf("%s (%d)", label, len(m.state.Query.Pairs()))
		}
		if tab == tabHeaders {
			label = fmt.Sprintf("%s (%d)", label, len(m.state.Headers.Pairs()))
		}
		if tab == m.activeTab && m.focus == focusForm {
			parts = append(parts, m.theme.TabActive.Render(label))
			continue
		}
		parts = append(parts, m.theme.TabInactive.Render(label))
	}
	return m.theme.Tabs.Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

func (m Model) renderFormPane() string {
	border := m.theme.FormBorder
	if m.focus == focusForm {
		border = m.theme.FormBorderFocus
	}

	var content string
	switch m.activeTab {
	case tabURL:
		content = m.renderURLTab()
	case tabQuery:
		content = m.renderRowsTab(m.state.Query, "query parameter")
	case tabHeaders:
		content = m.renderRowsTab(m.state.Headers, "header")
	case tabBody:
		content = m.renderBodyTab()
	}

	inner := maxInt(m.width-4, 20)
	return border.Width(inner).Height(formPaneHeight).Render(content)
}

func (m Model) renderURLTab() string {
	var b strings.Builder
	b.WriteString(m.theme.FormLabel.Render("Request URL"))
	b.WriteString("\n")
	b.WriteString(m.urlInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.theme.FormHint.Render("enter send · ctrl+p cycle method"))
	return b.String()
}

func (m Model) renderRowsTab(list *entry.List, noun string) string {
	entries := list.Entries()
	if len(entries) == 0 {
		return m.theme.FormHint.Render(fmt.Sprintf("No %ss. Press a to add one.", noun))
	}

	var b strings.Builder
	visible := formPaneHeight - 2
	start := clampInt(m.rowCursor-visible+1, 0, maxInt(len(entries)-visible, 0))
	for i := start; i < len(entries) && i < start+visible; i++ {
		row := entries[i]
		if m.editing && row.ID == m.editingID {
			b.WriteString(fmt.Sprintf(
				"%s %s %s",
				m.theme.RowCursor.Render("▸"),
				m.keyInput.View(),
				m.valueInput.View(),
			))
			b.WriteString("\n")
			continue
		}

		line := fmt.Sprintf("%-24s %s", displayOr(row.Key, "(empty)"), row.Value)
		line = truncateLine(line, maxInt(m.width-8, 10))
		if i == m.rowCursor && m.focus == focusForm {
			b.WriteString(m.theme.RowCursor.Render("▸") + " " + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString(m.theme.FormHint.Render("a add · d delete · enter edit · ctrl+n key/value"))
	return b.String()
}

func (m Model) renderBodyTab() string {
	if !m.state.Method.BodyBearing() {
		hint := fmt.Sprintf(
			"%s requests carry no body. Draft below is kept but not sent.",
			m.state.Method,
		)
		return m.theme.FormHint.Render(hint) + "\n" + m.bodyInput.View()
	}
	return m.bodyInput.View()
}

func (m Model) renderResponsePane() string {
	border := m.theme.ResponseBorder
	if m.focus == focusResponse {
		border = border.BorderForeground(lipgloss.Color("#7D56F4"))
	}

	tabs := make([]string, 0, 3)
	for tab := responseTabPretty; tab <= responseTabHeaders; tab++ {
		if tab == m.responseTab {
			tabs = append(tabs, m.theme.TabActive.Render(tab.title()))
			continue
		}
		tabs = append(tabs, m.theme.TabInactive.Render(tab.title()))
	}
	tabLine := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	var body string
	if m.sending {
		body = centerContent(
			m.spin.View()+" Sending request...",
			m.responseView.Width,
			m.responseView.Height,
		)
	} else {
		body = m.theme.ResponseContent.Render(m.responseView.View())
	}

	inner := maxInt(m.width-4, 20)
	return border.Width(inner).Render(tabLine + "\n" + body)
}

func (m Model) renderStatusBar() string {
	level := m.theme.StatusBarValue
	switch m.statusLevel {
	case statusError:
		level = m.theme.Error
	case statusWarn:
		level = m.theme.Notification
	case statusSuccess:
		level = m.theme.Success
	}

	hints := m.theme.StatusBarKey.Render("ctrl+r") + " send  " +
		m.theme.StatusBarKey.Render("ctrl+s") + " export  " +
		m.theme.StatusBarKey.Render("ctrl+l") + " example  " +
		m.theme.StatusBarKey.Render("ctrl+d") + " defaults  " +
		m.theme.StatusBarKey.Render("ctrl+o") + " pane  " +
		m.theme.StatusBarKey.Render("ctrl+c") + " quit"

	status := level.Render(m.statusText)
	gap := maxInt(m.width-visibleWidth(hints)-visibleWidth(status)-4, 1)
	line := status + strings.Repeat(" ", gap) + hints
	return m.theme.StatusBar.Render(truncateLine(line, maxInt(m.width-2, 10)))
}

// refreshResponseView re-renders the viewport content for the active
// response tab. Called on every result change and on tab switches.
func (m *Model) refreshResponseView() {
	m.responseView.SetContent(m.responseContent())
	m.responseView.GotoTop()
}

func (m *Model) responseContent() string {
	switch m.result.Phase {
	case outcome.PhaseIdle:
		return centerContent(
			m.theme.FormHint.Render(noResponseMessage),
			m.responseView.Width,
			m.responseView.Height,
		)
	case outcome.PhasePending:
		return ""
	case outcome.PhaseFailure:
		return m.theme.Error.Render(m.result.Message)
	}

	switch m.responseTab {
	case responseTabPretty:
		return highlightJSON(m.result.Pretty)
	case responseTabRaw:
		if m.latest == nil {
			return ""
		}
		return string(m.latest.Body)
	case responseTabHeaders:
		return m.renderResponseHeaders()
	}
	return ""
}

func (m *Model) renderResponseHeaders() string {
	if m.latest == nil {
		return ""
	}

	names := make([]string, 0, len(m.latest.Headers))
	for name := range m.latest.Headers {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(m.theme.FormLabel.Render(m.latest.Proto+" "+m.latest.Status) + "\n")
	if m.latest.EffectiveURL != "" {
		b.WriteString(m.theme.FormHint.Render(m.latest.EffectiveURL) + "\n")
	}
	b.WriteString("\n")
	for _, name := range names {
		for _, value := range m.latest.Headers[name] {
			b.WriteString(m.theme.FormLabel.Render(name) + ": " + value + "\n")
		}
	}
	return b.String()
}

func displayOr(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
