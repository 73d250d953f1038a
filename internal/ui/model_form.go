package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unkn0wn-root/restforge/internal/builder"
	"github.com/unkn0wn-root/restforge/internal/entry"
	"github.com/unkn0wn-root/restforge/internal/outcome"
)

func (m *Model) nextRequestTab() {
	m.commitRowEdit()
	m.activeTab = (m.activeTab + 1) % 4
	m.applyTabFocus()
}

func (m *Model) prevRequestTab() {
	m.commitRowEdit()
	m.activeTab = (m.activeTab + 3) % 4
	m.applyTabFocus()
}

// applyTabFocus moves widget focus to whatever the active tab edits
// directly. Row inputs on Query/Headers only focus once a row is opened.
func (m *Model) applyTabFocus() {
	m.urlInput.Blur()
	m.bodyInput.Blur()
	m.keyInput.Blur()
	m.valueInput.Blur()
	m.editing = false
	m.editingID = ""
	m.rowCursor = 0

	if m.focus != focusForm {
		return
	}
	switch m.activeTab {
	case tabURL:
		m.urlInput.Focus()
	case tabBody:
		m.bodyInput.Focus()
	}
}

func (m *Model) cycleMethod() {
	methods := builder.Methods()
	for i, method := range methods {
		if method == m.state.Method {
			m.state.Method = methods[(i+1)%len(methods)]
			m.setStatusMessage(statusMsg{
				text:  fmt.Sprintf("Method: %s", m.state.Method),
				level: statusInfo,
			})
			return
		}
	}
	m.state.Method = methods[0]
}

func (m *Model) moveRowCursor(delta int) {
	list := m.activeList()
	if list == nil || list.Len() == 0 {
		m.rowCursor = 0
		return
	}
	m.rowCursor = clampInt(m.rowCursor+delta, 0, list.Len()-1)
}

func (m *Model) addRow() {
	list := m.activeList()
	if list == nil {
		return
	}
	m.commitRowEdit()
	added := list.Add()
	m.rowCursor = list.Len() - 1
	m.beginRowEdit(added)
}

func (m *Model) removeRow() {
	list := m.activeList()
	if list == nil || list.Len() == 0 {
		return
	}
	entries := list.Entries()
	if m.rowCursor >= len(entries) {
		return
	}
	removed := entries[m.rowCursor]
	if m.editingID == removed.ID {
		m.abortRowEdit()
	}
	list.Remove(removed.ID)
	if m.rowCursor >= list.Len() && m.rowCursor > 0 {
		m.rowCursor--
	}
}

func (m *Model) openSelectedRow() {
	list := m.activeList()
	if list == nil || list.Len() == 0 {
		return
	}
	entries := list.Entries()
	if m.rowCursor >= len(entries) {
		return
	}
	m.beginRowEdit(entries[m.rowCursor])
}

func (m *Model) beginRowEdit(row entry.Entry) {
	m.editing = true
	m.editingID = row.ID
	m.editTarget = entry.FieldKey
	m.keyInput.SetValue(row.Key)
	m.valueInput.SetValue(row.Value)
	m.keyInput.Focus()
	m.valueInput.Blur()
	m.keyInput.CursorEnd()
}

// switchRowEditField flips focus between the key and value inputs of the
// open row, committing nothing yet.
func (m *Model) switchRowEditField() {
	if !m.editing {
		return
	}
	if m.editTarget == entry.FieldKey {
		m.editTarget = entry.FieldValue
		m.keyInput.Blur()
		m.valueInput.Focus()
		m.valueInput.CursorEnd()
		return
	}
	m.editTarget = entry.FieldKey
	m.valueInput.Blur()
	m.keyInput.Focus()
	m.keyInput.CursorEnd()
}

// commitRowEdit writes both fields of the open row back into the list.
// Updates are id-addressed so a row removed mid-edit is a harmless no-op.
func (m *Model) commitRowEdit() {
	if !m.editing {
		return
	}
	list := m.activeList()
	if list != nil {
		list.Update(m.editingID, entry.FieldKey, m.keyInput.Value())
		list.Update(m.editingID, entry.FieldValue, m.valueInput.Value())
	}
	m.closeRowEdit()
}

func (m *Model) abortRowEdit() {
	m.closeRowEdit()
}

func (m *Model) closeRowEdit() {
	m.editing = false
	m.editingID = ""
	m.keyInput.Blur()
	m.valueInput.Blur()
	m.keyInput.SetValue("")
	m.valueInput.SetValue("")
}

// loadExample replaces the whole builder state with the demo request and
// resets the result pane.
func (m *Model) loadExample() {
	m.abortRowEdit()
	m.state = builder.Example(m.ids)
	m.urlInput.SetValue(m.state.BaseURL)
	m.bodyInput.SetValue(m.state.Body)
	m.result = outcome.Idle()
	m.latest = nil
	m.rowCursor = 0
	m.setStatusMessage(statusMsg{text: "Example request loaded", level: statusInfo})
}

func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.editing && m.editTarget == entry.FieldKey:
		m.keyInput, cmd = m.keyInput.Update(msg)
	case m.editing:
		m.valueInput, cmd = m.valueInput.Update(msg)
	case m.activeTab == tabURL:
		m.urlInput, cmd = m.urlInput.Update(msg)
	case m.activeTab == tabBody:
		m.bodyInput, cmd = m.bodyInput.Update(msg)
	}
	return cmd
}
