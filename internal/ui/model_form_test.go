package ui

import (
	"testing"

	"github.com/unkn0wn-root/restforge/internal/builder"
	"github.com/unkn0wn-root/restforge/internal/outcome"
)

func TestAddRowOpensEditor(t *testing.T) {
	m := newTestModel(t)
	m.activeTab = tabQuery

	m.addRow()

	if m.state.Query.Len() != 1 {
		t.Fatalf("expected one query row, got %d", m.state.Query.Len())
	}
	if !m.editing {
		t.Fatalf("adding a row should open it for editing")
	}
	if m.rowCursor != 0 {
		t.Fatalf("cursor should sit on the new row, got %d", m.rowCursor)
	}
}

func TestCommitRowEditWritesBothFields(t *testing.T) {
	m := newTestModel(t)
	m.activeTab = tabQuery
	m.addRow()

	m.keyInput.SetValue("limit")
	m.valueInput.SetValue("10")
	m.commitRowEdit()

	entries := m.state.Query.Entries()
	if len(entries) != 1 || entries[0].Key != "limit" || entries[0].Value != "10" {
		t.Fatalf("unexpected entries after commit: %+v", entries)
	}
	if m.editing {
		t.Fatalf("commit should close the editor")
	}
}

func TestAbortRowEditKeepsOriginal(t *testing.T) {
	m := newTestModel(t)
	m.activeTab = tabHeaders
	m.state.Headers.Append("Accept", "application/json")
	m.rowCursor = m.state.Headers.Len() - 1

	m.openSelectedRow()
	m.keyInput.SetValue("Mangled")
	m.abortRowEdit()

	entries := m.state.Headers.Entries()
	last := entries[len(entries)-1]
	if last.Key != "Accept" {
		t.Fatalf("abort should not touch the row, got %q", last.Key)
	}
}

func TestRemoveRowClampsCursor(t *testing.T) {
	m := newTestModel(t)
	m.activeTab = tabQuery
	m.state.Query.Append("a", "1")
	m.state.Query.Append("b", "2")
	m.rowCursor = 1

	m.removeRow()

	if m.state.Query.Len() != 1 {
		t.Fatalf("expected one row left, got %d", m.state.Query.Len())
	}
	if m.rowCursor != 0 {
		t.Fatalf("cursor should clamp to remaining rows, got %d", m.rowCursor)
	}
}

func TestRemoveRowWhileEditingAborts(t *testing.T) {
	m := newTestModel(t)
	m.activeTab = tabQuery
	m.addRow()

	m.removeRow()

	if m.editing {
		t.Fatalf("removing the edited row should close the editor")
	}
	if m.state.Query.Len() != 0 {
		t.Fatalf("row should be gone, got %d", m.state.Query.Len())
	}
}

func TestCycleMethodAdvances(t *testing.T) {
	m := newTestModel(t)
	if m.state.Method != builder.MethodGet {
		t.Fatalf("default method should be GET")
	}

	m.cycleMethod()
	if m.state.Method != builder.MethodPost {
		t.Fatalf("expected POST after one cycle, got %s", m.state.Method)
	}
}

func TestLoadExampleResetsResult(t *testing.T) {
	m := newTestModel(t)
	m.result = outcome.Pending()

	m.loadExample()

	if m.result.Phase != outcome.PhaseIdle {
		t.Fatalf("example load should reset the result pane")
	}
	if m.state.Method != builder.MethodPost {
		t.Fatalf("example should be a POST, got %s", m.state.Method)
	}
	if m.urlInput.Value() != m.state.BaseURL {
		t.Fatalf("url input should mirror the example state")
	}
	if m.state.Headers.Len() != 2 {
		t.Fatalf("example should carry two headers, got %d", m.state.Headers.Len())
	}
}

func TestSyncStateFromInputs(t *testing.T) {
	m := newTestModel(t)
	m.urlInput.SetValue("https://api.test/items")
	m.bodyInput.SetValue(`{"name":"x"}`)

	m.syncStateFromInputs()

	if m.state.BaseURL != "https://api.test/items" {
		t.Fatalf("base url not synced: %q", m.state.BaseURL)
	}
	if m.state.Body != `{"name":"x"}` {
		t.Fatalf("body not synced: %q", m.state.Body)
	}
}
