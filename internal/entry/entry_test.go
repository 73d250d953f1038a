package entry

import (
	"fmt"
	"reflect"
	"testing"
)

func counterIDs() IDSource {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestAddAssignsUniqueStableIDs(t *testing.T) {
	l := NewList(counterIDs())
	a := l.Add()
	b := l.Add()
	if a.ID == b.ID {
		t.Fatalf("ids must be distinct, both %q", a.ID)
	}

	l.Update(a.ID, FieldKey, "limit")
	l.Update(a.ID, FieldValue, "10")
	entries := l.Entries()
	if entries[0].ID != a.ID {
		t.Fatalf("id changed across edits: %q != %q", entries[0].ID, a.ID)
	}
	if entries[0].Key != "limit" || entries[0].Value != "10" {
		t.Fatalf("unexpected entry after update: %+v", entries[0])
	}
	if entries[1] != (Entry{ID: b.ID}) {
		t.Fatalf("update leaked into sibling row: %+v", entries[1])
	}
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	l := NewList(counterIDs())
	l.Append("a", "b")
	before := l.Entries()

	l.Update("missing", FieldKey, "x")
	l.Update("missing", FieldValue, "y")

	if !reflect.DeepEqual(before, l.Entries()) {
		t.Fatalf("stale-id update mutated the list: %+v", l.Entries())
	}
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	l := NewList(counterIDs())
	l.Append("a", "b")
	before := l.Entries()

	l.Remove("missing")

	if !reflect.DeepEqual(before, l.Entries()) {
		t.Fatalf("stale-id remove mutated the list: %+v", l.Entries())
	}
}

func TestAddThenRemoveRestoresList(t *testing.T) {
	l := NewList(counterIDs())
	l.Append("first", "1")
	l.Append("second", "2")
	before := l.Entries()

	added := l.Add()
	l.Remove(added.ID)

	if !reflect.DeepEqual(before, l.Entries()) {
		t.Fatalf("add+remove is not an inverse: %+v", l.Entries())
	}
}

func TestRemoveKeepsOrderAndIDs(t *testing.T) {
	l := NewList(counterIDs())
	a := l.Append("a", "1")
	b := l.Append("b", "2")
	c := l.Append("c", "3")

	l.Remove(b.ID)

	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != a.ID || entries[1].ID != c.ID {
		t.Fatalf("neighbour ids shifted: %+v", entries)
	}
}

func TestPairsFiltersBlankKeys(t *testing.T) {
	l := NewList(counterIDs())
	l.Append("", "orphan value")
	l.Append("  ", "whitespace key")
	l.Append("a", "b")

	pairs := l.Pairs()
	want := []Pair{{Key: "a", Value: "b"}}
	if !reflect.DeepEqual(pairs, want) {
		t.Fatalf("expected %+v, got %+v", want, pairs)
	}
}

func TestPairsTrimKeys(t *testing.T) {
	l := NewList(counterIDs())
	l.Append(" a ", "1")
	l.Append("b\t", "2")

	pairs := l.Pairs()
	want := []Pair{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}
	if !reflect.DeepEqual(pairs, want) {
		t.Fatalf("keys should be trimmed once in Pairs: %+v", pairs)
	}

	if l.Entries()[0].Key != " a " {
		t.Fatalf("trimming must not touch the editable row itself")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	l := NewList(counterIDs())
	a := l.Append("a", "1")

	clone := l.Clone()
	clone.Update(a.ID, FieldValue, "changed")

	if l.Entries()[0].Value != "1" {
		t.Fatalf("clone mutation reached the original")
	}
}
