package entry

import (
	"strings"

	"github.com/google/uuid"
)

// Field selects which half of an entry an update targets.
type Field int

const (
	FieldKey Field = iota
	FieldValue
)

// IDSource mints entry identifiers. The default is uuid-based; tests
// inject a deterministic counter.
type IDSource func() string

// Entry is a single editable key/value row. ID is assigned at creation,
// never reused, and stays stable while Key/Value are edited.
type Entry struct {
	ID    string
	Key   string
	Value string
}

// Pair is an entry stripped of its identity, ready for assembly or export.
type Pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// List is an ordered collection of entries. Rows are addressed by ID, not
// index, so removing a row never redirects an in-flight edit meant for a
// later one.
type List struct {
	entries []Entry
	newID   IDSource
}

func NewList(ids IDSource) *List {
	if ids == nil {
		ids = uuid.NewString
	}
	return &List{newID: ids}
}

// Add appends a fresh empty entry and returns it. Always succeeds.
func (l *List) Add() Entry {
	e := Entry{ID: l.newID()}
	l.entries = append(l.entries, e)
	return e
}

// Append adds a pre-filled entry, used when seeding defaults or loading a
// saved configuration.
func (l *List) Append(key, value string) Entry {
	e := Entry{ID: l.newID(), Key: key, Value: value}
	l.entries = append(l.entries, e)
	return e
}

// Update replaces exactly one field of the entry matching id, preserving
// its position. Unknown ids are ignored: a stale id from an already
// removed row must not land anywhere else.
func (l *List) Update(id string, field Field, value string) {
	for i := range l.entries {
		if l.entries[i].ID != id {
			continue
		}
		switch field {
		case FieldKey:
			l.entries[i].Key = value
		case FieldValue:
			l.entries[i].Value = value
		}
		return
	}
}

// Remove deletes the entry matching id. Unknown ids are a no-op; the
// remaining entries keep their ids and relative order.
func (l *List) Remove(id string) {
	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

func (l *List) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the rows in insertion order.
func (l *List) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Pairs returns the rows whose trimmed key is non-empty, order preserved.
// Blank-key rows are editing leftovers and are dropped silently. Keys are
// trimmed here so every consumer sees the same canonical form.
func (l *List) Pairs() []Pair {
	var out []Pair
	for _, e := range l.entries {
		key := strings.TrimSpace(e.Key)
		if key == "" {
			continue
		}
		out = append(out, Pair{Key: key, Value: e.Value})
	}
	return out
}

// Clone copies the rows into a new list sharing the same id source.
func (l *List) Clone() *List {
	clone := &List{newID: l.newID}
	clone.entries = make([]Entry, len(l.entries))
	copy(clone.entries, l.entries)
	return clone
}
