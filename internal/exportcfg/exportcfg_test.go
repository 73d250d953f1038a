package exportcfg

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/unkn0wn-root/restforge/internal/builder"
	"github.com/unkn0wn-root/restforge/internal/entry"
)

func testIDs() entry.IDSource {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestSerializeFiltersBlankKeys(t *testing.T) {
	state := builder.NewState(testIDs())
	state.BaseURL = "https://api.example.com"
	state.Headers = entry.NewList(testIDs())
	state.Headers.Append("", "orphan")
	state.Headers.Append("Accept", "application/json")

	data, err := Serialize(state)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if len(doc.Headers) != 1 || doc.Headers[0].Key != "Accept" {
		t.Fatalf("expected exactly the valid header, got %+v", doc.Headers)
	}
}

func TestSerializeTrimsKeysLikeAssembly(t *testing.T) {
	state := builder.NewState(testIDs())
	state.BaseURL = "https://api.example.com"
	state.Query.Append(" page ", "2")

	data, err := Serialize(state)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if len(doc.QueryParams) != 1 || doc.QueryParams[0].Key != "page" {
		t.Fatalf("exported key should match the assembled one, got %+v", doc.QueryParams)
	}

	out := builder.Assemble(state)
	if !strings.HasSuffix(out.URL, "?page=2") {
		t.Fatalf("assembly disagrees with export: %q", out.URL)
	}
}

func TestSerializeBodyOnlyForBodyBearingMethods(t *testing.T) {
	state := builder.NewState(testIDs())
	state.BaseURL = "https://api.example.com"
	state.Body = `{"a":1}`

	data, err := Serialize(state)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if strings.Contains(string(data), "requestBody") {
		t.Fatalf("GET config must omit requestBody:\n%s", data)
	}

	state.Method = builder.MethodPost
	data, err = Serialize(state)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if doc.RequestBody == nil || *doc.RequestBody != `{"a":1}` {
		t.Fatalf("POST config must carry the body, got %+v", doc.RequestBody)
	}
}

func TestSerializeStripsIDsAndIsDeterministic(t *testing.T) {
	state := builder.NewState(testIDs())
	state.BaseURL = "https://api.example.com"
	state.Query.Append("limit", "10")

	first, err := Serialize(state)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	second, err := Serialize(state)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("serialization must be deterministic")
	}
	if strings.Contains(strings.ToLower(string(first)), `"id"`) {
		t.Fatalf("ids must not leak into the document:\n%s", first)
	}
	if !strings.Contains(string(first), `"queryParams": [`) {
		t.Fatalf("expected array-shaped queryParams:\n%s", first)
	}
}

func TestEmptyListsSerializeAsArrays(t *testing.T) {
	state := builder.NewState(testIDs())
	state.Headers = entry.NewList(testIDs())

	data, err := Serialize(state)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if strings.Contains(string(data), "null") {
		t.Fatalf("empty collections must encode as [], got:\n%s", data)
	}
}

func TestSaveWritesUniquePaths(t *testing.T) {
	dir := t.TempDir()
	state := builder.NewState(testIDs())
	state.BaseURL = "https://api.example.com"

	first, err := Save(state, dir)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if filepath.Base(first) != DefaultFilename {
		t.Fatalf("expected default filename, got %q", first)
	}

	second, err := Save(state, dir)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if first == second {
		t.Fatalf("second save must not overwrite the first")
	}
	if _, err := os.Stat(second); err != nil {
		t.Fatalf("second file missing: %v", err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	state := builder.NewState(testIDs())
	state.Method = builder.MethodPatch
	state.BaseURL = "https://api.example.com/items/4"
	state.Query.Append("verbose", "true")
	state.Body = `{"name":"renamed"}`

	path, err := Save(state, dir)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path, testIDs())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Method != state.Method || loaded.BaseURL != state.BaseURL || loaded.Body != state.Body {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
	if !reflect.DeepEqual(loaded.Query.Pairs(), state.Query.Pairs()) {
		t.Fatalf("query params mismatch: %+v", loaded.Query.Pairs())
	}
	if !reflect.DeepEqual(loaded.Headers.Pairs(), state.Headers.Pairs()) {
		t.Fatalf("headers mismatch: %+v", loaded.Headers.Pairs())
	}
}

func TestLoadRejectsUnknownMethod(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	doc := `{"apiUrl":"https://x","apiMethod":"BREW","queryParams":[],"headers":[]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path, testIDs()); err == nil {
		t.Fatalf("expected error for unsupported method")
	}
}
