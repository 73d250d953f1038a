// Package exportcfg converts builder state to and from the portable
// api-config.json document.
package exportcfg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/unkn0wn-root/restforge/internal/builder"
	"github.com/unkn0wn-root/restforge/internal/entry"
	"github.com/unkn0wn-root/restforge/internal/errdef"
)

const DefaultFilename = "api-config.json"

// Document is the wire shape. RequestBody is present only for
// body-bearing methods; entry ids never leave the process.
type Document struct {
	APIURL      string       `json:"apiUrl"`
	APIMethod   string       `json:"apiMethod"`
	QueryParams []entry.Pair `json:"queryParams"`
	Headers     []entry.Pair `json:"headers"`
	RequestBody *string      `json:"requestBody,omitempty"`
}

// Serialize renders the current builder state as an indented UTF-8 JSON
// document. Pure: no network or filesystem side effects.
func Serialize(state builder.State) ([]byte, error) {
	doc := Document{
		APIURL:      state.BaseURL,
		APIMethod:   string(state.Method),
		QueryParams: pairsOf(state.Query),
		Headers:     pairsOf(state.Headers),
	}
	if state.Method.BodyBearing() {
		body := state.Body
		doc.RequestBody = &body
	}

	buf := &bytes.Buffer{}
	encoder := json.NewEncoder(buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return nil, errdef.Wrap(errdef.CodeParse, err, "encode config")
	}
	return buf.Bytes(), nil
}

// empty lists serialize as [] rather than null.
func pairsOf(list *entry.List) []entry.Pair {
	if list == nil {
		return []entry.Pair{}
	}
	pairs := list.Pairs()
	if pairs == nil {
		return []entry.Pair{}
	}
	return pairs
}

// Save serializes state and writes it under dir, suffixing the filename
// when the target already exists. Returns the final path.
func Save(state builder.State, dir string) (string, error) {
	data, err := Serialize(state)
	if err != nil {
		return "", err
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errdef.Wrap(errdef.CodeFilesystem, err, "create export directory")
	}

	path, err := ensureUniquePath(filepath.Join(dir, DefaultFilename))
	if err != nil {
		return "", errdef.Wrap(errdef.CodeFilesystem, err, "resolve export path")
	}
	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return "", errdef.Wrap(errdef.CodeFilesystem, err, "write config %q", path)
	}
	return path, nil
}

// Load parses a previously exported document back into builder state,
// minting fresh entry ids.
func Load(path string, ids entry.IDSource) (builder.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return builder.State{}, errdef.Wrap(errdef.CodeFilesystem, err, "read config %q", path)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		return builder.State{}, errdef.Wrap(errdef.CodeParse, err, "parse config %q", path)
	}

	method, ok := builder.ParseMethod(doc.APIMethod)
	if !ok {
		return builder.State{}, errdef.New(errdef.CodeParse, "unsupported method %q in %q", doc.APIMethod, path)
	}

	state := builder.State{
		Method:  method,
		BaseURL: doc.APIURL,
		Query:   entry.NewList(ids),
		Headers: entry.NewList(ids),
	}
	for _, pair := range doc.QueryParams {
		state.Query.Append(pair.Key, pair.Value)
	}
	for _, pair := range doc.Headers {
		state.Headers.Append(pair.Key, pair.Value)
	}
	if doc.RequestBody != nil && method.BodyBearing() {
		state.Body = *doc.RequestBody
	}
	return state, nil
}

func ensureUniquePath(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return path, nil
		}
		return "", err
	}
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := base[:len(base)-len(ext)]
	for i := 1; i < 1000; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not create unique path for %s", path)
}

// write to temp file then rename so readers never see partial data.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".restforge-export-*.tmp")
	if err != nil {
		return err
	}

	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
