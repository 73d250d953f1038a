package builder

import "github.com/unkn0wn-root/restforge/internal/entry"

type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodOptions Method = "OPTIONS"
	MethodHead    Method = "HEAD"
)

// Methods lists the supported verbs in cycling order.
func Methods() []Method {
	return []Method{
		MethodGet,
		MethodPost,
		MethodPut,
		MethodPatch,
		MethodDelete,
		MethodOptions,
		MethodHead,
	}
}

// BodyBearing reports whether a request body is semantically permitted.
func (m Method) BodyBearing() bool {
	switch m {
	case MethodPost, MethodPut, MethodPatch:
		return true
	}
	return false
}

// ParseMethod normalises a verb string, falling back to GET for anything
// outside the supported set.
func ParseMethod(raw string) (Method, bool) {
	for _, m := range Methods() {
		if string(m) == raw {
			return m, true
		}
	}
	return MethodGet, false
}

// State is the complete in-progress description of the request being
// constructed. It is owned by the interactive session and never shared.
type State struct {
	Method  Method
	BaseURL string
	Query   *entry.List
	Headers *entry.List
	Body    string
}

// NewState returns the initial builder: a GET with a single default header.
func NewState(ids entry.IDSource) State {
	headers := entry.NewList(ids)
	headers.Append("Content-Type", "application/json")
	return State{
		Method:  MethodGet,
		Query:   entry.NewList(ids),
		Headers: headers,
	}
}

// Clone deep-copies the state so snapshots do not alias the live lists.
func (s State) Clone() State {
	clone := s
	if s.Query != nil {
		clone.Query = s.Query.Clone()
	}
	if s.Headers != nil {
		clone.Headers = s.Headers.Clone()
	}
	return clone
}
