package builder

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/unkn0wn-root/restforge/internal/entry"
)

// Outbound is the finalized, immutable request descriptor ready for
// dispatch. HeaderOrder keeps first-write insertion order for transports
// and displays that care about it.
type Outbound struct {
	Method      Method
	URL         string
	Headers     http.Header
	HeaderOrder []string
	Body        string
	HasBody     bool
}

// Assemble derives an Outbound from the current builder state. Pure: equal
// states produce equal descriptors, and the state is never mutated.
//
// Blank-key query and header rows are dropped silently. The base URL is
// used verbatim; a malformed URL surfaces as a transport failure at
// dispatch time, not here.
func Assemble(state State) Outbound {
	out := Outbound{
		Method:  state.Method,
		URL:     state.BaseURL,
		Headers: make(http.Header),
	}

	if qs := encodeQuery(state.Query); qs != "" {
		out.URL = state.BaseURL + "?" + qs
	}

	if state.Headers != nil {
		for _, pair := range state.Headers.Pairs() {
			name := http.CanonicalHeaderKey(pair.Key)
			if _, seen := out.Headers[name]; !seen {
				out.HeaderOrder = append(out.HeaderOrder, name)
			}
			// last write wins on duplicate names, standard header merge.
			out.Headers.Set(name, pair.Value)
		}
	}

	if state.Method.BodyBearing() && strings.TrimSpace(state.Body) != "" {
		out.Body = state.Body
		out.HasBody = true
	}

	return out
}

// encodeQuery builds an application/x-www-form-urlencoded query string,
// preserving row insertion order (url.Values.Encode would sort keys).
func encodeQuery(list *entry.List) string {
	if list == nil {
		return ""
	}
	pairs := list.Pairs()
	if len(pairs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, pair := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(pair.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(pair.Value))
	}
	return b.String()
}
