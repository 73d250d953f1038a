package builder

import "github.com/unkn0wn-root/restforge/internal/entry"

const exampleBody = `{
  "title": "restforge demo",
  "body": "constructed interactively",
  "userId": 1
}`

// Example returns the canned demonstration request. The shape is fixed;
// only the entry ids are fresh on each call.
func Example(ids entry.IDSource) State {
	headers := entry.NewList(ids)
	headers.Append("Content-Type", "application/json")
	headers.Append("Accept", "application/json")
	return State{
		Method:  MethodPost,
		BaseURL: "https://jsonplaceholder.typicode.com/posts",
		Query:   entry.NewList(ids),
		Headers: headers,
		Body:    exampleBody,
	}
}
