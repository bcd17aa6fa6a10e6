package transport

import (
	"net/url"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Query is an insertion-ordered set of query parameters. Unlike url.Values it
// keeps keys in the order they were first added and allows a key to repeat, one
// pair per value.
type Query struct {
	params *orderedmap.OrderedMap[string, []string]
}

func NewQuery() *Query {
	return &Query{params: orderedmap.New[string, []string]()}
}

// Set replaces any values held for key. A replaced key keeps its original position.
func (q *Query) Set(key, value string) *Query {
	q.params.Set(key, []string{value})
	return q
}

// Add appends values to key. Calling it without values is a no-op, so empty lists
// never produce a parameter.
func (q *Query) Add(key string, values ...string) *Query {
	if len(values) == 0 {
		return q
	}
	existing, _ := q.params.Get(key)
	q.params.Set(key, append(existing, values...))
	return q
}

// Get returns the values held for key in insertion order.
func (q *Query) Get(key string) []string {
	values, _ := q.params.Get(key)
	return values
}

func (q *Query) Len() int {
	if q == nil || q.params == nil {
		return 0
	}
	return q.params.Len()
}

// Encode renders the query as key=value pairs joined by "&". Repeated keys are
// emitted once per value, never comma-joined.
func (q *Query) Encode() string {
	if q.Len() == 0 {
		return ""
	}

	var sb strings.Builder
	for pair := q.params.Oldest(); pair != nil; pair = pair.Next() {
		key := url.QueryEscape(pair.Key)
		for _, v := range pair.Value {
			if sb.Len() > 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(key)
			sb.WriteByte('=')
			sb.WriteString(url.QueryEscape(v))
		}
	}
	return sb.String()
}

// BuildURLWithQuery appends the encoded query to path. The path is returned as is
// when the query is nil or empty.
func BuildURLWithQuery(path string, q *Query) string {
	encoded := q.Encode()
	if encoded == "" {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + encoded
}
