package api

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// KeyParam is the query parameter carrying the API key on every request.
const KeyParam = "pid"

// Endpoint identifies the regional API root a request is sent to.
type Endpoint struct {
	Host    string
	Version int
	APIKey  string
}

// BuildURI returns http://{host}/api/v{version}/{path}?{query}.
//
// The query always starts with pid. Caller params are merged over it, so a
// caller-supplied pid replaces the API key. Remaining keys are emitted in
// sorted order so equal inputs always produce the same URI (and cache key).
func BuildURI(e Endpoint, path string, params map[string]any) string {
	pid := e.APIKey
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if k == KeyParam {
			pid = formatValue(v)
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var q strings.Builder
	q.WriteString(KeyParam)
	q.WriteByte('=')
	q.WriteString(url.QueryEscape(pid))
	for _, k := range keys {
		q.WriteByte('&')
		q.WriteString(url.QueryEscape(k))
		q.WriteByte('=')
		q.WriteString(url.QueryEscape(formatValue(params[k])))
	}

	return fmt.Sprintf("http://%s/api/v%d/%s?%s", e.Host, e.Version, strings.TrimPrefix(path, "/"), q.String())
}

func formatValue(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
