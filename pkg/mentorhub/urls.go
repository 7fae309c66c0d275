package mentorhub

import (
	"net/url"
	"strings"
)

// queryParam is a single key=value pair. Parameters are encoded in slice
// order; the backend's generic routes document a fixed parameter ordering.
type queryParam struct {
	key   string
	value string
}

// buildURL joins the base URL with percent-encoded path segments and an
// ordered, percent-encoded query string.
func buildURL(base string, segments []string, params []queryParam) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	for _, seg := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(seg))
	}
	if len(params) > 0 {
		b.WriteByte('?')
		for i, p := range params {
			if i > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(p.key))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(p.value))
		}
	}
	return b.String()
}
