package pager

import (
	"net/url"
	"strconv"
	"strings"
)

// URL builds the link for page n: the placeholder in the pattern is replaced
// by n, retained query parameters are appended, then the fragment.
func (p Pager) URL(n int) string {
	u := strings.ReplaceAll(p.pattern, p.placeholder, strconv.Itoa(n))

	if p.retainQuery {
		if qs := p.retainedQuery(); qs != "" {
			sep := "?"
			if strings.Contains(u, "?") {
				sep = "&"
			}
			u = strings.Trim(u+sep+qs, "&")
		}
	}

	if p.fragment != "" {
		u += "#" + p.fragment
	}
	return u
}

// retainedQuery encodes the ambient query without the page parameter. Keys
// are sorted, so links are stable across renders.
func (p Pager) retainedQuery() string {
	if len(p.query) == 0 {
		return ""
	}
	q := make(url.Values, len(p.query))
	for k, vs := range p.query {
		if k == p.pageParam {
			continue
		}
		q[k] = vs
	}
	return q.Encode()
}
