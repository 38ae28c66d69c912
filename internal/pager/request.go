package pager

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Request is the slice of the hosting request a Pager depends on: the active
// page and the ambient query parameters used by RetainQueryString.
type Request struct {
	Page  int
	Query url.Values
	// PageParam names the query parameter that carries the page number.
	// Empty means DefaultPageParam.
	PageParam string
}

// RequestFromValues builds a Request from query parameters. The page is read
// from param (DefaultPageParam when empty); missing or non-numeric values
// default to 1.
func RequestFromValues(q url.Values, param string) Request {
	if param == "" {
		param = DefaultPageParam
	}
	return Request{
		Page:      ParsePage(q.Get(param)),
		Query:     q,
		PageParam: param,
	}
}

// ParsePage converts a raw page value to a page number. Integers and decimal
// numbers are accepted (decimals truncate) and capped at MaxInt32; anything
// else, and any result below 1, yields 1.
func ParsePage(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return min(max(n, 1), math.MaxInt32)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 1
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return max(int(f), 1)
}
