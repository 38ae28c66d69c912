// Package pager computes a bounded window of page links for a paginated
// collection and renders it as Bootstrap 4 navigation markup.
//
// A Pager is an immutable value: every setter returns a modified copy, so a
// configured Pager can be shared as a template and specialised per request.
//
//	p := pager.New(pager.RequestFromValues(r.URL.Query(), "page")).
//		Total(1000).
//		PerPage(20).
//		RetainQueryString()
//	html := p.Render()
package pager

import (
	"net/url"
	"strings"
)

// Defaults applied by New.
const (
	DefaultPerPage         = 20
	DefaultAroundActive    = 2
	DefaultBeforeSeparator = 2
	DefaultSeparator       = "..."
	DefaultPreviousText    = "Previous"
	DefaultNextText        = "Next"
	DefaultPattern         = "?page=(:num)"
	DefaultPlaceholder     = "(:num)"
	DefaultPageParam       = "page"
)

// Size is the Bootstrap size class of the navigation container.
type Size string

const (
	SizeSmall  Size = "pagination-sm"
	SizeMedium Size = "pagination-md"
	SizeLarge  Size = "pagination-lg"
)

// Justify is the Bootstrap flex alignment class of the link list.
type Justify string

const (
	JustifyNone   Justify = ""
	JustifyStart  Justify = "justify-content-start"
	JustifyCenter Justify = "justify-content-center"
	JustifyEnd    Justify = "justify-content-end"
)

// Pager holds the configuration of a page window. The zero value is not
// useful; construct one with New.
type Pager struct {
	totalItems      int
	perPage         int
	page            int
	aroundActive    int
	beforeSeparator int
	separator       string
	hideSeparator   bool
	previousText    string
	nextText        string
	hidePrevious    bool
	hideNext        bool
	screenReader    bool
	pagePrefix      string
	pageSuffix      string
	pattern         string
	placeholder     string
	pageParam       string
	retainQuery     bool
	fragment        string
	navigationID    string
	size            Size
	justify         Justify
	query           url.Values
}

// New returns a Pager with the default configuration, positioned on the page
// carried by req. Query parameters in req are only used when
// RetainQueryString is enabled.
func New(req Request) Pager {
	p := Pager{
		perPage:         DefaultPerPage,
		aroundActive:    DefaultAroundActive,
		beforeSeparator: DefaultBeforeSeparator,
		separator:       DefaultSeparator,
		previousText:    DefaultPreviousText,
		nextText:        DefaultNextText,
		screenReader:    true,
		pattern:         DefaultPattern,
		placeholder:     DefaultPlaceholder,
		pageParam:       DefaultPageParam,
		size:            SizeMedium,
	}
	return p.WithRequest(req)
}

// WithRequest returns p positioned on req's page, carrying req's query
// parameters. A configured Pager can be kept as a template and bound to each
// incoming request with WithRequest.
func (p Pager) WithRequest(req Request) Pager {
	p.query = cloneValues(req.Query)
	if req.PageParam != "" {
		p.pageParam = req.PageParam
	}
	return p.Page(req.Page)
}

// Total sets the number of items in the collection. Negative values count as 0.
func (p Pager) Total(n int) Pager {
	p.totalItems = max(n, 0)
	return p
}

// PerPage sets the number of items per page. Values below 1 yield zero total
// pages and therefore an empty window.
func (p Pager) PerPage(n int) Pager {
	p.perPage = n
	return p
}

// Page sets the active page. Values below 1 are clamped to 1.
func (p Pager) Page(n int) Pager {
	p.page = max(n, 1)
	return p
}

// AroundActive sets how many pages are shown on each side of the active page.
func (p Pager) AroundActive(n int) Pager {
	p.aroundActive = max(n, 0)
	return p
}

// BeforeSeparator sets how many pages are shown at each end of the range
// before a separator.
func (p Pager) BeforeSeparator(n int) Pager {
	p.beforeSeparator = max(n, 0)
	return p
}

// Separator sets the truncation marker text.
func (p Pager) Separator(s string) Pager {
	p.separator = s
	return p
}

func (p Pager) ShowSeparator() Pager {
	p.hideSeparator = false
	return p
}

func (p Pager) HideSeparator() Pager {
	p.hideSeparator = true
	return p
}

// NextText sets the label of the next-page link. Labels are HTML-escaped
// when rendered; use the literal character rather than an entity.
func (p Pager) NextText(s string) Pager {
	p.nextText = s
	return p
}

// PreviousText sets the label of the previous-page link.
func (p Pager) PreviousText(s string) Pager {
	p.previousText = s
	return p
}

func (p Pager) ShowNext() Pager {
	p.hideNext = false
	return p
}

func (p Pager) HideNext() Pager {
	p.hideNext = true
	return p
}

func (p Pager) ShowPrevious() Pager {
	p.hidePrevious = false
	return p
}

func (p Pager) HidePrevious() Pager {
	p.hidePrevious = true
	return p
}

// ScreenReader toggles the visually hidden duplicate labels.
func (p Pager) ScreenReader(on bool) Pager {
	p.screenReader = on
	return p
}

// PagePrefix sets text placed before each page number label.
func (p Pager) PagePrefix(s string) Pager {
	p.pagePrefix = s
	return p
}

// PageSuffix sets text placed after each page number label.
func (p Pager) PageSuffix(s string) Pager {
	p.pageSuffix = s
	return p
}

// Pattern sets the link pattern. The page number replaces every occurrence of
// placeholder; an empty placeholder keeps the current one.
func (p Pager) Pattern(pattern, placeholder string) Pager {
	p.pattern = pattern
	if placeholder != "" {
		p.placeholder = placeholder
	}
	return p
}

// RetainQueryString carries the request's query parameters, except the page
// parameter, into every generated link.
func (p Pager) RetainQueryString() Pager {
	p.retainQuery = true
	return p
}

func (p Pager) DismissQueryString() Pager {
	p.retainQuery = false
	return p
}

// Fragment sets the URL fragment appended to every link. Empty disables it.
func (p Pager) Fragment(s string) Pager {
	p.fragment = strings.TrimPrefix(s, "#")
	return p
}

// NavigationID sets the id attribute of the nav element.
func (p Pager) NavigationID(s string) Pager {
	p.navigationID = s
	return p
}

func (p Pager) Small() Pager  { return p.withSize(SizeSmall) }
func (p Pager) Medium() Pager { return p.withSize(SizeMedium) }
func (p Pager) Large() Pager  { return p.withSize(SizeLarge) }

func (p Pager) AlignLeft() Pager   { return p.withJustify(JustifyStart) }
func (p Pager) AlignCenter() Pager { return p.withJustify(JustifyCenter) }
func (p Pager) AlignRight() Pager  { return p.withJustify(JustifyEnd) }

func (p Pager) withSize(s Size) Pager {
	p.size = s
	return p
}

func (p Pager) withJustify(j Justify) Pager {
	p.justify = j
	return p
}

// CurrentPage returns the active page number.
func (p Pager) CurrentPage() int {
	return p.page
}

// ItemsPerPage returns the configured page size.
func (p Pager) ItemsPerPage() int {
	return p.perPage
}

// TotalItems returns the configured collection size.
func (p Pager) TotalItems() int {
	return p.totalItems
}

// TotalPages returns ceil(total / perPage), or 0 when perPage is not positive.
func (p Pager) TotalPages() int {
	if p.perPage <= 0 {
		return 0
	}
	n := p.totalItems / p.perPage
	if p.totalItems%p.perPage != 0 {
		n++
	}
	return n
}

func cloneValues(v url.Values) url.Values {
	if v == nil {
		return nil
	}
	out := make(url.Values, len(v))
	for k, vs := range v {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
