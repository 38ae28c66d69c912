package pager

import "strconv"

// Role is the structural position of an entry in a window.
type Role string

const (
	RolePage      Role = "page"
	RoleCurrent   Role = "current"
	RolePrev      Role = "prev"
	RoleNext      Role = "next"
	RoleSeparator Role = "separator"
)

// Entry is one item of a page window. Separators carry Page 0 and an empty URL;
// every other entry links to a page.
type Entry struct {
	Page  int    `json:"page,omitempty"`
	URL   string `json:"url,omitempty"`
	Label string `json:"label"`
	Role  Role   `json:"role"`
}

// Navigable reports whether the entry points at a page.
func (e Entry) Navigable() bool {
	return e.Page > 0
}

// Window is an ordered list of entries, left to right.
type Window []Entry

// Pages returns the page numbers of the numbered entries, excluding the
// previous and next links.
func (w Window) Pages() []int {
	var out []int
	for _, e := range w {
		switch e.Role {
		case RolePage, RoleCurrent:
			out = append(out, e.Page)
		}
	}
	return out
}

// Current returns the entry of the active page, if it is in the window.
func (w Window) Current() (Entry, bool) {
	for _, e := range w {
		if e.Role == RoleCurrent {
			return e, true
		}
	}
	return Entry{}, false
}

// Window computes the page window. It is recomputed on every call, so a
// Pager never serves a window built from an older configuration.
//
// Layout, left to right: previous link, leading block (pages
// 1..BeforeSeparator), separator, active window (AroundActive pages on each
// side of the current page), separator, trailing block (the last
// BeforeSeparator pages), next link. Blocks that touch or overlap the active
// window merge into it, and a separator is only placed where pages are
// actually omitted.
func (p Pager) Window() Window {
	total := p.TotalPages()
	if total <= 1 {
		return Window{}
	}

	// Counts beyond the page total behave like the page total.
	around := min(p.aroundActive, total)
	before := min(p.beforeSeparator, total)
	showSeparator := !p.hideSeparator && !separatorsCrowd(before, total)

	// A current page past the end anchors the active window on the last page.
	anchor := min(p.page, total)
	start := anchor - min(around, anchor-1)
	end := anchor + min(around, total-anchor)

	// Leading and trailing blocks stop short of the active window, which keeps
	// the three page ranges disjoint.
	lead := min(before, start-1)
	trail := min(before, total-end)

	w := make(Window, 0, lead+(end-start+1)+trail+4)

	if !p.hidePrevious && p.page > 1 {
		w = append(w, p.entry(min(p.page-1, total), p.previousText, RolePrev))
	}

	w = p.appendPages(w, 1, lead)
	if showSeparator && start-1 > lead {
		w = append(w, p.separatorEntry())
	}

	w = p.appendPages(w, start, end)

	if showSeparator && total-trail > end {
		w = append(w, p.separatorEntry())
	}
	if trail > 0 {
		w = p.appendPages(w, total-trail+1, total)
	}

	if !p.hideNext && p.page < total {
		w = append(w, p.entry(p.page+1, p.nextText, RoleNext))
	}

	return w
}

// separatorsCrowd reports whether 3*before >= total without overflowing.
func separatorsCrowd(before, total int) bool {
	q, r := total/3, total%3
	return before > q || (before == q && r == 0)
}

// appendPages appends pages from..to inclusive. The loop stops on to rather
// than past it so a range ending at math.MaxInt terminates.
func (p Pager) appendPages(w Window, from, to int) Window {
	if from > to {
		return w
	}
	for n := from; ; n++ {
		w = append(w, p.pageEntry(n))
		if n == to {
			return w
		}
	}
}

func (p Pager) pageEntry(n int) Entry {
	return p.entry(n, p.pagePrefix+strconv.Itoa(n)+p.pageSuffix, RolePage)
}

func (p Pager) separatorEntry() Entry {
	return Entry{Label: p.separator, Role: RoleSeparator}
}

func (p Pager) entry(n int, label string, role Role) Entry {
	if n == p.page {
		role = RoleCurrent
	}
	return Entry{
		Page:  n,
		URL:   p.URL(n),
		Label: label,
		Role:  role,
	}
}
