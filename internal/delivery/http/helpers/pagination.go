package helpers

import (
	"net/http"
	"strconv"

	"pagewindow/internal/domain"
	"pagewindow/internal/pager"
)

// Pagination query parameter names, defaults and limits.
const (
	PageParam       = "page"
	PageSizeParam   = "page_size"
	DefaultPage     = 1
	DefaultPageSize = pager.DefaultPerPage
	MaxPageSize     = 100
)

// ParsePagination reads page and page_size from the request query string,
// clamps them to valid ranges, and returns domain.PaginationParams.
// Invalid or missing values fall back to defaults.
func ParsePagination(r *http.Request) domain.PaginationParams {
	return ParsePaginationLimits(r, DefaultPageSize, MaxPageSize)
}

// ParsePaginationLimits is ParsePagination with caller-provided page size
// default and maximum.
func ParsePaginationLimits(r *http.Request, defaultSize, maxSize int) domain.PaginationParams {
	page := pager.ParsePage(r.URL.Query().Get(PageParam))
	pageSize := defaultSize
	if s := r.URL.Query().Get(PageSizeParam); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			pageSize = min(v, maxSize)
		}
	}
	return domain.PaginationParams{Page: page, PageSize: pageSize}
}

// PagerRequest extracts the active page and the ambient query parameters the
// pager needs from r.
func PagerRequest(r *http.Request) pager.Request {
	return pager.RequestFromValues(r.URL.Query(), PageParam)
}

// PaginationMeta is the pagination metadata included in paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// NewPaginationMeta builds PaginationMeta from the current page, page size, and total count.
// TotalPages is computed as ceiling(total / pageSize); if pageSize is 0, TotalPages is 0.
func NewPaginationMeta(page, pageSize, total int) PaginationMeta {
	totalPages := pager.New(pager.Request{Page: page}).Total(total).PerPage(pageSize).TotalPages()
	return PaginationMeta{
		Page:        page,
		PageSize:    pageSize,
		Total:       total,
		TotalPages:  totalPages,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
}
