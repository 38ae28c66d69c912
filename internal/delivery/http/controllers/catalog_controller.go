package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"pagewindow/internal/delivery/http/helpers"
	"pagewindow/internal/domain"
	"pagewindow/internal/pager"
)

// Query parameters read by the catalog endpoints in addition to page and page_size.
const (
	searchParam = "search"
	sortParam   = "sort"
)

// ListItemsResponse is the response body for GET /api/items.
type ListItemsResponse struct {
	Items      []*domain.Item         `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
	Links      pager.Window           `json:"links"`
}

// ListItemsSuccessResponse is the success response envelope for GET /api/items (200).
type ListItemsSuccessResponse struct {
	Data  ListItemsResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// PageSizeLimits bounds the page_size query parameter.
type PageSizeLimits struct {
	Default int
	Max     int
}

type CatalogController struct {
	Logger   *slog.Logger
	Service  domain.CatalogService
	Renderer domain.PageRenderer
	// Pager is the configured template; it is bound to each request.
	Pager  pager.Pager
	Limits PageSizeLimits
}

func NewCatalogController(logger *slog.Logger, svc domain.CatalogService, renderer domain.PageRenderer, p pager.Pager, limits PageSizeLimits) *CatalogController {
	if limits.Default < 1 {
		limits.Default = helpers.DefaultPageSize
	}
	if limits.Max < limits.Default {
		limits.Max = max(helpers.MaxPageSize, limits.Default)
	}
	return &CatalogController{
		Logger:   logger,
		Service:  svc,
		Renderer: renderer,
		Pager:    p,
		Limits:   limits,
	}
}

// ListItemsPage renders the catalog as an HTML page with page navigation.
// Search, sort and page_size survive in the navigation links.
func (c *CatalogController) ListItemsPage(w http.ResponseWriter, r *http.Request) {
	q := c.listQuery(r)
	items, total, err := c.Service.ListItems(r.Context(), q)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		}
		http.Error(w, http.StatusText(status), status)
		return
	}
	p := c.pagerFor(r, q.Params, total)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = c.Renderer.Render(w, "catalog", domain.CatalogPageData{
		Title:      "Catalog",
		Search:     q.Search,
		Sort:       q.Sort,
		Items:      items,
		Total:      total,
		Page:       p.CurrentPage(),
		TotalPages: p.TotalPages(),
		Pagination: p.RenderHTML(),
	})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "render failed", "path", r.URL.Path, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// ListItems godoc
// @Summary List catalog items
// @Description Returns one page of catalog items with pagination metadata and the page links to display. Links keep the search, sort and page_size parameters.
// @Tags items
// @Produce json
// @Param search query string false "Filter names containing this string (case-insensitive)"
// @Param sort query string false "name or created_at, prefix with - for descending (default -created_at)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListItemsSuccessResponse "data contains items, pagination and links"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/items [get]
func (c *CatalogController) ListItems(w http.ResponseWriter, r *http.Request) {
	q := c.listQuery(r)
	items, total, err := c.Service.ListItems(r.Context(), q)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		}
		helpers.WriteJSONError(w, status, helpers.ErrorCode(status), err.Error())
		return
	}
	p := c.pagerFor(r, q.Params, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListItemsResponse{
		Items:      items,
		Pagination: helpers.NewPaginationMeta(q.Params.Page, q.Params.PageSize, total),
		Links:      p.Window(),
	})
}

func statusFor(err error) int {
	if errors.Is(err, domain.ErrInvalidSort) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (c *CatalogController) listQuery(r *http.Request) domain.ListItemsQuery {
	return domain.ListItemsQuery{
		Search: strings.TrimSpace(r.URL.Query().Get(searchParam)),
		Sort:   strings.TrimSpace(r.URL.Query().Get(sortParam)),
		Params: helpers.ParsePaginationLimits(r, c.Limits.Default, c.Limits.Max),
	}
}

func (c *CatalogController) pagerFor(r *http.Request, params domain.PaginationParams, total int) pager.Pager {
	return c.Pager.
		WithRequest(helpers.PagerRequest(r)).
		PerPage(params.PageSize).
		Total(total).
		RetainQueryString()
}
