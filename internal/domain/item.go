package domain

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidSort is returned when a list is requested with an unsupported sort key.
var ErrInvalidSort = errors.New("invalid sort")

// Item is one entry of the catalog listed by the paginated views.
// swagger:model Item
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Sort keys accepted by ListItemsQuery.Sort. A leading "-" sorts descending.
const (
	SortByName      = "name"
	SortByCreatedAt = "created_at"
)

// ListItemsQuery filters and pages a catalog listing.
type ListItemsQuery struct {
	// Search matches item names case-insensitively. Empty matches everything.
	Search string
	// Sort is one of the SortBy keys, optionally prefixed with "-". Empty means newest first.
	Sort   string
	Params PaginationParams
}

// SortColumn splits Sort into its column and direction. ok is false for unknown keys.
func (q ListItemsQuery) SortColumn() (column string, desc bool, ok bool) {
	if q.Sort == "" {
		return SortByCreatedAt, true, true
	}
	column = q.Sort
	if column[0] == '-' {
		column, desc = column[1:], true
	}
	switch column {
	case SortByName, SortByCreatedAt:
		return column, desc, true
	}
	return "", false, false
}

// ItemRepository defines storage for catalog items.
type ItemRepository interface {
	// List returns one page of items matching the query and the total number of matches.
	List(ctx context.Context, q ListItemsQuery) ([]*Item, int, error)
}

// CatalogService exposes catalog listings to the delivery layer.
type CatalogService interface {
	ListItems(ctx context.Context, q ListItemsQuery) ([]*Item, int, error)
}
