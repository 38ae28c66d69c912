package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pagewindow/internal/domain"
)

type catalogService struct {
	itemRepo       domain.ItemRepository
	contextTimeout time.Duration
}

// NewCatalogService returns a domain.CatalogService backed by itemRepo. Each call
// is bounded by timeout.
func NewCatalogService(itemRepo domain.ItemRepository, timeout time.Duration) domain.CatalogService {
	return &catalogService{
		itemRepo:       itemRepo,
		contextTimeout: timeout,
	}
}

func (s *catalogService) ListItems(ctx context.Context, q domain.ListItemsQuery) ([]*domain.Item, int, error) {
	q.Search = strings.TrimSpace(q.Search)
	q.Sort = strings.TrimSpace(q.Sort)
	if _, _, ok := q.SortColumn(); !ok {
		return nil, 0, fmt.Errorf("%w: %q", domain.ErrInvalidSort, q.Sort)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	items, total, err := s.itemRepo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	if items == nil {
		items = []*domain.Item{}
	}
	return items, total, nil
}
