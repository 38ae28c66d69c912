package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"pagewindow/internal/domain"

	"github.com/lib/pq"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type itemRepository struct {
	DB *sql.DB
}

// NewItemRepository returns a domain.ItemRepository implemented with Postgres.
func NewItemRepository(db *sql.DB) domain.ItemRepository {
	return &itemRepository{DB: db}
}

func (r *itemRepository) List(ctx context.Context, q domain.ListItemsQuery) ([]*domain.Item, int, error) {
	column, desc, ok := q.SortColumn()
	if !ok {
		return nil, 0, domain.ErrInvalidSort
	}
	direction := "ASC"
	if desc {
		direction = "DESC"
	}

	var (
		where string
		args  []any
	)
	if q.Search != "" {
		where = ` WHERE name ILIKE $1`
		args = append(args, "%"+likeEscaper.Replace(q.Search)+"%")
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 || q.Params.Offset() >= total {
		return []*domain.Item{}, total, nil
	}

	// The sort column comes from a whitelist; quoting keeps it an identifier.
	query := fmt.Sprintf(
		`SELECT id, name, created_at FROM items%s ORDER BY %s %s, id LIMIT $%d OFFSET $%d`,
		where, pq.QuoteIdentifier(column), direction, len(args)+1, len(args)+2,
	)
	rows, err := r.DB.QueryContext(ctx, query, append(args, q.Params.Limit(), q.Params.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := []*domain.Item{}
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.CreatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
