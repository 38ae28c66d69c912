package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaginationParams_Offset(t *testing.T) {
	tests := []struct {
		name   string
		params PaginationParams
		want   int
	}{
		{"first page", PaginationParams{Page: 1, PageSize: 20}, 0},
		{"third page", PaginationParams{Page: 3, PageSize: 20}, 40},
		{"zero page", PaginationParams{Page: 0, PageSize: 20}, 0},
		{"negative page", PaginationParams{Page: -2, PageSize: 20}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.params.Offset())
		})
	}
}

func TestListItemsQuery_SortColumn(t *testing.T) {
	tests := []struct {
		sort     string
		wantCol  string
		wantDesc bool
		wantOK   bool
	}{
		{"", SortByCreatedAt, true, true},
		{"name", SortByName, false, true},
		{"-name", SortByName, true, true},
		{"created_at", SortByCreatedAt, false, true},
		{"-created_at", SortByCreatedAt, true, true},
		{"price", "", false, false},
		{"-", "", false, false},
		{"name; DROP TABLE items", "", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.sort, func(t *testing.T) {
			col, desc, ok := ListItemsQuery{Sort: tt.sort}.SortColumn()
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.wantCol, col)
			require.Equal(t, tt.wantDesc, desc)
		})
	}
}
