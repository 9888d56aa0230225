package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestNewQuery(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		read     *bool
		ntype    string
		want     Query
	}{
		{
			name: "defaults for zero values",
			want: Query{Page: 1, PageSize: 10},
		},
		{
			name: "negative page clamped to first",
			page: -3, pageSize: 5,
			want: Query{Page: 1, PageSize: 5},
		},
		{
			name: "negative page size falls back to default",
			page: 2, pageSize: -1,
			want: Query{Page: 2, PageSize: 10},
		},
		{
			name: "oversized page size clamped to max",
			page: 1, pageSize: 5000,
			want: Query{Page: 1, PageSize: MaxPageSize},
		},
		{
			name: "filters pass through",
			page: 2, pageSize: 5, read: boolPtr(true), ntype: "warning",
			want: Query{Page: 2, PageSize: 5, Read: boolPtr(true), Type: "warning"},
		},
		{
			name:  "whitespace-only type means no filter",
			ntype: "   ",
			want:  Query{Page: 1, PageSize: 10},
		},
		{
			name:  "type is trimmed",
			ntype: " warning ",
			want:  Query{Page: 1, PageSize: 10, Type: "warning"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewQuery(tt.page, tt.pageSize, tt.read, tt.ntype)
			assert.Equal(t, tt.want.Page, got.Page)
			assert.Equal(t, tt.want.PageSize, got.PageSize)
			assert.Equal(t, tt.want.Type, got.Type)
			if tt.want.Read == nil {
				assert.Nil(t, got.Read)
			} else {
				assert.NotNil(t, got.Read)
				assert.Equal(t, *tt.want.Read, *got.Read)
			}
		})
	}
}

func TestNewBoundedQuery(t *testing.T) {
	t.Run("caps page size at the given bound", func(t *testing.T) {
		got := NewBoundedQuery(1, 50, nil, "", 25)
		assert.Equal(t, 25, got.PageSize)
	})

	t.Run("bound above the requested size is not applied", func(t *testing.T) {
		got := NewBoundedQuery(1, 20, nil, "", 25)
		assert.Equal(t, 20, got.PageSize)
	})

	t.Run("non-positive bound falls back to the default max", func(t *testing.T) {
		got := NewBoundedQuery(1, 5000, nil, "", 0)
		assert.Equal(t, MaxPageSize, got.PageSize)
	})
}

func TestNewQueryIsDeterministic(t *testing.T) {
	first := NewQuery(0, 200, boolPtr(false), "  info ")
	second := NewQuery(0, 200, boolPtr(false), "  info ")

	assert.Equal(t, first.Page, second.Page)
	assert.Equal(t, first.PageSize, second.PageSize)
	assert.Equal(t, first.Type, second.Type)
	assert.Equal(t, *first.Read, *second.Read)
}

func TestQueryOffset(t *testing.T) {
	assert.Equal(t, 0, NewQuery(1, 10, nil, "").Offset())
	assert.Equal(t, 5, NewQuery(2, 5, nil, "").Offset())
	assert.Equal(t, 40, NewQuery(5, 10, nil, "").Offset())
}

func TestQueryFilterByType(t *testing.T) {
	assert.False(t, NewQuery(1, 10, nil, "").FilterByType())
	assert.False(t, NewQuery(1, 10, nil, "  ").FilterByType())
	assert.True(t, NewQuery(1, 10, nil, "warning").FilterByType())
}
