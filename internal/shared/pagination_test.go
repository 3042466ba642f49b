package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		requested  int
		wantNumber int
		wantPages  int
		wantOffset int
	}{
		{"first page", 30, 1, 1, 3, 0},
		{"middle page", 30, 2, 2, 3, 12},
		{"zero clamps to first", 30, 0, 1, 3, 0},
		{"negative clamps to first", 30, -4, 1, 3, 0},
		{"past the end clamps to last", 30, 99, 3, 3, 24},
		{"exact multiple", 24, 3, 2, 2, 12},
		{"empty listing", 0, 5, 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(tt.total, tt.requested, BookPageSize)
			assert.Equal(t, tt.wantNumber, p.Number)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantOffset, p.Offset())
			assert.Equal(t, tt.total, p.Total)
		})
	}
}

func TestPaginateFlags(t *testing.T) {
	p := Paginate(25, 2, ForumPostPageSize)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrevious)

	p = Paginate(25, 3, ForumPostPageSize)
	assert.False(t, p.HasNext)
	assert.Equal(t, 20, p.Offset())
}

func TestIdentityAuthenticated(t *testing.T) {
	assert.False(t, Identity{}.Authenticated())
	assert.True(t, Identity{UserID: "u-1"}.Authenticated())
}
