package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagination_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		in      Pagination
		want    Page
		wantErr bool
	}{
		{"absent", Pagination{}, Page{Number: 1, Limit: 20, Offset: 0}, false},
		{"default limit", Pagination{PageNumber: 3}, Page{Number: 3, Limit: 20, Offset: 40}, false},
		{"limit without page", Pagination{PageLimit: 10}, Page{Number: 1, Limit: 10, Offset: 0}, false},
		{"explicit", Pagination{PageNumber: 2, PageLimit: 10}, Page{Number: 2, Limit: 10, Offset: 10}, false},
		{"at max", Pagination{PageNumber: 1, PageLimit: 100}, Page{Number: 1, Limit: 100, Offset: 0}, false},
		{"over max", Pagination{PageNumber: 1, PageLimit: 101}, Page{}, true},
		{"negative limit", Pagination{PageNumber: 1, PageLimit: -5}, Page{}, true},
		{"negative page", Pagination{PageNumber: -1, PageLimit: 10}, Page{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Resolve(20, 100)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPagination)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPagination_Resolve_DefaultAboveMax(t *testing.T) {
	got, err := Pagination{}.Resolve(500, 100)
	require.NoError(t, err)
	assert.Equal(t, int32(100), got.Limit)
}

func TestPagination_Resolve_NoMax(t *testing.T) {
	got, err := Pagination{PageNumber: 2, PageLimit: 5000}.Resolve(20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), got.Offset)
}

func TestPagination_Resolve_LargeOffset(t *testing.T) {
	got, err := Pagination{PageNumber: 1 << 30, PageLimit: 100}.Resolve(20, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(1<<30-1)*100, got.Offset)
}

func TestPagination_Validate(t *testing.T) {
	assert.ErrorIs(t, Pagination{}.Validate(100), ErrInvalidPagination)
	assert.NoError(t, Pagination{PageNumber: 1}.Validate(100))

	err := Pagination{PageNumber: 1, PageLimit: 200}.Validate(100)
	assert.EqualError(t, err, "invalid pagination: page_limit must be <= 100, got 200")
}

func TestPagination_IsZero(t *testing.T) {
	assert.True(t, Pagination{}.IsZero())
	assert.False(t, Pagination{PageLimit: 1}.IsZero())
}
