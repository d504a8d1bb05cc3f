package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPage(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		total    int64
		pageSize int
		want     int
	}{
		{"zero page clamps to first", 0, 100, 15, 1},
		{"negative page clamps to first", -3, 100, 15, 1},
		{"valid page unchanged", 3, 100, 15, 3},
		{"last page unchanged", 7, 100, 15, 7},
		{"beyond last clamps to last", 8, 100, 15, 7},
		{"far beyond last clamps to last", 999, 100, 15, 7},
		{"empty collection clamps to one", 5, 0, 15, 1},
		{"single full page", 2, 15, 15, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampPage(tt.page, tt.total, tt.pageSize))
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 5, TotalPages(100, 20))
	assert.Equal(t, 1, TotalPages(10, 0))
}
