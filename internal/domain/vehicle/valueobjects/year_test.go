package valueobjects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewYearAt(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"minimum year", 1900, false},
		{"below minimum", 1899, true},
		{"current year", 2026, false},
		{"next year accepted", 2027, false},
		{"two years ahead rejected", 2028, true},
		{"zero", 0, true},
		{"typical year", 2024, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, err := NewYearAt(tt.value, now)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, year)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, year.Int())
		})
	}
}
