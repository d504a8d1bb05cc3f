package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"seven digits", "1234567", "1234567", false},
		{"minimum six digits", "123456", "123456", false},
		{"whitespace trimmed", " 1234567 ", "1234567", false},
		{"long document", "901234567890", "901234567890", false},
		{"five digits too short", "12345", "", true},
		{"letter inside", "12a456", "", true},
		{"dash inside", "123-456", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := NewDocumentNumber(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, doc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc.String())
		})
	}
}

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain mobile", "3001234567", "3001234567", false},
		{"dashes stripped", "300-123-4567", "3001234567", false},
		{"spaces and parens stripped", "(300) 123 4567", "3001234567", false},
		{"country code plus sign", "+57 300 1234567", "573001234567", false},
		{"minimum seven digits", "1234567", "1234567", false},
		{"six digits too short", "123456", "", true},
		{"sixteen digits too long", "1234567890123456", "", true},
		{"letters only", "no-phone", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phone, err := NewPhone(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, phone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, phone.String())
		})
	}
}
