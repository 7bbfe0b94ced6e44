package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPerson(t *testing.T) {
	birth := Date(1999, 3, 12)
	tests := []struct {
		name    string
		first   string
		last    string
		birth   time.Time
		phone   string
		wantErr error
	}{
		{name: "valid", first: "Berkay", last: "Bayar", birth: birth, phone: "555-2222"},
		{name: "blank first name", first: "  ", last: "Bayar", birth: birth, phone: "555-2222", wantErr: ErrValidation},
		{name: "blank last name", first: "Berkay", last: "", birth: birth, phone: "555-2222", wantErr: ErrValidation},
		{name: "zero birth date", first: "Berkay", last: "Bayar", phone: "555-2222", wantErr: ErrValidation},
		{name: "blank phone", first: "Berkay", last: "Bayar", birth: birth, phone: "", wantErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPerson(tt.first, tt.last, tt.birth, tt.phone)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Berkay Bayar", p.FullName())
		})
	}
}

func TestNewPersonDropsClock(t *testing.T) {
	p, err := NewPerson("Ana", "Lee", time.Date(2001, 7, 4, 18, 30, 0, 0, time.UTC), "555-0000")
	require.NoError(t, err)
	assert.Equal(t, Date(2001, 7, 4), p.BirthDate)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, Date(2024, 3, 15), d)
	assert.Equal(t, "2024-03-15", FormatDate(d))

	_, err = ParseDate("invalid-date")
	assert.ErrorIs(t, err, ErrValidation)
}
