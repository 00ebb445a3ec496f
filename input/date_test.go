package input

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"05/15/2025", true},
		{"02/29/2024", true},
		{"12/31/1999", true},
		{"01/01/0001", true},
		{"02/29/2023", false},
		{"02/30/2024", false},
		{"04/31/2025", false},
		{"13/01/2024", false},
		{"00/10/2024", false},
		{"5/15/2025", false},
		{"05/15/25", false},
		{"05-15-2025", false},
		{"05/15/2025 ", false},
		{"01/01/0000", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseDate(tt.in)
			if tt.valid {
				assert.NoError(t, err)
				return
			}

			var rej *Rejection
			require.True(t, errors.As(err, &rej))
			assert.Equal(t, ParseFailure, rej.Kind)
			assert.Equal(t, tt.in, rej.Input)
		})
	}
}

func TestDateString_ReturnsVerbatim(t *testing.T) {
	p, out := newTestPrompter("02/30/2024\n02/29/2024\n")

	got, err := p.DateString("")

	require.NoError(t, err)
	assert.Equal(t, "02/29/2024", got)
	assert.Equal(t, 1, strings.Count(out.String(), dateMessage))
	assert.Equal(t, 2, strings.Count(out.String(), "Enter a date in the format (MM/DD/YYYY): "))
}

func TestDateParts(t *testing.T) {
	p, _ := newTestPrompter("garbage\n05/15/2025\n")

	month, day, year, err := p.DateParts("When? ")

	require.NoError(t, err)
	assert.Equal(t, 5, month)
	assert.Equal(t, 15, day)
	assert.Equal(t, 2025, year)
}

func TestDateParts_EndOfInput(t *testing.T) {
	p, _ := newTestPrompter("13/13/2013\n")

	_, _, _, err := p.DateParts("")

	assert.Error(t, err)
}
