package input

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		banned  []string
		want    string
		rejects int
	}{
		{"no exclusion list", "admin\n", nil, "admin", 0},
		{"exact match rejected", "admin\nAdmin\n", []string{"admin"}, "Admin", 1},
		{"empty string allowed", "\n", []string{"admin"}, "", 0},
		{"empty string banned", "\nok\n", []string{""}, "ok", 1},
		{"no trimming", " admin\n", []string{"admin"}, " admin", 0},
		{"several banned", "root\nadmin\nbob\n", []string{"admin", "root"}, "bob", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestPrompter(tt.in)

			got, err := p.String("", tt.banned, "")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rejects, strings.Count(out.String(), DefaultBannedMessage))
		})
	}
}

func TestString_CustomErrorMessage(t *testing.T) {
	p, out := newTestPrompter("quit\nstay\n")

	got, err := p.String("Command: ", []string{"quit"}, "that name is reserved")

	require.NoError(t, err)
	assert.Equal(t, "stay", got)
	assert.Contains(t, out.String(), "that name is reserved\n")
	assert.Equal(t, 2, strings.Count(out.String(), "Command: "))
}
