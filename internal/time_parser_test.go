package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCutoff(t *testing.T) {
	want := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{"iso with zone suffix", "2026-08-01T12:00:00Z"},
		{"iso with offset", "2026-08-01T14:00:00+02:00"},
		{"epoch seconds", "1785585600"},
		{"epoch milliseconds", "1785585600000"},
		{"padded whitespace", "  2026-08-01T12:00:00Z "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCutoff(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "got %v, want %v", got, want)
		})
	}
}

func TestParseCutoffRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "   ", "not-a-time"} {
		_, err := ParseCutoff(input)
		assert.Error(t, err, "input %q", input)
	}
}
