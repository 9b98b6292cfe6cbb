package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSince(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", "2025-07-18T09:00:00Z", time.Date(2025, 7, 18, 9, 0, 0, 0, time.UTC)},
		{"day", "2025-07-18", time.Date(2025, 7, 18, 0, 0, 0, 0, time.UTC)},
		{"unix millis", "1752829200000", time.Date(2025, 7, 18, 9, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSince(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestParseSince_Invalid(t *testing.T) {
	for _, input := range []string{"", "yesterday", "-5", "18/07/2025"} {
		_, err := ParseSince(input)
		assert.Error(t, err, input)
	}
}

func TestFormatAndParseDay(t *testing.T) {
	local := time.Date(2025, 7, 18, 1, 30, 0, 0, time.FixedZone("CEST", 2*3600))
	assert.Equal(t, "2025-07-17", FormatDay(local))

	_, err := ParseDay("2025/07/17")
	assert.Error(t, err)
}
