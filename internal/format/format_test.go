package format

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", 150)

	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{"short unchanged", "short", 100, "short"},
		{"exactly at limit", strings.Repeat("b", 100), 100, strings.Repeat("b", 100)},
		{"over limit", long, 100, strings.Repeat("a", 100) + Ellipsis},
		{"empty", "", 100, ""},
		{"cyrillic counted as characters", "Привет, мир", 6, "Привет" + Ellipsis},
		{"zero limit", "abc", 0, Ellipsis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.text, tt.limit))
		})
	}
}

func TestTruncate_PrefixLength(t *testing.T) {
	got := Truncate(strings.Repeat("я", 150), DefaultLimit)
	prefix := strings.TrimSuffix(got, Ellipsis)
	assert.Equal(t, DefaultLimit, utf8.RuneCountInString(prefix))
	assert.True(t, strings.HasSuffix(got, Ellipsis))
}

func TestFormatTimestampIn(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 20, 30, 0, time.UTC)
	moscow := time.FixedZone("MSK", 3*60*60)

	assert.Equal(t, "01.05.2024, 10:20:30", FormatTimestampIn(ts, time.UTC))
	assert.Equal(t, "01.05.2024, 13:20:30", FormatTimestampIn(ts, moscow))
	assert.Equal(t, "", FormatTimestampIn(time.Time{}, moscow))
	assert.Equal(t, "", FormatTimestamp(time.Time{}))
}

func TestFitWidth(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"clipped", "hello world", 6, "hello" + FitEllipsis},
		{"wide runes", "🥇🥇🥇", 5, "🥇🥇" + FitEllipsis},
		{"zero width", "hello", 0, ""},
		{"width one", "hello", 1, FitEllipsis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitWidth(tt.s, tt.maxWidth)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, VisualWidth(got), tt.maxWidth)
		})
	}
}
