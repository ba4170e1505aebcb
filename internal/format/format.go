// Package format holds the deterministic text rules applied to backend data
// before it is displayed: timestamp rendering and truncation.
package format

import (
	"time"
)

// TimestampLayout renders times the way the ru-RU locale prints a date and
// time ("01.05.2024, 13:20:30"). The locale is fixed.
const TimestampLayout = "02.01.2006, 15:04:05"

// DefaultLimit is the character budget for free text such as message bodies.
const DefaultLimit = 100

// Ellipsis marks text cut by Truncate.
const Ellipsis = "..."

// FormatTimestamp renders t in the local time zone. The zero time renders
// as an empty string.
func FormatTimestamp(t time.Time) string {
	return FormatTimestampIn(t, time.Local)
}

// FormatTimestampIn renders t in loc.
func FormatTimestampIn(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(TimestampLayout)
}

// Truncate returns text unchanged when it has at most limit characters,
// otherwise its first limit characters followed by Ellipsis. Characters are
// counted as runes, so multi-byte text is never split mid-character.
func Truncate(text string, limit int) string {
	if limit < 0 {
		limit = 0
	}
	n := 0
	for i := range text {
		if n == limit {
			return text[:i] + Ellipsis
		}
		n++
	}
	return text
}
