package workout

import (
	"fmt"
	"time"
)

// LocalDateKey converts t to its calendar "YYYY-MM-DD" key in t's own
// location. The wall-clock date is deliberate: a workout logged at 23:30
// belongs to that day, not to the next UTC day. The same derivation is used
// for writes and lookups.
func LocalDateKey(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// TodayKey is LocalDateKey(now).
func TodayKey() string {
	return LocalDateKey(time.Now())
}
