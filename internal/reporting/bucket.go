package reporting

import (
	"fmt"
	"time"
)

// BucketKeys holds the three aggregation keys for one timestamp
type BucketKeys struct {
	Day   string // "2024-3-1"
	Week  string // "2024-W9", ISO-8601 week numbering
	Month string // "2024-3"
}

// Bucketer maps timestamps to day/week/month keys. The location is an
// explicit parameter so aggregations stay reproducible; it defaults to
// the process-local timezone, which is what the dashboard always used.
type Bucketer struct {
	Location *time.Location
}

func (b Bucketer) location() *time.Location {
	if b.Location != nil {
		return b.Location
	}
	return time.Local
}

// Keys returns the day, ISO week and month keys for t.
// Months and days are not zero padded, matching the historical key format.
func (b Bucketer) Keys(t time.Time) BucketKeys {
	lt := t.In(b.location())
	year, month, day := lt.Date()
	weekYear, week := lt.ISOWeek()

	return BucketKeys{
		Day:   fmt.Sprintf("%d-%d-%d", year, int(month), day),
		Week:  fmt.Sprintf("%d-W%d", weekYear, week),
		Month: fmt.Sprintf("%d-%d", year, int(month)),
	}
}
