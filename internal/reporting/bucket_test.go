package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBucketKeys(t *testing.T) {
	b := Bucketer{Location: time.UTC}

	keys := b.Keys(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, "2024-3-1", keys.Day)
	assert.Equal(t, "2024-3", keys.Month)
	// 2024-03-01 is a Friday in ISO week 9
	assert.Equal(t, "2024-W9", keys.Week)
}

func TestBucketKeysNoZeroPadding(t *testing.T) {
	b := Bucketer{Location: time.UTC}

	keys := b.Keys(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "2025-1-5", keys.Day)
	assert.Equal(t, "2025-1", keys.Month)
}

func TestBucketWeekThursdayRule(t *testing.T) {
	b := Bucketer{Location: time.UTC}

	// 2021-01-01 is a Friday; its nearest Thursday belongs to 2020,
	// so the ISO week-year is 2020, week 53.
	keys := b.Keys(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2020-W53", keys.Week)

	// 2019-12-30 is a Monday of the week containing 2020's first Thursday.
	keys = b.Keys(time.Date(2019, 12, 30, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2020-W1", keys.Week)
}

func TestBucketKeysDeterministic(t *testing.T) {
	b := Bucketer{Location: time.UTC}
	ts := time.Date(2024, 6, 14, 23, 59, 59, 0, time.UTC)

	first := b.Keys(ts)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, b.Keys(ts))
	}
}

func TestBucketKeysRespectLocation(t *testing.T) {
	// 2024-03-01 01:00 UTC is still 2024-02-29 in a UTC-5 zone
	loc := time.FixedZone("UTC-5", -5*3600)
	b := Bucketer{Location: loc}

	keys := b.Keys(time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC))

	assert.Equal(t, "2024-2-29", keys.Day)
	assert.Equal(t, "2024-2", keys.Month)
}

func TestBucketDefaultsToLocal(t *testing.T) {
	var b Bucketer
	assert.Equal(t, time.Local, b.location())
}
