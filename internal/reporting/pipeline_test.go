package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type row struct {
	Name   string
	Status string
	Date   *time.Time
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func names(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestApplyStableSort(t *testing.T) {
	// All rows compare equal under this comparator, so output
	// order must match input order exactly.
	input := []row{{Name: "c"}, {Name: "a"}, {Name: "d"}, {Name: "b"}}

	out := Apply(input, func(a, b row) bool { return false })

	assert.Equal(t, []string{"c", "a", "d", "b"}, names(out))
}

func TestApplyStableSortTiebreak(t *testing.T) {
	input := []row{
		{Name: "x", Status: "open"},
		{Name: "y", Status: "closed"},
		{Name: "z", Status: "open"},
		{Name: "w", Status: "closed"},
	}

	// Sort by status; equal statuses keep input order
	out := Apply(input, func(a, b row) bool { return a.Status < b.Status })

	assert.Equal(t, []string{"y", "w", "x", "z"}, names(out))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	input := []row{{Name: "b"}, {Name: "a"}}

	Apply(input, func(a, b row) bool { return a.Name < b.Name })

	assert.Equal(t, []string{"b", "a"}, names(input))
}

func TestFilterCompositionOrderIndependent(t *testing.T) {
	input := []row{
		{Name: "Alice Smith", Status: "open", Date: date(2024, 1, 10)},
		{Name: "Bob Jones", Status: "open", Date: date(2024, 2, 10)},
		{Name: "alison brown", Status: "closed", Date: date(2024, 1, 20)},
		{Name: "Ali Khan", Status: "open", Date: date(2024, 1, 25)},
	}

	statusPred := MatchStatus(func(r row) string { return r.Status }, "open")
	textPred := MatchText("ali", func(r row) string { return r.Name })
	datePred := MatchDateRange(func(r row) *time.Time { return r.Date },
		date(2024, 1, 1), date(2024, 1, 31))

	abc := Apply(input, nil, statusPred, textPred, datePred)
	cba := Apply(input, nil, datePred, textPred, statusPred)
	bac := Apply(input, nil, textPred, statusPred, datePred)

	assert.Equal(t, []string{"Alice Smith", "Ali Khan"}, names(abc))
	assert.Equal(t, names(abc), names(cba))
	assert.Equal(t, names(abc), names(bac))
}

func TestMatchTextCaseInsensitiveMultipleFields(t *testing.T) {
	type rec struct{ Name, Email string }
	pred := MatchText("SMITH",
		func(r rec) string { return r.Name },
		func(r rec) string { return r.Email },
	)

	assert.True(t, pred(rec{Name: "Alice Smith"}))
	assert.True(t, pred(rec{Email: "smith@example.com"}))
	assert.False(t, pred(rec{Name: "Bob Jones", Email: "bob@example.com"}))
}

func TestMatchDateRangeInclusiveBounds(t *testing.T) {
	pred := MatchDateRange(func(r row) *time.Time { return r.Date },
		date(2024, 1, 1), date(2024, 1, 31))

	assert.True(t, pred(row{Date: date(2024, 1, 15)}))
	assert.True(t, pred(row{Date: date(2024, 1, 1)}), "start bound is inclusive")
	assert.True(t, pred(row{Date: date(2024, 1, 31)}), "end bound is inclusive")
	assert.False(t, pred(row{Date: date(2024, 2, 1)}))
	assert.False(t, pred(row{Date: date(2023, 12, 31)}))
}

func TestMatchDateRangeOneSided(t *testing.T) {
	lower := MatchDateRange(func(r row) *time.Time { return r.Date }, date(2024, 1, 1), nil)
	upper := MatchDateRange(func(r row) *time.Time { return r.Date }, nil, date(2024, 1, 31))

	assert.True(t, lower(row{Date: date(2025, 6, 1)}))
	assert.False(t, lower(row{Date: date(2023, 6, 1)}))
	assert.True(t, upper(row{Date: date(2023, 6, 1)}))
	assert.False(t, upper(row{Date: date(2025, 6, 1)}))
}

func TestMatchDateRangeNilDate(t *testing.T) {
	pred := MatchDateRange(func(r row) *time.Time { return r.Date }, date(2024, 1, 1), nil)
	open := MatchDateRange(func(r row) *time.Time { return r.Date }, nil, nil)

	assert.False(t, pred(row{}))
	assert.True(t, open(row{}))
}

func TestEmptyCriteriaMatchEverything(t *testing.T) {
	input := []row{{Name: "a"}, {Name: "b"}}

	out := Apply(input, nil,
		MatchStatus(func(r row) string { return r.Status }, ""),
		MatchText("", func(r row) string { return r.Name }),
		MatchOneOf(func(r row) string { return r.Status }, nil),
		MatchDateRange(func(r row) *time.Time { return r.Date }, nil, nil),
	)

	assert.Len(t, out, 2)
}

func TestMatchOneOf(t *testing.T) {
	pred := MatchOneOf(func(r row) string { return r.Status }, []string{"open", "resolved"})

	assert.True(t, pred(row{Status: "open"}))
	assert.False(t, pred(row{Status: "closed"}))
}
