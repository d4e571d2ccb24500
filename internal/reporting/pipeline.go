package reporting

import (
	"sort"
	"strings"
	"time"
)

// Predicate is one pure filter over an element
type Predicate[T any] func(T) bool

type decorated[T any] struct {
	value T
	index int
}

// Apply sorts the input with the supplied less function, breaking ties
// by original position, then applies the predicates in order. The input
// slice is never mutated. Predicates are pure filters, so their order
// affects cost only, not the result. A nil less keeps input order.
func Apply[T any](input []T, less func(a, b T) bool, predicates ...Predicate[T]) []T {
	dec := make([]decorated[T], len(input))
	for i, v := range input {
		dec[i] = decorated[T]{value: v, index: i}
	}

	sort.Slice(dec, func(i, j int) bool {
		if less != nil {
			if less(dec[i].value, dec[j].value) {
				return true
			}
			if less(dec[j].value, dec[i].value) {
				return false
			}
		}
		return dec[i].index < dec[j].index
	})

	out := make([]T, 0, len(dec))
	for _, d := range dec {
		out = append(out, d.value)
	}

	for _, pred := range predicates {
		if pred == nil {
			continue
		}
		filtered := out[:0:0]
		for _, v := range out {
			if pred(v) {
				filtered = append(filtered, v)
			}
		}
		out = filtered
	}

	return out
}

// MatchStatus keeps elements whose status equals the criterion.
// An empty criterion matches everything.
func MatchStatus[T any](get func(T) string, status string) Predicate[T] {
	return func(v T) bool {
		if status == "" {
			return true
		}
		return get(v) == status
	}
}

// MatchText keeps elements where the query is a case-insensitive
// substring of at least one of the given fields.
func MatchText[T any](query string, fields ...func(T) string) Predicate[T] {
	return func(v T) bool {
		if query == "" {
			return true
		}
		q := strings.ToLower(query)
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(v)), q) {
				return true
			}
		}
		return false
	}
}

// MatchOneOf keeps elements whose field is a member of the allowed list.
// An empty list matches everything.
func MatchOneOf[T any](get func(T) string, allowed []string) Predicate[T] {
	return func(v T) bool {
		if len(allowed) == 0 {
			return true
		}
		value := get(v)
		for _, a := range allowed {
			if value == a {
				return true
			}
		}
		return false
	}
}

// MatchDateRange keeps elements whose date lies inside [start, end],
// inclusive on both ends. With only one bound present the range is
// one-sided. Elements without a date are excluded once any bound is set.
func MatchDateRange[T any](get func(T) *time.Time, start, end *time.Time) Predicate[T] {
	return func(v T) bool {
		if start == nil && end == nil {
			return true
		}
		date := get(v)
		if date == nil {
			return false
		}
		if start != nil && date.Before(*start) {
			return false
		}
		if end != nil && date.After(*end) {
			return false
		}
		return true
	}
}
