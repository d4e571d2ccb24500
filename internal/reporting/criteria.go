package reporting

import "time"

// Criteria is the filter state attached to a list view: a plain record
// of optional predicates, created on mount, reset on demand, discarded
// on navigation. It is never persisted.
type Criteria struct {
	Name      string
	Status    string
	Roles     []string
	StartDate *time.Time
	EndDate   *time.Time
}

// DefaultCriteria returns the empty filter state
func DefaultCriteria() Criteria {
	return Criteria{}
}

// Reset restores the default state. Resetting twice is the same as once.
func (c *Criteria) Reset() {
	*c = DefaultCriteria()
}

// IsEmpty reports whether no predicate is active
func (c Criteria) IsEmpty() bool {
	return c.Name == "" && c.Status == "" && len(c.Roles) == 0 &&
		c.StartDate == nil && c.EndDate == nil
}
