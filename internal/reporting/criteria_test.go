package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResetIdempotent(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Criteria{
		Name:      "smith",
		Status:    "open",
		Roles:     []string{"admin"},
		StartDate: &start,
	}

	c.Reset()
	once := c
	c.Reset()

	assert.Equal(t, once, c)
	assert.Equal(t, DefaultCriteria(), c)
	assert.True(t, c.IsEmpty())
}

func TestDefaultCriteriaIsEmpty(t *testing.T) {
	assert.True(t, DefaultCriteria().IsEmpty())

	c := DefaultCriteria()
	c.Status = "open"
	assert.False(t, c.IsEmpty())
}
