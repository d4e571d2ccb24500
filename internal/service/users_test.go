package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	assert.Equal(t,
		"494a715f7e9b4071aca61bac42ca858a309524e5864f0920030862a4ae7589be",
		hashPassword("changeme123"))
	assert.NotEqual(t, hashPassword("changeme123"), hashPassword("changeme124"))
}

func TestInvalidateCachedAuthWithoutCache(t *testing.T) {
	s := NewUserService(nil, nil)

	assert.NotPanics(t, func() {
		s.invalidateCachedAuth(context.Background(), 42)
	})
}
