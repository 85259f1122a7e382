package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	first := New()
	second := New()

	assert.True(t, IsValid(first))
	assert.True(t, IsValid(second))
	assert.NotEqual(t, first, second)
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("d9428888-122b-11e1-b85c-61cd3cbb3210"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("tkt-1"))
}
