package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	a, b := g.Generate(), g.Generate()
	assert.True(t, IsUUID(a))
	assert.True(t, IsUUID(b))
	assert.NotEqual(t, a, b)
}

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.False(t, IsUUID(""))
	assert.False(t, IsUUID("not-a-uuid"))
	assert.False(t, IsUUID("{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"))
}
