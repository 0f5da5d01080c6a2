package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTern(t *testing.T) {
	assert.Equal(t, "a", Tern(true, "a", "b"))
	assert.Equal(t, "b", Tern(false, "a", "b"))
}

func TestMinMaxClamp(t *testing.T) {
	assert.Equal(t, 2, Min(2, 3))
	assert.Equal(t, 3.5, Max(2.0, 3.5))
	assert.Equal(t, 1.0, Clamp(1.7, 0, 1))
	assert.Equal(t, 0.0, Clamp(-0.2, 0, 1))
	assert.Equal(t, 0.4, Clamp(0.4, 0, 1))
}
