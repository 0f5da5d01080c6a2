package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyFilter(t *testing.T) {
	f, err := CompileKeyFilter(`name not in ["SPACE", "TAB"] || modifiers > 0`)
	require.NoError(t, err)

	assert.False(t, f.Allow("KEY_SPACE", 0))
	assert.True(t, f.Allow("KEY_SPACE", 1))
	assert.True(t, f.Allow("KEY_RETURN", 0))

	f, err = CompileKeyFilter(`code startsWith "KEY_KP_"`)
	require.NoError(t, err)
	assert.True(t, f.Allow("KEY_KP_ENTER", 0))
	assert.False(t, f.Allow("KEY_ESCAPE", 0))
}

func TestKeyFilterMustBeBool(t *testing.T) {
	_, err := CompileKeyFilter(`modifiers + 1`)
	assert.Error(t, err)

	_, err = CompileKeyFilter(`unknown_var == 1`)
	assert.Error(t, err)
}
