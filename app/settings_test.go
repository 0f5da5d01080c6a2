package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettingsPartialAndSanitized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"distance": 20,
		"timeout_ms": 400,
		"click_window_ms": -5,
		"smoothing": 3,
		"show_all_keys": false
	}`), 0644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 20.0, s.Distance)
	assert.Equal(t, 400, s.TimeoutMs)
	assert.Equal(t, 200, s.ClickWindowMs, "invalid values fall back to defaults")
	assert.Equal(t, DefaultSettings().Smoothing, s.Smoothing)
	assert.False(t, s.ShowAllKeys)
	assert.Equal(t, 20, s.IdlePauseMs, "absent fields keep defaults")
}

func TestLoadSettingsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"distance":`), 0644))

	s, err := LoadSettings(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSaveLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	before := DefaultSettings()
	before.Distance = 16
	before.KeyFilter = `modifiers > 0`
	require.NoError(t, SaveSettings(path, before))

	after, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCoreConfig(t *testing.T) {
	s := DefaultSettings()
	s.TimeoutMs = 300
	s.ClickWindowMs = 250

	cfg, err := s.CoreConfig()
	require.NoError(t, err)
	assert.Equal(t, 300*time.Millisecond, cfg.Timeout)
	assert.Equal(t, 250*time.Millisecond, cfg.ClickWindow)
	assert.Equal(t, 100*time.Millisecond, cfg.WheelFlash)
	assert.Nil(t, cfg.KeyFilter)

	s.KeyFilter = `name != "SPACE"`
	cfg, err = s.CoreConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg.KeyFilter)
	assert.False(t, cfg.KeyFilter("KEY_SPACE", 0))

	s.KeyFilter = `name +`
	_, err = s.CoreConfig()
	assert.Error(t, err)
}
