package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bvisness/keycast/app/core"
)

type Settings struct {
	Distance      float64 `json:"distance"`
	TimeoutMs     int     `json:"timeout_ms"`
	ClickWindowMs int     `json:"click_window_ms"`
	WheelFlashMs  int     `json:"wheel_flash_ms"`
	IdlePauseMs   int     `json:"idle_pause_ms"`
	Smoothing     float64 `json:"smoothing"`
	ShowAllKeys   bool    `json:"show_all_keys"`
	KeyFilter     string  `json:"key_filter"`
	LogLevel      string  `json:"log_level"`
	IconX         int     `json:"icon_x"`
	IconY         int     `json:"icon_y"`
}

var CurrentSettings *Settings

func DefaultSettings() *Settings {
	return &Settings{
		Distance:      10,
		TimeoutMs:     250,
		ClickWindowMs: 200,
		WheelFlashMs:  100,
		IdlePauseMs:   20,
		Smoothing:     core.DefaultSmoothing,
		ShowAllKeys:   true,
		LogLevel:      "info",
		IconX:         32,
		IconY:         32,
	}
}

func GetSettingsPath() string {
	if p := os.Getenv("KEYCAST_SETTINGS"); p != "" {
		return p
	}
	return "settings.json"
}

// LoadSettings reads the settings file. A missing file yields the defaults;
// fields left out of the file keep their default values.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	} else if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}

	if err := json.Unmarshal(data, s); err != nil {
		return DefaultSettings(), fmt.Errorf("parse settings %s: %w", path, err)
	}
	s.sanitize()
	return s, nil
}

// Validate basic sanity
func (s *Settings) sanitize() {
	d := DefaultSettings()
	if s.Distance < 0 {
		s.Distance = d.Distance
	}
	if s.TimeoutMs <= 0 {
		s.TimeoutMs = d.TimeoutMs
	}
	if s.ClickWindowMs <= 0 {
		s.ClickWindowMs = d.ClickWindowMs
	}
	if s.WheelFlashMs <= 0 {
		s.WheelFlashMs = d.WheelFlashMs
	}
	if s.IdlePauseMs <= 0 || s.IdlePauseMs > 1000 {
		s.IdlePauseMs = d.IdlePauseMs
	}
	if s.Smoothing <= 0 || s.Smoothing >= 1 {
		s.Smoothing = d.Smoothing
	}
	if s.LogLevel == "" {
		s.LogLevel = d.LogLevel
	}
}

func SaveSettings(path string, s *Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CoreConfig converts the settings into the presenter configuration. The key
// filter expression, if any, is compiled here.
func (s *Settings) CoreConfig() (core.Config, error) {
	cfg := core.Config{
		Distance:    s.Distance,
		Timeout:     time.Duration(s.TimeoutMs) * time.Millisecond,
		ClickWindow: time.Duration(s.ClickWindowMs) * time.Millisecond,
		WheelFlash:  time.Duration(s.WheelFlashMs) * time.Millisecond,
		IdlePause:   time.Duration(s.IdlePauseMs) * time.Millisecond,
		Smoothing:   s.Smoothing,
		ShowAllKeys: s.ShowAllKeys,
	}
	if s.KeyFilter != "" {
		f, err := CompileKeyFilter(s.KeyFilter)
		if err != nil {
			return cfg, err
		}
		cfg.KeyFilter = f.Allow
	}
	return cfg, nil
}
