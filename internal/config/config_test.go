package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"civicmap/internal/gesture"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.States.Object != "states" || !cfg.States.YDown {
		t.Errorf("states = %+v", cfg.States)
	}
	if cfg.Districts.JoinProperty != "STATEFP" || cfg.Districts.YDown {
		t.Errorf("districts = %+v", cfg.Districts)
	}
	if cfg.Fit.StatePadding != 0.10 || cfg.Fit.DistrictMargin != 0.025 {
		t.Errorf("fit = %+v", cfg.Fit)
	}
	if cfg.Gesture.Config() != gesture.DefaultConfig() {
		t.Errorf("gesture = %+v", cfg.Gesture)
	}
	if cfg.Serve.Port != 3000 || cfg.Log.Level != "info" {
		t.Errorf("serve = %+v, log = %+v", cfg.Serve, cfg.Log)
	}
}

func TestFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "civicmap.yaml")
	body := []byte("states:\n  path: /srv/states.json\ngesture:\n  max_scale: 8\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CIVICMAP_SERVE_PORT", "8080")
	t.Setenv("CIVICMAP_FIT_STATE_PADDING", "0.2")

	cfg, err := Load(viper.New(), path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.States.Path != "/srv/states.json" || cfg.States.Object != "states" {
		t.Errorf("states = %+v", cfg.States)
	}
	if cfg.Gesture.MaxScale != 8 || cfg.Gesture.MinScale != 1 {
		t.Errorf("gesture = %+v", cfg.Gesture)
	}
	if cfg.Serve.Port != 8080 || cfg.Fit.StatePadding != 0.2 {
		t.Errorf("env overrides: port %d, padding %v", cfg.Serve.Port, cfg.Fit.StatePadding)
	}
	s := cfg.Settings(nil)
	if s.StatePadding != 0.2 || s.DistrictKey != "STATEFP" || s.Gesture.MaxScale != 8 {
		t.Errorf("settings = %+v", s)
	}
}

func TestRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"CIVICMAP_FIT_DISTRICT_MARGIN", "0.5"},
		{"CIVICMAP_FIT_DISTRICT_MARGIN", "-0.1"},
		{"CIVICMAP_FIT_STATE_PADDING", "-0.5"},
		{"CIVICMAP_GESTURE_MIN_SCALE", "0"},
		{"CIVICMAP_GESTURE_MAX_SCALE", "0.5"},
		{"CIVICMAP_GESTURE_PAN_FACTOR", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(viper.New(), ""); !errors.Is(err, ErrInvalid) {
				t.Errorf("err = %v, want ErrInvalid", err)
			}
		})
	}

	t.Setenv("CIVICMAP_FIT_DISTRICT_MARGIN", "0.49")
	t.Setenv("CIVICMAP_FIT_STATE_PADDING", "-0.2")
	if _, err := Load(viper.New(), ""); err != nil {
		t.Errorf("in-range values rejected: %v", err)
	}
}

func TestMissingExplicitFile(t *testing.T) {
	if _, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLogger(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Log.File = filepath.Join(t.TempDir(), "civicmap.log")
	logger, err := cfg.Logger(true)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("loaded", "states", 3)
	data, err := os.ReadFile(cfg.Log.File)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
	cfg.Log.Level = "loud"
	if _, err := cfg.Logger(false); err == nil {
		t.Error("expected bad level error")
	}
}
