// Package config loads civicmap settings from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/inconshreveable/log15"
	"github.com/spf13/viper"

	"civicmap/internal/gesture"
	"civicmap/internal/mapview"
)

// EnvPrefix is prepended to every environment override, e.g.
// CIVICMAP_SERVE_PORT.
const EnvPrefix = "CIVICMAP"

// Layer locates one map dataset on disk.
type Layer struct {
	Path   string `mapstructure:"path"`
	Object string `mapstructure:"object"`
	// YDown marks datasets stored in screen orientation; they are flipped
	// on load.
	YDown        bool   `mapstructure:"y_down"`
	JoinProperty string `mapstructure:"join_property"`
}

type Fit struct {
	StatePadding   float64 `mapstructure:"state_padding"`
	DistrictMargin float64 `mapstructure:"district_margin"`
}

type Gesture struct {
	MinScale       float64 `mapstructure:"min_scale"`
	MaxScale       float64 `mapstructure:"max_scale"`
	PanFactor      float64 `mapstructure:"pan_factor"`
	MinPanDistance float64 `mapstructure:"min_pan_distance"`
}

type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type Serve struct {
	Port   int     `mapstructure:"port"`
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

type Config struct {
	States    Layer   `mapstructure:"states"`
	Districts Layer   `mapstructure:"districts"`
	Fit       Fit     `mapstructure:"fit"`
	Gesture   Gesture `mapstructure:"gesture"`
	Log       Log     `mapstructure:"log"`
	Serve     Serve   `mapstructure:"serve"`
}

// SetDefaults registers every key with its default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("states.path", "data/states-albers-10m.json")
	v.SetDefault("states.object", "states")
	v.SetDefault("states.y_down", true)
	v.SetDefault("districts.path", "data/us-congressional-districts-119.json")
	v.SetDefault("districts.object", "us-congressional-districts-119")
	v.SetDefault("districts.join_property", "STATEFP")
	v.SetDefault("districts.y_down", false)
	v.SetDefault("fit.state_padding", 0.10)
	v.SetDefault("fit.district_margin", 0.025)
	g := gesture.DefaultConfig()
	v.SetDefault("gesture.min_scale", g.MinScale)
	v.SetDefault("gesture.max_scale", g.MaxScale)
	v.SetDefault("gesture.pan_factor", g.PanFactor)
	v.SetDefault("gesture.min_pan_distance", g.MinPanDistance)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "civicmap.log")
	v.SetDefault("serve.port", 3000)
	v.SetDefault("serve.width", 975)
	v.SetDefault("serve.height", 610)
}

// Load reads path, or ./civicmap.yaml when path is empty, over the defaults.
// A missing default file is not an error; a missing explicit one is.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("civicmap")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ErrInvalid wraps every range error reported by Validate.
var ErrInvalid = errors.New("config: invalid value")

// Validate rejects fit and gesture values that would collapse or invert the
// fitted map.
func (c Config) Validate() error {
	switch {
	case c.Fit.StatePadding <= -0.5:
		return fmt.Errorf("%w: fit.state_padding %v must be greater than -0.5", ErrInvalid, c.Fit.StatePadding)
	case c.Fit.DistrictMargin < 0 || c.Fit.DistrictMargin >= 0.5:
		return fmt.Errorf("%w: fit.district_margin %v must be in [0, 0.5)", ErrInvalid, c.Fit.DistrictMargin)
	case c.Gesture.MinScale <= 0:
		return fmt.Errorf("%w: gesture.min_scale %v must be positive", ErrInvalid, c.Gesture.MinScale)
	case c.Gesture.MaxScale < c.Gesture.MinScale:
		return fmt.Errorf("%w: gesture.max_scale %v is below min_scale %v", ErrInvalid, c.Gesture.MaxScale, c.Gesture.MinScale)
	case c.Gesture.PanFactor < 0 || c.Gesture.MinPanDistance < 0:
		return fmt.Errorf("%w: gesture.pan_factor and gesture.min_pan_distance must not be negative", ErrInvalid)
	}
	return nil
}

func (g Gesture) Config() gesture.Config {
	return gesture.Config{
		MinScale:       g.MinScale,
		MaxScale:       g.MaxScale,
		PanFactor:      g.PanFactor,
		MinPanDistance: g.MinPanDistance,
	}
}

// Settings converts the fit and gesture sections for the map view presets.
func (c Config) Settings(logger log.Logger) mapview.Settings {
	return mapview.Settings{
		StatePadding:   c.Fit.StatePadding,
		DistrictMargin: c.Fit.DistrictMargin,
		DistrictKey:    c.Districts.JoinProperty,
		Gesture:        c.Gesture.Config(),
		Logger:         logger,
	}
}

// Logger builds the root logger. With toFile set, records go to Log.File in
// logfmt; the TUI owns stdout so it cannot log to the terminal. Otherwise
// records go to stderr.
func (c Config) Logger(toFile bool) (log.Logger, error) {
	lvl, err := log.LvlFromString(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("config: log.level: %w", err)
	}
	var h log.Handler
	if toFile {
		h, err = log.FileHandler(c.Log.File, log.LogfmtFormat())
		if err != nil {
			return nil, fmt.Errorf("config: log.file: %w", err)
		}
	} else {
		h = log.StreamHandler(os.Stderr, log.LogfmtFormat())
	}
	logger := log.New()
	logger.SetHandler(log.LvlFilterHandler(lvl, h))
	return logger, nil
}
