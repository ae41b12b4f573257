package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Window   WindowConfig
	Interact InteractConfig
	Status   StatusConfig
}

// WindowConfig holds window and camera settings.
type WindowConfig struct {
	Width  int32
	Height int32
	Title  string
	FPS    int32
}

// InteractConfig holds the interaction timing knobs.
type InteractConfig struct {
	SettleDelayMS      int
	DebounceCooldownMS int
	MaxRayDistance     float64
}

// StatusConfig holds external status polling settings.
type StatusConfig struct {
	Enabled    bool
	IntervalMS int
}

func (c InteractConfig) SettleDelay() time.Duration {
	return time.Duration(c.SettleDelayMS) * time.Millisecond
}

func (c InteractConfig) DebounceCooldown() time.Duration {
	return time.Duration(c.DebounceCooldownMS) * time.Millisecond
}

func (c StatusConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// Load reads configuration from file and env. Env var overrides use prefix
// XRPANEL_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "XR Panel")
	v.SetDefault("window.fps", 120)
	v.SetDefault("interact.settledelayms", 120)
	v.SetDefault("interact.debouncecooldownms", 300)
	v.SetDefault("interact.maxraydistance", 100.0)
	v.SetDefault("status.enabled", true)
	v.SetDefault("status.intervalms", 1000)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("XRPANEL_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "xrpanel"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("XRPANEL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Interact.SettleDelayMS <= 0 {
		return fmt.Errorf("settle delay must be positive, got %dms", c.Interact.SettleDelayMS)
	}
	if c.Interact.MaxRayDistance <= 0 {
		return fmt.Errorf("max ray distance must be positive, got %f", c.Interact.MaxRayDistance)
	}
	if c.Status.Enabled && c.Status.IntervalMS <= 0 {
		return fmt.Errorf("status poll interval must be positive, got %dms", c.Status.IntervalMS)
	}
	return nil
}
