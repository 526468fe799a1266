package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/vi-missile/parameter"
)

// EnvPrefix namespaces environment overrides, sim.seed reads VIMISSILE_SIM_SEED
const EnvPrefix = "VIMISSILE"

// SimConfig holds missile engine settings
type SimConfig struct {
	Seed         uint64 `mapstructure:"seed"`
	Capacity     int    `mapstructure:"capacity"`
	Depth        int    `mapstructure:"depth"`
	Hellfire     bool   `mapstructure:"hellfire"`
	FriendlyFire bool   `mapstructure:"friendly_fire"`
	TickMillis   int    `mapstructure:"tick_ms"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

// JournalConfig holds the desync journal settings
type JournalConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// AudioConfig toggles synthesized sound
type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LevelConfig sizes the sandbox level
type LevelConfig struct {
	Width     int   `mapstructure:"width"`
	Height    int   `mapstructure:"height"`
	NoiseSeed int64 `mapstructure:"noise_seed"`
}

// Config is the full sandbox configuration
type Config struct {
	Sim     SimConfig     `mapstructure:"sim"`
	Log     LogConfig     `mapstructure:"log"`
	Journal JournalConfig `mapstructure:"journal"`
	Audio   AudioConfig   `mapstructure:"audio"`
	Level   LevelConfig   `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sim.seed", 1)
	v.SetDefault("sim.capacity", 500)
	v.SetDefault("sim.depth", 1)
	v.SetDefault("sim.hellfire", false)
	v.SetDefault("sim.friendly_fire", false)
	v.SetDefault("sim.tick_ms", parameter.GameUpdateInterval.Milliseconds())

	v.SetDefault("log.level", "info")
	v.SetDefault("log.console", true)

	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.path", "missile-journal.db")

	v.SetDefault("audio.enabled", true)

	v.SetDefault("level.width", parameter.SandboxWidth)
	v.SetDefault("level.height", parameter.SandboxHeight)
	v.SetDefault("level.noise_seed", 0)
}

// Load reads defaults, the optional file at path and VIMISSILE_ environment overrides
// An empty path skips the file, the format follows its extension
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot run with
func (c Config) Validate() error {
	if c.Sim.Capacity < 0 {
		return fmt.Errorf("sim.capacity %d: must not be negative", c.Sim.Capacity)
	}
	if c.Sim.Depth < 0 || c.Sim.Depth > parameter.MaxDepth {
		return fmt.Errorf("sim.depth %d: out of range 0..%d", c.Sim.Depth, parameter.MaxDepth)
	}
	if c.Sim.TickMillis <= 0 {
		return fmt.Errorf("sim.tick_ms %d: must be positive", c.Sim.TickMillis)
	}
	if c.Level.Width < 3 || c.Level.Height < 3 {
		return fmt.Errorf("level size %dx%d: minimum is 3x3", c.Level.Width, c.Level.Height)
	}
	return nil
}
