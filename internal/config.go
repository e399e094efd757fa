package internal

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"
)

type NovaFrameConfig struct {
	AppName string `mapstructure:"app_name"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`

	Frame struct {
		// Capacity is passed to Frame.Grow before loading records.
		Capacity int `mapstructure:"capacity"`
	} `mapstructure:"frame"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "novaframe")
	v.SetDefault("log.level", "info")
	v.SetDefault("frame.capacity", 0)
}

// Defaults returns the configuration used when no file is given.
func Defaults() *NovaFrameConfig {
	v := viper.New()
	setDefaults(v)

	var cfg NovaFrameConfig
	// Unmarshalling plain defaults cannot fail.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func LoadConfig(path string) (*NovaFrameConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg NovaFrameConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Frame.Capacity < 0 {
		return nil, fmt.Errorf("frame.capacity must not be negative, got %d", cfg.Frame.Capacity)
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SlogLevel parses Log.Level ("debug", "info", "warn", "error").
func (c *NovaFrameConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}
