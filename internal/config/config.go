// Package config loads the optional application config file. The file
// only describes the die and logging; no runtime state is ever written.
package config

import (
	"fmt"

	"github.com/mobinyousefi-cs/dice-roller/internal/dice"
	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	// Debug enables debug logging
	Debug bool

	// DieSides is the number of sides on the die
	DieSides int

	// DieFaces are optional display labels, one per side
	DieFaces []string

	// DieValues are optional numeric values, one per side
	DieValues []int
}

// Default returns the configuration used when no file is provided:
// the standard 6-sided die and no debug logging
func Default() *Config {
	return &Config{
		DieSides: 6,
	}
}

// Load reads a TOML config file. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetDefault("die.sides", 6)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return &Config{
		Debug:     v.GetBool("app.debug"),
		DieSides:  v.GetInt("die.sides"),
		DieFaces:  v.GetStringSlice("die.faces"),
		DieValues: v.GetIntSlice("die.values"),
	}, nil
}

// Die builds the configured die. When the file customizes nothing the
// standard unicode-faced die is returned; otherwise the die package
// validates the customization.
func (c *Config) Die() (*dice.Die, error) {
	if c.DieSides == 6 && len(c.DieFaces) == 0 && len(c.DieValues) == 0 {
		return dice.DefaultDie(), nil
	}

	dieCfg := &dice.DieConfig{
		Sides: c.DieSides,
	}
	if len(c.DieFaces) > 0 {
		dieCfg.Faces = c.DieFaces
	}
	if len(c.DieValues) > 0 {
		dieCfg.Values = c.DieValues
	}

	return dice.NewDie(dieCfg)
}
