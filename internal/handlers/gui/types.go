package gui

import (
	"github.com/mobinyousefi-cs/dice-roller/internal/dice"
	"github.com/mobinyousefi-cs/dice-roller/internal/services/roll"
)

// ServiceFactory builds a roll service over the given die. The GUI
// rebuilds its service whenever the seed entry changes, so a fresh
// generator picks up the new seed (rolls never reseed in place).
type ServiceFactory func(die *dice.Die, seed int64, seeded bool) (roll.Service, error)

// Config holds the configuration for the GUI handler
type Config struct {
	// Die to roll and render
	Die *dice.Die

	// ServiceFactory creates the roll service per seed
	ServiceFactory ServiceFactory
}

func (cfg *Config) validate() error {
	if cfg == nil {
		return ErrNilConfig
	}

	if cfg.Die == nil {
		return ErrNilDie
	}

	if cfg.ServiceFactory == nil {
		return ErrNilServiceFactory
	}

	return nil
}
