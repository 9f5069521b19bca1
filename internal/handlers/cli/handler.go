// Package cli renders roll results on a terminal. It is a thin
// presentation layer over the roll service; all validation and roll
// generation stays in the core.
package cli

import (
	"context"
	"io"

	"github.com/mobinyousefi-cs/dice-roller/internal/services/roll"
	log "github.com/sirupsen/logrus"
)

// Handler runs rolls in command-line mode
type Handler struct {
	rollService roll.Service
	output      io.Writer
}

// Config holds the configuration for the CLI handler
type Config struct {
	// RollService performs the rolls
	RollService roll.Service

	// Output receives the user-facing result text
	Output io.Writer
}

// New creates a new CLI handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RollService == nil {
		return nil, ErrNilRollService
	}

	if cfg.Output == nil {
		return nil, ErrNilOutput
	}

	return &Handler{
		rollService: cfg.RollService,
		output:      cfg.Output,
	}, nil
}

// RunInput contains parameters for a CLI run
type RunInput struct {
	// Num is the number of dice to roll
	Num int

	// SumMode prints the sum alongside the results when Num > 1
	SumMode bool
}

// Run rolls the dice once and prints the result. A single die prints
// its value, multiple dice print the value list, and sum mode appends
// the total.
func (h *Handler) Run(ctx context.Context, input *RunInput) error {
	output, err := h.rollService.PerformRoll(ctx, &roll.PerformRollInput{
		Times:   input.Num,
		SumMode: input.SumMode,
	})
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"roll_id": output.RollID,
		"values":  output.Values,
	}).Debug("performed roll")

	switch {
	case input.SumMode && input.Num > 1:
		_, err = io.WriteString(h.output, formatSum(output.Values, output.Sum))
	case input.Num > 1:
		_, err = io.WriteString(h.output, formatValues(output.Values))
	default:
		_, err = io.WriteString(h.output, formatSingle(output.Values[0]))
	}

	return err
}
