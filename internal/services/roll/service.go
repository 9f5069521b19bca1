package roll

import (
	"context"

	"github.com/mobinyousefi-cs/dice-roller/internal/common/clock"
	"github.com/mobinyousefi-cs/dice-roller/internal/common/uuid"
	"github.com/mobinyousefi-cs/dice-roller/internal/dice"
)

// service implements the Service interface
type service struct {
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new roll service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// PerformRoll rolls the configured die one or more times. Validation
// errors from the roller pass through unwrapped so callers can match
// the dice package sentinels.
func (s *service) PerformRoll(ctx context.Context, input *PerformRollInput) (*PerformRollOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	values, err := s.diceRoller.Roll(input.Times)
	if err != nil {
		return nil, err
	}

	die := s.diceRoller.Die()
	faces := make([]string, len(values))
	sum := 0
	for i, v := range values {
		sum += v
		if face, ok := die.FaceForValue(v); ok {
			faces[i] = face
		}
	}

	return &PerformRollOutput{
		RollID:   s.uuidGenerator.NewUUID(),
		Values:   values,
		Faces:    faces,
		Sum:      sum,
		SumMode:  input.SumMode,
		RolledAt: s.clock.Now(),
	}, nil
}

// PerformBatches rolls a sequence of batches in input order
func (s *service) PerformBatches(ctx context.Context, input *PerformBatchesInput) (*PerformBatchesOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if len(input.Counts) == 0 {
		return nil, ErrEmptyCounts
	}

	results, err := s.diceRoller.RollSequence(input.Counts)
	if err != nil {
		return nil, err
	}

	return &PerformBatchesOutput{
		RollID:   s.uuidGenerator.NewUUID(),
		Results:  results,
		RolledAt: s.clock.Now(),
	}, nil
}
