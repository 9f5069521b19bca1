package roll

import (
	"time"

	"github.com/mobinyousefi-cs/dice-roller/internal/common/clock"
	"github.com/mobinyousefi-cs/dice-roller/internal/common/uuid"
	"github.com/mobinyousefi-cs/dice-roller/internal/dice"
)

// Config holds configuration for the roll service
type Config struct {
	// DiceRoller produces the underlying rolls
	DiceRoller dice.Roller

	// Clock stamps roll results
	Clock clock.Clock

	// UUIDGenerator assigns an ID to every roll result
	UUIDGenerator uuid.UUID
}

// PerformRollInput contains parameters for performing a roll
type PerformRollInput struct {
	// Times is the number of dice to roll
	Times int

	// SumMode indicates the caller wants the sum highlighted
	SumMode bool
}

// PerformRollOutput contains the result of performing a roll
type PerformRollOutput struct {
	// RollID is the unique identifier for this roll
	RollID string

	// Values are the rolled values in sequence order
	Values []int

	// Faces are the display labels matching Values, for rendering
	Faces []string

	// Sum is the total of Values
	Sum int

	// SumMode echoes the input flag
	SumMode bool

	// RolledAt is when the roll happened
	RolledAt time.Time
}

// PerformBatchesInput contains parameters for rolling a sequence of batches
type PerformBatchesInput struct {
	// Counts are the batch sizes, processed in order
	Counts []int
}

// PerformBatchesOutput contains the result of rolling a sequence of batches
type PerformBatchesOutput struct {
	// RollID is the unique identifier for this roll
	RollID string

	// Results holds one entry per batch, in input order
	Results []int

	// RolledAt is when the roll happened
	RolledAt time.Time
}
