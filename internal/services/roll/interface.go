package roll

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/mobinyousefi-cs/dice-roller/internal/services/roll Service

// Service defines the interface for roll operations
type Service interface {
	// PerformRoll rolls the configured die one or more times
	PerformRoll(ctx context.Context, input *PerformRollInput) (*PerformRollOutput, error)

	// PerformBatches rolls a sequence of batches, reporting the single
	// value for 1-sized batches and the batch sum otherwise
	PerformBatches(ctx context.Context, input *PerformBatchesInput) (*PerformBatchesOutput, error)
}
