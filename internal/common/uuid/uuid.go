package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/mobinyousefi-cs/dice-roller/internal/common/uuid UUID

// UUID generates identifiers for roll results, injectable for tests
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using the uuid package
type DefaultUUID struct{}

// New returns a DefaultUUID
func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID string
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}
