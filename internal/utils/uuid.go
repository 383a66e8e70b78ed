package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for object keys and trace IDs.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to v4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewResetToken returns an unguessable single-use token (UUIDv4, 122 random
// bits).
func (g *UUIDGenerator) NewResetToken() string {
	return uuid.NewString()
}
