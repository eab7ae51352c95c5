package utils

import "github.com/google/uuid"

// UUIDGenerator issues trace IDs for inbound and outgoing requests.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7 so trace IDs sort by creation. It
// falls back to a random UUIDv4 when the clock source fails.
func (g *UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
