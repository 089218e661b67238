// Package uuid generates character identifiers behind an interface tests can mock
package uuid

//go:generate mockgen -destination=mock/mock.go -package=mockuuid -source=uuid.go

import (
	"github.com/google/uuid"
)

// Generator creates identifiers
type Generator interface {
	New() string
}

// GoogleUUIDGenerator creates random v4 UUIDs
type GoogleUUIDGenerator struct{}

// New implements Generator
func (g *GoogleUUIDGenerator) New() string {
	return uuid.NewString()
}

// NewGoogleUUIDGenerator creates a v4 generator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// IsValid reports whether id parses as a UUID
func IsValid(id string) bool {
	return uuid.Validate(id) == nil
}
