package extract

import "github.com/google/uuid"

// RunTokenGenerator generates unique run identifiers for extraction
// runs. Implemented by UUIDv7Generator (production) and FixedGenerator
// (tests, golden files need a stable token).
type RunTokenGenerator interface {
	Generate() string
}

// UUIDv7Generator produces time-ordered UUIDs so archived runs sort
// chronologically by id.
type UUIDv7Generator struct{}

func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator always returns the same token. Test use only.
type FixedGenerator struct {
	Token string
}

func (g FixedGenerator) Generate() string {
	return g.Token
}
