package idgen

import "github.com/google/uuid"

// New returns a time-ordered identifier (UUIDv7). If the v7 generator
// fails it falls back to a random v4.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
