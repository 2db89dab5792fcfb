package store

import "github.com/google/uuid"

// NewID generates a collision-resistant entity id with a readable prefix,
// e.g. "prod-7f9c2e...". All id generation goes through here so the
// uniqueness guarantee lives in one place.
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
