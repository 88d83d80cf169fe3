package usecases

import (
	"github.com/google/uuid"
)

// parseID parses a route or payload identifier into a UUID.
func parseID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}
