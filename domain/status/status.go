// Package status models the liveness check-in records clients post to the
// portal.
package status

import (
	"time"

	"github.com/google/uuid"
)

// Check is one client status check-in
type Check struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewCheck creates a check for the named client with a fresh id and the
// current UTC time
func NewCheck(clientName string) Check {
	return Check{
		ID:         uuid.New().String(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
}
