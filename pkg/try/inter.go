package try

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the read side of Try, for code that inspects outcomes
// without transforming them.
type Outcome[V any] interface {
	// IsSuccessful returns true for a Success
	IsSuccessful() bool
	// Get returns the value, or the captured error of a Failure
	Get() (V, error)
	// FailureCause returns the captured error, nil for a Success
	FailureCause() error
	// Id identifies the instance
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

var _ Outcome[int] = Try[int]{}
