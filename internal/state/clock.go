package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

var sequence uint64

// NewPrimitiveID returns a unique primitive ID and a monotonically
// increasing sequence number for paint ordering.
func NewPrimitiveID() (string, uint64) {
	return uuid.NewString(), atomic.AddUint64(&sequence, 1)
}
