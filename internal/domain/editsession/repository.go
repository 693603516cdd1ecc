package editsession

import (
	"context"
	"time"
)

// Store holds live edit sessions. A session belongs to exactly one edit
// screen; Update serializes every mutation of a session so guard decisions
// and saves never interleave.
type Store interface {
	Create(ctx context.Context, s *Session) error
	Update(ctx context.Context, id string, fn func(*Session) error) error
	Delete(ctx context.Context, id string) error

	// DeleteStale drops sessions untouched since the cutoff (abandoned
	// screens that never closed) and returns how many were dropped.
	DeleteStale(ctx context.Context, cutoff time.Time) (int, error)
}
