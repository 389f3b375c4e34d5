// Package domain contains the core data types for the paid-parking API.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler, broker).
package domain

import (
	"fmt"
	"strings"
	"time"
)

// EventKind is the direction of a gate event.
type EventKind string

const (
	KindEntry EventKind = "entry"
	KindExit  EventKind = "exit"
)

// ParseKind validates a raw kind string from the request layer.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseKind(s string) (EventKind, error) {
	switch k := EventKind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindEntry, KindExit:
		return k, nil
	default:
		return "", fmt.Errorf("%w: kind must be %q or %q", ErrValidation, KindEntry, KindExit)
	}
}

// Event is one row of the append-only gate log. It is never updated or deleted.
//
// StayID points to the stay the event opened or closed; it is nil for events
// whose transition was rejected (Accepted == false).
type Event struct {
	ID        int64     `json:"id"`
	Plate     string    `json:"plate"`
	Kind      EventKind `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
	StayID    *int64    `json:"stay_id,omitempty"`
	Accepted  bool      `json:"accepted"`
}

// Recording is the outcome of a successful entry or exit: the appended event
// and the stay as it looks after the transition.
type Recording struct {
	Event Event `json:"event"`
	Stay  Stay  `json:"stay"`
}
