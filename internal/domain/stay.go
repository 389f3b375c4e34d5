package domain

import "time"

// Stay is one parking session for a plate, from entry to exit.
// ExitTime and DurationMinutes are nil while the stay is open and are set
// together, exactly once, when the matching exit is recorded.
type Stay struct {
	ID              int64      `json:"id"`
	Plate           string     `json:"plate"`
	EntryTime       time.Time  `json:"entry_time"`
	ExitTime        *time.Time `json:"exit_time"`
	DurationMinutes *int64     `json:"duration_minutes"`
}

// Open reports whether the stay has no recorded exit.
func (s Stay) Open() bool {
	return s.ExitTime == nil
}

// Close returns a copy of the stay with the exit time and the whole minutes
// elapsed since entry filled in.
func (s Stay) Close(exit time.Time) Stay {
	minutes := ElapsedMinutes(s.EntryTime, exit)
	s.ExitTime = &exit
	s.DurationMinutes = &minutes
	return s
}

// ElapsedMinutes is floor((exit - entry) / 60s). A clock that moved backwards
// yields 0 rather than a negative duration.
func ElapsedMinutes(entry, exit time.Time) int64 {
	d := exit.Sub(entry)
	if d < 0 {
		return 0
	}
	return int64(d / time.Minute)
}

// StayStatus selects stays by whether they have been closed.
type StayStatus string

const (
	StayAny    StayStatus = ""
	StayOpen   StayStatus = "open"
	StayClosed StayStatus = "closed"
)

// StayFilter narrows a stay listing. Zero values mean "no filter".
type StayFilter struct {
	Plate  string
	Status StayStatus
}
