package domain

import "time"

// DefaultRatePerMinute is the tariff used when no rate is configured,
// in whole currency units per minute.
const DefaultRatePerMinute int64 = 80

// Invoice prices one closed stay. It is immutable once created.
type Invoice struct {
	ID              int64     `json:"id"`
	StayID          int64     `json:"stay_id"`
	Plate           string    `json:"plate"`
	DurationMinutes int64     `json:"duration_minutes"`
	RatePerMinute   int64     `json:"rate_per_minute"`
	Total           int64     `json:"total"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// NewInvoice prices a closed stay at the given rate. The caller guarantees
// the stay is closed.
func NewInvoice(stay Stay, rate int64, at time.Time) Invoice {
	var minutes int64
	if stay.DurationMinutes != nil {
		minutes = *stay.DurationMinutes
	}
	return Invoice{
		StayID:          stay.ID,
		Plate:           stay.Plate,
		DurationMinutes: minutes,
		RatePerMinute:   rate,
		Total:           minutes * rate,
		GeneratedAt:     at,
	}
}
