package domain_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/paid-parking/backend/internal/domain"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.EventKind
		wantErr bool
	}{
		{in: "entry", want: domain.KindEntry},
		{in: "exit", want: domain.KindExit},
		{in: " EXIT ", want: domain.KindExit},
		{in: "park", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseKind(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestElapsedMinutes(t *testing.T) {
	entry := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	assert.EqualValues(t, 2, domain.ElapsedMinutes(entry, entry.Add(125*time.Second)))
	assert.EqualValues(t, 0, domain.ElapsedMinutes(entry, entry.Add(59*time.Second)))
	assert.EqualValues(t, 60, domain.ElapsedMinutes(entry, entry.Add(time.Hour)))
	assert.EqualValues(t, 0, domain.ElapsedMinutes(entry, entry.Add(-time.Minute)), "clock skew must not go negative")
}

func TestStay_Close(t *testing.T) {
	entry := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	open := domain.Stay{ID: 7, Plate: "ABC123", EntryTime: entry}
	require.True(t, open.Open())

	closed := open.Close(entry.Add(10 * time.Minute))

	assert.False(t, closed.Open())
	require.NotNil(t, closed.DurationMinutes)
	assert.EqualValues(t, 10, *closed.DurationMinutes)
	assert.True(t, open.Open(), "Close must not mutate the receiver")
}

func TestNewInvoice(t *testing.T) {
	entry := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	stay := domain.Stay{ID: 3, Plate: "ABC123", EntryTime: entry}.Close(entry.Add(10 * time.Minute))
	at := entry.Add(11 * time.Minute)

	inv := domain.NewInvoice(stay, domain.DefaultRatePerMinute, at)

	assert.EqualValues(t, 3, inv.StayID)
	assert.Equal(t, "ABC123", inv.Plate)
	assert.EqualValues(t, 10, inv.DurationMinutes)
	assert.EqualValues(t, 80, inv.RatePerMinute)
	assert.EqualValues(t, 800, inv.Total)
	assert.Equal(t, at, inv.GeneratedAt)
}

func TestNewPaginationParams(t *testing.T) {
	intPtr := func(i int) *int { return &i }

	p := domain.NewPaginationParams(nil, nil)
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, p)

	p = domain.NewPaginationParams(intPtr(3), intPtr(500))
	assert.Equal(t, domain.PaginationParams{Page: 3, Limit: 100}, p)
	assert.Equal(t, 200, p.Offset())

	p = domain.NewPaginationParams(intPtr(0), intPtr(-1))
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, p)
}

func TestNewPaginationParams_HugePageKeepsOffsetPositive(t *testing.T) {
	page := math.MaxInt
	for _, limit := range []int{1, 20, 100, 500} {
		p := domain.NewPaginationParams(&page, &limit)

		assert.Equal(t, domain.MaxPage, p.Page)
		assert.Positive(t, p.Offset(), "limit=%d", limit)
	}
}
