package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/paid-parking/backend/internal/clock"
	"github.com/pkordes/paid-parking/backend/internal/domain"
	"github.com/pkordes/paid-parking/backend/internal/service"
)

// TestLifecycle_EntryExitInvoice drives the whole flow for one plate:
// entry, time passes, exit, invoice.
func TestLifecycle_EntryExitInvoice(t *testing.T) {
	store := newMemStore()
	clk := clock.NewManual(t0)
	rec := newRecorder(store, clk)
	stays := service.NewStayService(store.stayRepo())
	inv := newInvoicer(store, clk)
	ctx := context.Background()

	_, err := rec.Record(ctx, "ABC123", "entry")
	require.NoError(t, err)

	open, err := stays.GetOpen(ctx, "ABC123")
	require.NoError(t, err)

	clk.Advance(10*time.Minute + 30*time.Second)
	exit, err := rec.Record(ctx, "ABC123", "exit")
	require.NoError(t, err)
	assert.Equal(t, open.ID, exit.Stay.ID)

	_, err = stays.GetOpen(ctx, "ABC123")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	invoice, _, err := inv.Generate(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, *exit.Stay.DurationMinutes, invoice.DurationMinutes)
	assert.EqualValues(t, 800, invoice.Total)
}

// TestLifecycle_AtMostOneOpenStayPerPlate replays a deterministic mix of
// entries and exits across plates and checks the invariant after every step.
func TestLifecycle_AtMostOneOpenStayPerPlate(t *testing.T) {
	store := newMemStore()
	clk := clock.NewManual(t0)
	rec := newRecorder(store, clk)
	ctx := context.Background()

	plates := []string{"AAA111", "BBB222", "CCC333"}
	kinds := []string{"entry", "entry", "exit", "entry", "exit", "exit"}

	for i := 0; i < 60; i++ {
		plate := plates[(i*7)%len(plates)]
		kind := kinds[(i*5)%len(kinds)]
		clk.Advance(time.Duration(i) * time.Second)
		_, _ = rec.Record(ctx, plate, kind)

		openByPlate := map[string]int{}
		for _, s := range store.stays {
			if s.Open() {
				openByPlate[s.Plate]++
			}
		}
		for p, n := range openByPlate {
			require.LessOrEqual(t, n, 1, fmt.Sprintf("step %d: plate %s has %d open stays", i, p, n))
		}
	}
	assert.Len(t, store.events, 60, "every entry/exit call leaves one event row")
}
