package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/paid-parking/backend/internal/domain"
)

func TestInvoiceRepo_Create(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	stay := mustCloseStay(t, r.stays, "ABC123", 10*time.Minute)

	got, err := r.invoices.Create(ctx, domain.NewInvoice(stay, 80, entryAt.Add(11*time.Minute)))

	require.NoError(t, err)
	assert.NotZero(t, got.ID)
	assert.Equal(t, stay.ID, got.StayID)
	assert.EqualValues(t, 10, got.DurationMinutes)
	assert.EqualValues(t, 800, got.Total)
}

func TestInvoiceRepo_LatestByStay(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	stay := mustCloseStay(t, r.stays, "ABC123", 10*time.Minute)

	_, err := r.invoices.LatestByStay(ctx, stay.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	first, err := r.invoices.Create(ctx, domain.NewInvoice(stay, 80, entryAt))
	require.NoError(t, err)
	second, err := r.invoices.Create(ctx, domain.NewInvoice(stay, 80, entryAt))
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	got, err := r.invoices.LatestByStay(ctx, stay.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
}

func TestInvoiceRepo_List(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()
	a := mustCloseStay(t, r.stays, "ABC123", time.Minute)
	b := mustCloseStay(t, r.stays, "XYZ789", time.Minute)

	for _, s := range []domain.Stay{a, b} {
		_, err := r.invoices.Create(ctx, domain.NewInvoice(s, 80, entryAt))
		require.NoError(t, err)
	}
	page := domain.PaginationParams{Page: 1, Limit: 10}

	all, total, err := r.invoices.List(ctx, "", page)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, all, 2)

	mine, total, err := r.invoices.List(ctx, "XYZ789", page)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "XYZ789", mine[0].Plate)
}
