package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/paid-parking/backend/internal/domain"
)

func TestEventRepo_Create(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	stay, err := r.stays.Create(ctx, "ABC123", entryAt)
	require.NoError(t, err)

	got, err := r.events.Create(ctx, domain.Event{
		Plate:     "ABC123",
		Kind:      domain.KindEntry,
		Timestamp: entryAt,
		StayID:    &stay.ID,
		Accepted:  true,
	})

	require.NoError(t, err)
	assert.NotZero(t, got.ID)
	assert.Equal(t, domain.KindEntry, got.Kind)
	require.NotNil(t, got.StayID)
	assert.Equal(t, stay.ID, *got.StayID)
	assert.True(t, got.Accepted)
}

func TestEventRepo_Create_Rejected(t *testing.T) {
	r := newTestRepos(t)

	got, err := r.events.Create(context.Background(), domain.Event{
		Plate:     "ABC123",
		Kind:      domain.KindExit,
		Timestamp: entryAt,
	})

	require.NoError(t, err)
	assert.Nil(t, got.StayID)
	assert.False(t, got.Accepted)
}

func TestEventRepo_List(t *testing.T) {
	r := newTestRepos(t)
	ctx := context.Background()

	for i, plate := range []string{"ABC123", "XYZ789", "ABC123"} {
		_, err := r.events.Create(ctx, domain.Event{
			Plate:     plate,
			Kind:      domain.KindEntry,
			Timestamp: entryAt.Add(time.Duration(i) * time.Minute),
			Accepted:  true,
		})
		require.NoError(t, err)
	}
	page := domain.PaginationParams{Page: 1, Limit: 10}

	all, total, err := r.events.List(ctx, "", page)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, all, 3)

	mine, total, err := r.events.List(ctx, "ABC123", page)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Greater(t, mine[0].ID, mine[1].ID, "newest first")
}
