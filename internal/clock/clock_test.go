package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/paid-parking/backend/internal/clock"
)

func TestManual_Advance(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c := clock.NewManual(start)

	assert.Equal(t, start, c.Now())
	c.Advance(125 * time.Second)
	assert.Equal(t, start.Add(125*time.Second), c.Now())
}

func TestSystem_ReturnsUTC(t *testing.T) {
	now := clock.NewSystem().Now()
	assert.Equal(t, time.UTC, now.Location())
}
