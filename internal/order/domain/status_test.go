package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, st := range Statuses() {
		got, err := ParseStatus(string(st))
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}

	got, err := ParseStatus("  shipped ")
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, got)

	for _, bad := range []string{"", "Lost", "Pending!", "PENDINGX"} {
		_, err := ParseStatus(bad)
		assert.Error(t, err, bad)
	}
}

func TestCanTransitionIsPermissive(t *testing.T) {
	for _, from := range Statuses() {
		for _, to := range Statuses() {
			assert.True(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
	assert.False(t, CanTransition(StatusPending, Status("Lost")))
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusShipped.IsTerminal())
}

func TestSumLines(t *testing.T) {
	lines := []Line{
		{ProductID: "a", UnitPrice: decimal.RequireFromString("9.99"), Quantity: 2},
		{ProductID: "b", UnitPrice: decimal.RequireFromString("0.01"), Quantity: 3},
	}
	assert.Equal(t, "20.01", SumLines(lines).StringFixed(2))
	assert.True(t, SumLines(nil).IsZero())
}
