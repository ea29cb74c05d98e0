package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeRefund_TierBoundaries(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		hoursAhead time.Duration
		wantPct    int
	}{
		{"exactly 7 days", 168 * time.Hour, 100},
		{"just under 7 days", 168*time.Hour - time.Minute, 50},
		{"exactly 3 days", 72 * time.Hour, 50},
		{"just under 3 days", 72*time.Hour - time.Minute, 25},
		{"exactly 1 day", 24 * time.Hour, 25},
		{"just under 1 day", 24*time.Hour - time.Minute, 0},
		{"an hour before check-in", time.Hour, 0},
		{"well in advance", 400 * time.Hour, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := ComputeRefund(now, now.Add(tt.hoursAhead), true, 1000)
			assert.Equal(t, tt.wantPct, quote.Percentage)
			assert.Equal(t, 1000*float64(tt.wantPct)/100, quote.Amount)
		})
	}
}

func TestComputeRefund_UnpaidAlwaysZeroAmount(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, hoursAhead := range []time.Duration{400 * time.Hour, 100 * time.Hour, 30 * time.Hour, time.Hour} {
		quote := ComputeRefund(now, now.Add(hoursAhead), false, 1000)
		assert.Zero(t, quote.Amount, "unpaid booking must never refund money")
		assert.GreaterOrEqual(t, quote.Percentage, 0, "percentage is still reported for display")
	}
}

func TestComputeRefund_HundredHoursBefore(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	checkIn := now.Add(100 * time.Hour)

	quote := ComputeRefund(now, checkIn, true, 200)

	assert.Equal(t, 50, quote.Percentage)
	assert.Equal(t, 100.0, quote.Amount)
}
