package booking

import "time"

// RefundQuote is the outcome of the cancellation arithmetic. Percentage is
// always reported for display; Amount is zero when nothing was collected.
type RefundQuote struct {
	Percentage int     `json:"refundPercentage"`
	Amount     float64 `json:"refundAmount"`
}

// ComputeRefund maps the time remaining until check-in to a refund tier:
//
//	>= 7 days  100%
//	>= 3 days   50%
//	>= 1 day    25%
//	 < 1 day     0%
//
// Tier boundaries are inclusive: exactly 168 hours out still refunds 100%.
func ComputeRefund(now, checkIn time.Time, isPaid bool, totalPrice float64) RefundQuote {
	hoursUntilCheckIn := checkIn.Sub(now).Hours()

	var percentage int
	switch {
	case hoursUntilCheckIn >= 168:
		percentage = 100
	case hoursUntilCheckIn >= 72:
		percentage = 50
	case hoursUntilCheckIn >= 24:
		percentage = 25
	default:
		percentage = 0
	}

	var amount float64
	if isPaid {
		amount = totalPrice * float64(percentage) / 100
	}

	return RefundQuote{Percentage: percentage, Amount: amount}
}
