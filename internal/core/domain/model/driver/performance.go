package driver

import "math"

// Performance is a read-only projection of a driver's historical shipment
// outcomes. It stores nothing: the same inputs always produce the same
// outputs, so it can be recomputed from the shipment table at any time.
type Performance struct {
	// TotalDeliveries is the count of shipments this driver delivered.
	TotalDeliveries int

	// FailedDeliveries is the count of shipments that ended in
	// DeliveryFailed, Returned, or PartialReturned with this driver.
	FailedDeliveries int

	// SuccessRate is round(delivered / (delivered + failed) * 100), 0 when
	// the driver has no outcomes.
	SuccessRate int

	// TotalEarnings is the sum of shipping costs over delivered shipments.
	TotalEarnings float64

	// Rating is min(5.0, 4.0 + bonus(SuccessRate)); base 4.0 applies to
	// drivers with no outcomes.
	Rating float64
}

// ComputePerformance derives a driver's performance figures from outcome
// counts and the delivered shipping-cost sum. The zero-shipment case yields
// success rate 0 and the base rating 4.0 without dividing by zero.
func ComputePerformance(delivered, failed int, totalEarnings float64) Performance {
	successRate := 0
	if delivered+failed > 0 {
		successRate = int(math.Round(float64(delivered) / float64(delivered+failed) * 100))
	}

	return Performance{
		TotalDeliveries:  delivered,
		FailedDeliveries: failed,
		SuccessRate:      successRate,
		TotalEarnings:    totalEarnings,
		Rating:           math.Min(5.0, 4.0+ratingBonus(successRate)),
	}
}

// ratingBonus is the step function mapping success rate to the rating bonus.
func ratingBonus(successRate int) float64 {
	switch {
	case successRate >= 95:
		return 0.8
	case successRate >= 90:
		return 0.5
	case successRate >= 85:
		return 0.3
	case successRate >= 80:
		return 0.1
	default:
		return 0
	}
}
