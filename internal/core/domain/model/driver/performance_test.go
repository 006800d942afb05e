package driver_test

import (
	"testing"

	"freight/internal/core/domain/model/driver"

	"github.com/stretchr/testify/assert"
)

func TestComputePerformance_NoShipments(t *testing.T) {
	p := driver.ComputePerformance(0, 0, 0)

	assert.Equal(t, 0, p.TotalDeliveries)
	assert.Equal(t, 0, p.FailedDeliveries)
	assert.Equal(t, 0, p.SuccessRate)
	assert.InDelta(t, 0, p.TotalEarnings, 1e-9)
	assert.InDelta(t, 4.0, p.Rating, 1e-9)
}

func TestComputePerformance_NineteenOfTwenty(t *testing.T) {
	// 19 delivered, 1 failed, 1900 earned: 95% success, top bonus.
	p := driver.ComputePerformance(19, 1, 1900)

	assert.Equal(t, 95, p.SuccessRate)
	assert.InDelta(t, 4.8, p.Rating, 1e-9)
	assert.InDelta(t, 1900, p.TotalEarnings, 1e-9)
}

func TestComputePerformance_RatingSteps(t *testing.T) {
	testCases := []struct {
		name      string
		delivered int
		failed    int
		rate      int
		rating    float64
	}{
		{"perfect", 10, 0, 100, 4.8},
		{"ninety_five", 95, 5, 95, 4.8},
		{"ninety", 90, 10, 90, 4.5},
		{"eighty_five", 85, 15, 85, 4.3},
		{"eighty", 80, 20, 80, 4.1},
		{"seventy_nine", 79, 21, 79, 4.0},
		{"half", 1, 1, 50, 4.0},
		{"all_failed", 0, 5, 0, 4.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := driver.ComputePerformance(tc.delivered, tc.failed, 0)
			assert.Equal(t, tc.rate, p.SuccessRate)
			assert.InDelta(t, tc.rating, p.Rating, 1e-9)
		})
	}
}

func TestComputePerformance_Rounding(t *testing.T) {
	// 2 of 3 is 66.67 -> 67.
	p := driver.ComputePerformance(2, 1, 0)
	assert.Equal(t, 67, p.SuccessRate)

	// 1 of 3 is 33.33 -> 33.
	p = driver.ComputePerformance(1, 2, 0)
	assert.Equal(t, 33, p.SuccessRate)
}

func TestComputePerformance_RatingNeverExceedsFive(t *testing.T) {
	p := driver.ComputePerformance(1000, 0, 0)
	assert.LessOrEqual(t, p.Rating, 5.0)
}
