package schedule

import (
	"math"
	"time"
)

const centsPerUnit = 100

// PriceCents is duration × hourly rate in cents, rounded half up. The rate is
// taken to two decimals first so the arithmetic stays exact.
func PriceCents(duration time.Duration, hourlyRate float64) int64 {
	if duration <= 0 || hourlyRate <= 0 {
		return 0
	}

	rateCents := int64(math.Round(hourlyRate * centsPerUnit))
	seconds := int64(duration / time.Second)
	secondsPerHour := int64(time.Hour / time.Second)

	return (seconds*rateCents + secondsPerHour/2) / secondsPerHour
}

// Price is the charge for interval at hourlyRate, rounded to two decimals.
func Price(interval Interval, hourlyRate float64) float64 {
	return CentsToAmount(PriceCents(interval.Duration(), hourlyRate))
}

func CentsToAmount(cents int64) float64 {
	return float64(cents) / centsPerUnit
}

func AmountToCents(amount float64) int64 {
	return int64(math.Round(amount * centsPerUnit))
}
