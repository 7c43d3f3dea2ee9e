package booking

import (
	"math"
	"time"

	"hotelier/internal/domain"
)

// billableUnits converts a stay into discrete billing units of unitHours
// each. Rounding is always up and never below one unit: hotels bill in
// fixed blocks, and a zero-revenue booking must be impossible. A missing
// or inverted timestamp pair falls back to a single unit.
func billableUnits(checkinAt, checkoutAt time.Time, unitHours int) int {
	if checkinAt.IsZero() || checkoutAt.IsZero() {
		return 1
	}

	diff := checkoutAt.Sub(checkinAt)
	if diff <= 0 {
		return 1
	}

	units := int(math.Ceil(diff.Hours() / float64(unitHours)))
	if units < 1 {
		units = 1
	}
	return units
}

// priceLine computes the billable duration and line total for one room
// reservation at the given per-unit rate.
func priceLine(rate domain.Money, checkinAt, checkoutAt time.Time, unitHours int) (int, domain.Money) {
	units := billableUnits(checkinAt, checkoutAt, unitHours)
	return units, domain.Money(int64(units)) * rate
}
