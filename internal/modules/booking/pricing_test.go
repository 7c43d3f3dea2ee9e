package booking

import (
	"testing"
	"time"

	"hotelier/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBillableUnits_RoundsUp(t *testing.T) {
	checkin := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	// 11 hours fits one 12-hour unit, 13 hours spills into a second.
	assert.Equal(t, 1, billableUnits(checkin, checkin.Add(11*time.Hour), 12))
	assert.Equal(t, 1, billableUnits(checkin, checkin.Add(12*time.Hour), 12))
	assert.Equal(t, 2, billableUnits(checkin, checkin.Add(13*time.Hour), 12))
	assert.Equal(t, 2, billableUnits(checkin, checkin.Add(24*time.Hour), 12))
	assert.Equal(t, 3, billableUnits(checkin, checkin.Add(25*time.Hour), 12))
}

func TestBillableUnits_NeverBelowOne(t *testing.T) {
	checkin := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, billableUnits(checkin, checkin, 12))
	assert.Equal(t, 1, billableUnits(checkin, checkin.Add(-2*time.Hour), 12))
	assert.Equal(t, 1, billableUnits(checkin, checkin.Add(30*time.Minute), 12))
}

func TestBillableUnits_ZeroTimestamps(t *testing.T) {
	checkin := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, billableUnits(time.Time{}, checkin, 12))
	assert.Equal(t, 1, billableUnits(checkin, time.Time{}, 12))
	assert.Equal(t, 1, billableUnits(time.Time{}, time.Time{}, 12))
}

func TestPriceLine(t *testing.T) {
	checkin := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	rate := domain.Money(150_00)

	units, total := priceLine(rate, checkin, checkin.Add(26*time.Hour), 12)
	assert.Equal(t, 3, units)
	assert.Equal(t, domain.Money(450_00), total)
}
