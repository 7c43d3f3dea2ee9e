package booking

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps_HalfOpen(t *testing.T) {
	base := time.Date(2026, 4, 1, 14, 0, 0, 0, time.UTC)

	// back-to-back stays share a boundary instant but do not overlap
	assert.False(t, overlaps(base, base.Add(12*time.Hour), base.Add(12*time.Hour), base.Add(24*time.Hour)))
	assert.False(t, overlaps(base.Add(12*time.Hour), base.Add(24*time.Hour), base, base.Add(12*time.Hour)))

	assert.True(t, overlaps(base, base.Add(12*time.Hour), base.Add(11*time.Hour), base.Add(24*time.Hour)))
	assert.True(t, overlaps(base, base.Add(24*time.Hour), base.Add(6*time.Hour), base.Add(10*time.Hour)))
	assert.True(t, overlaps(base, base.Add(12*time.Hour), base, base.Add(12*time.Hour)))
}

// Two half-open intervals overlap exactly when the later start falls
// before the earlier end. Random pairs keep the table above honest.
func TestOverlaps_MatchesIntervalIntersection(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 1000; i++ {
		aStart := base.Add(time.Duration(r.Intn(96)) * time.Hour)
		aEnd := aStart.Add(time.Duration(1+r.Intn(48)) * time.Hour)
		bStart := base.Add(time.Duration(r.Intn(96)) * time.Hour)
		bEnd := bStart.Add(time.Duration(1+r.Intn(48)) * time.Hour)

		laterStart := aStart
		if bStart.After(laterStart) {
			laterStart = bStart
		}
		earlierEnd := aEnd
		if bEnd.Before(earlierEnd) {
			earlierEnd = bEnd
		}

		assert.Equal(t, laterStart.Before(earlierEnd), overlaps(aStart, aEnd, bStart, bEnd),
			"a=[%v,%v) b=[%v,%v)", aStart, aEnd, bStart, bEnd)
	}
}
