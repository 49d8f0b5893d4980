package synth

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestScheduleFullYear(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dates := Schedule(rng, date(2020, 1, 1), date(2020, 12, 31), 2)

	// 365-day span, 12 months, 2 per month.
	require.Len(t, dates, 24)
	for i, d := range dates {
		assert.False(t, d.Before(date(2020, 1, 1)), "date %d out of range", i)
		assert.False(t, d.After(date(2020, 12, 31)), "date %d out of range", i)
		if i > 0 {
			assert.False(t, d.Before(dates[i-1]), "dates must be sorted")
		}
	}
}

func TestScheduleDeterministicForSeed(t *testing.T) {
	a := Schedule(rand.New(rand.NewSource(42)), date(2021, 3, 1), date(2021, 9, 1), 3)
	b := Schedule(rand.New(rand.NewSource(42)), date(2021, 3, 1), date(2021, 9, 1), 3)
	assert.Equal(t, a, b)
}

func TestScheduleCountFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	dates := Schedule(rng, date(2022, 6, 1), date(2022, 6, 6), 2)
	assert.Len(t, dates, 10, "short ranges still yield the minimum")
}

func TestScheduleCountCeiling(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	dates := Schedule(rng, date(2010, 1, 1), date(2020, 1, 1), 4)
	assert.Len(t, dates, 100)
}

func TestScheduleSameDayCollisionsAllowed(t *testing.T) {
	// Dense target over a short span forces shared days; they must survive.
	rng := rand.New(rand.NewSource(3))
	dates := Schedule(rng, date(2022, 6, 1), date(2022, 6, 3), 2)
	require.Len(t, dates, 10)
	seen := map[time.Time]int{}
	for _, d := range dates {
		seen[d]++
	}
	assert.Less(t, len(seen), len(dates), "expected at least one same-day pair")
}
