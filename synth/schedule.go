package synth

import (
	"math/rand"
	"sort"
	"time"
)

const (
	minObservations = 10
	maxObservations = 100
	jitterDays      = 5
	defaultPerMonth = 2
)

// Schedule spreads observation dates evenly across [start, end] with a small
// random jitter, mimicking irregular satellite revisit times. The result is
// sorted ascending. Two observations may land on the same calendar day; this
// is intentional, real passes from different platforms can coincide.
func Schedule(rng *rand.Rand, start, end time.Time, perMonth int) []time.Time {
	if perMonth <= 0 {
		perMonth = defaultPerMonth
	}
	start = dateOnlyUTC(start)
	end = dateOnlyUTC(end)

	days := int(end.Sub(start).Hours() / 24)
	if days < 1 {
		days = 1
	}
	months := days / 30
	if months < 1 {
		months = 1
	}
	count := months * perMonth
	if count < minObservations {
		count = minObservations
	}
	if count > maxObservations {
		count = maxObservations
	}

	dates := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		offset := float64(i) * float64(days) / float64(count)
		offset += (rng.Float64()*2 - 1) * jitterDays
		day := int(offset)
		if day < 0 {
			day = 0
		}
		if day > days {
			day = days
		}
		dates = append(dates, start.AddDate(0, 0, day))
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// dateOnlyUTC normalizes a timestamp to 00:00:00 UTC (one bucket per day).
func dateOnlyUTC(t time.Time) time.Time {
	tt := t.UTC()
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.UTC)
}
