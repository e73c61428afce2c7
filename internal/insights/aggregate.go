package insights

import (
	"sort"
	"time"

	"github.com/carelog/backend/internal/models"
)

// weeklyAggregationThreshold is the point count above which a filtered
// series is collapsed into weekly buckets. In practice only the 1Y view on
// dense data crosses it.
const weeklyAggregationThreshold = 60

// day truncates a timestamp to its calendar date.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FilterTimeframe keeps only points on or after now minus the timeframe's
// lookback window.
func FilterTimeframe(points []models.MetricPoint, tf models.Timeframe, now time.Time) []models.MetricPoint {
	cutoff := day(now).AddDate(0, 0, -tf.Days())
	filtered := make([]models.MetricPoint, 0, len(points))
	for _, p := range points {
		d, ok := ParseDay(p.Date)
		if !ok {
			continue
		}
		if !d.Before(cutoff) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// weekStart returns the preceding Sunday for a date (the date itself when
// it already is a Sunday).
func weekStart(d time.Time) time.Time {
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// AggregateWeekly collapses a dense series into per-week averages, keyed
// by each point's week start. Series at or below the threshold are
// returned unchanged.
func AggregateWeekly(points []models.MetricPoint) []models.MetricPoint {
	if len(points) <= weeklyAggregationThreshold {
		return points
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, p := range points {
		d, ok := ParseDay(p.Date)
		if !ok {
			continue
		}
		key := formatDay(weekStart(d))
		sums[key] += p.Value
		counts[key]++
	}

	buckets := make([]models.MetricPoint, 0, len(sums))
	for key, sum := range sums {
		buckets = append(buckets, models.MetricPoint{Date: key, Value: sum / float64(counts[key])})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date < buckets[j].Date
	})
	return buckets
}

// Change7d compares the mean of points in the trailing week against the
// mean of the week before it: [today-7, today] versus [today-14, today-7).
// It returns nil when either window is empty, so callers can render an
// explicit "not enough history" state instead of a misleading zero.
func Change7d(points []models.MetricPoint, now time.Time) *float64 {
	today := day(now)
	weekAgo := today.AddDate(0, 0, -7)
	twoWeeksAgo := today.AddDate(0, 0, -14)

	var recentSum, priorSum float64
	var recentN, priorN int
	for _, p := range points {
		d, ok := ParseDay(p.Date)
		if !ok {
			continue
		}
		switch {
		case !d.Before(weekAgo) && !d.After(today):
			recentSum += p.Value
			recentN++
		case !d.Before(twoWeeksAgo) && d.Before(weekAgo):
			priorSum += p.Value
			priorN++
		}
	}

	if recentN == 0 || priorN == 0 {
		return nil
	}
	change := recentSum/float64(recentN) - priorSum/float64(priorN)
	return &change
}
