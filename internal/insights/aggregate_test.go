package insights

import (
	"math"
	"testing"
	"time"

	"github.com/carelog/backend/internal/models"
)

func seriesOfDays(start time.Time, values []float64) []models.MetricPoint {
	points := make([]models.MetricPoint, len(values))
	for i, v := range values {
		points[i] = models.MetricPoint{Date: start.AddDate(0, 0, i).Format(models.DayFormat), Value: v}
	}
	return points
}

func TestFilterTimeframeWeek(t *testing.T) {
	now := time.Date(2024, 6, 15, 13, 30, 0, 0, time.UTC)

	// 400 days of daily points ending today
	start := day(now).AddDate(0, 0, -399)
	values := make([]float64, 400)
	for i := range values {
		values[i] = float64(i)
	}
	points := seriesOfDays(start, values)

	filtered := FilterTimeframe(points, models.TimeframeWeek, now)
	if len(filtered) != 8 {
		t.Fatalf("expected 8 points within 1W window, got %d", len(filtered))
	}
	if filtered[0].Date != day(now).AddDate(0, 0, -7).Format(models.DayFormat) {
		t.Errorf("unexpected earliest point %q", filtered[0].Date)
	}
	if filtered[len(filtered)-1].Date != day(now).Format(models.DayFormat) {
		t.Errorf("unexpected latest point %q", filtered[len(filtered)-1].Date)
	}
}

func TestFilterTimeframeKeepsCutoffBoundary(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	boundary := day(now).AddDate(0, 0, -30).Format(models.DayFormat)
	before := day(now).AddDate(0, 0, -31).Format(models.DayFormat)

	points := []models.MetricPoint{
		{Date: before, Value: 1},
		{Date: boundary, Value: 2},
	}

	filtered := FilterTimeframe(points, models.TimeframeMonth, now)
	if len(filtered) != 1 {
		t.Fatalf("expected 1 point, got %d", len(filtered))
	}
	if filtered[0].Date != boundary {
		t.Errorf("expected boundary point kept, got %q", filtered[0].Date)
	}
}

func TestAggregateWeeklyNoOpAtThreshold(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	points := seriesOfDays(start, make([]float64, 60))

	out := AggregateWeekly(points)
	if len(out) != 60 {
		t.Fatalf("expected 60 points unchanged, got %d", len(out))
	}
}

func TestAggregateWeeklyBuckets(t *testing.T) {
	// Sunday start so every bucket is a full week
	start := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	values := make([]float64, 70)
	for i := range values {
		values[i] = float64(i)
	}
	points := seriesOfDays(start, values)

	out := AggregateWeekly(points)
	if len(out) != 10 {
		t.Fatalf("expected 10 weekly buckets, got %d", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i-1].Date >= out[i].Date {
			t.Fatalf("buckets out of order: %q then %q", out[i-1].Date, out[i].Date)
		}
	}
	// first bucket averages 0..6
	if out[0].Date != "2024-01-07" {
		t.Errorf("unexpected first bucket date %q", out[0].Date)
	}
	if math.Abs(out[0].Value-3) > 1e-9 {
		t.Errorf("expected first bucket average 3, got %v", out[0].Value)
	}
}

func TestChange7d(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	points := []models.MetricPoint{
		{Date: "2024-06-14", Value: 8},
		{Date: "2024-06-12", Value: 6},
		{Date: "2024-06-05", Value: 4},
		{Date: "2024-06-03", Value: 2},
	}

	change := Change7d(points, now)
	if change == nil {
		t.Fatal("expected a change value")
	}
	if math.Abs(*change-4) > 1e-9 {
		t.Errorf("expected change 4, got %v", *change)
	}
}

func TestChange7dNilWhenWindowEmpty(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	onlyRecent := []models.MetricPoint{{Date: "2024-06-14", Value: 8}}
	if change := Change7d(onlyRecent, now); change != nil {
		t.Errorf("expected nil without prior-week data, got %v", *change)
	}

	onlyPrior := []models.MetricPoint{{Date: "2024-06-03", Value: 2}}
	if change := Change7d(onlyPrior, now); change != nil {
		t.Errorf("expected nil without trailing-week data, got %v", *change)
	}

	if change := Change7d(nil, now); change != nil {
		t.Errorf("expected nil for empty series, got %v", *change)
	}
}

func TestChange7dWindowBoundaries(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	// 2024-06-08 is exactly today-7 and belongs to the trailing window;
	// 2024-06-01 is exactly today-14 and belongs to the prior window.
	points := []models.MetricPoint{
		{Date: "2024-06-08", Value: 10},
		{Date: "2024-06-01", Value: 4},
	}

	change := Change7d(points, now)
	if change == nil {
		t.Fatal("expected a change value")
	}
	if math.Abs(*change-6) > 1e-9 {
		t.Errorf("expected change 6, got %v", *change)
	}
}
