package insights

import (
	"math"
	"testing"

	"github.com/carelog/backend/internal/models"
)

func TestPearsonRFloorUnderFivePairs(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	ys := []float64{2, 4, 6, 8}
	if r := PearsonR(xs, ys); r != 0 {
		t.Errorf("expected exactly 0 for 4 pairs, got %v", r)
	}
}

func TestPearsonRZeroVariance(t *testing.T) {
	xs := []float64{5, 5, 5, 5, 5}
	ys := []float64{1, 2, 3, 4, 5}
	if r := PearsonR(xs, ys); r != 0 {
		t.Errorf("expected 0 for constant x, got %v", r)
	}
	if r := PearsonR(ys, xs); r != 0 {
		t.Errorf("expected 0 for constant y, got %v", r)
	}
}

func TestPearsonRPerfectCorrelation(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	up := []float64{10, 20, 30, 40, 50}
	down := []float64{50, 40, 30, 20, 10}

	if r := PearsonR(xs, up); math.Abs(r-1) > 1e-9 {
		t.Errorf("expected r=1, got %v", r)
	}
	if r := PearsonR(xs, down); math.Abs(r+1) > 1e-9 {
		t.Errorf("expected r=-1, got %v", r)
	}
}

func TestPearsonRSymmetricAndBounded(t *testing.T) {
	xs := []float64{3, 7, 1, 9, 4, 6, 2}
	ys := []float64{5, 2, 8, 1, 6, 3, 7}

	ab := PearsonR(xs, ys)
	ba := PearsonR(ys, xs)
	if math.Abs(ab-ba) > 1e-12 {
		t.Errorf("PearsonR not symmetric: %v vs %v", ab, ba)
	}
	if ab < -1 || ab > 1 {
		t.Errorf("r out of bounds: %v", ab)
	}
}

func TestPearsonRTruncatesToShorter(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 100, 200}
	ys := []float64{2, 4, 6, 8, 10}
	if r := PearsonR(xs, ys); math.Abs(r-1) > 1e-9 {
		t.Errorf("expected r=1 over the 5 shared pairs, got %v", r)
	}
}

func TestAlignLaggedPairsNextDay(t *testing.T) {
	a := []models.MetricPoint{
		{Date: "2024-06-01", Value: 1},
		{Date: "2024-06-02", Value: 2},
		{Date: "2024-06-04", Value: 3},
	}
	b := []models.MetricPoint{
		{Date: "2024-06-02", Value: 10},
		{Date: "2024-06-03", Value: 20},
		{Date: "2024-06-04", Value: 30},
	}

	xs, ys := alignLagged(a, b)
	if len(xs) != 2 {
		t.Fatalf("expected 2 lagged pairs, got %d", len(xs))
	}
	if xs[0] != 1 || ys[0] != 10 {
		t.Errorf("unexpected first pair (%v, %v)", xs[0], ys[0])
	}
	if xs[1] != 2 || ys[1] != 20 {
		t.Errorf("unexpected second pair (%v, %v)", xs[1], ys[1])
	}
}

// inverseSleepAgitationLogs builds n days where low sleep coincides with
// high agitation and vice versa.
func inverseSleepAgitationLogs(n int) []models.DailyLog {
	sleep := []float64{4, 4, 4, 4, 8, 8, 8}
	agitation := []int{9, 9, 9, 9, 2, 2, 2}

	logs := make([]models.DailyLog, n)
	for i := 0; i < n; i++ {
		logs[i] = models.DailyLog{
			Date:       dayN(i),
			SleepHours: fptr(sleep[i%len(sleep)]),
			Symptoms:   []models.SymptomEntry{{Name: SymptomAgitation, Severity: agitation[i%len(agitation)]}},
		}
	}
	return logs
}

func TestComputeObservationsGatingUnder21Logs(t *testing.T) {
	logs := inverseSleepAgitationLogs(20)
	observations := ComputeObservations(logs)
	if len(observations) != 0 {
		t.Errorf("expected no observations for 20 logs, got %d", len(observations))
	}
}

func TestComputeObservationsInverseSleepAgitation(t *testing.T) {
	logs := inverseSleepAgitationLogs(28)

	observations := ComputeObservations(logs)
	if len(observations) == 0 {
		t.Fatal("expected at least one observation")
	}

	first := observations[0]
	if first.Text != "Agitation has tended to run lower on days with more sleep." {
		t.Errorf("unexpected observation text %q", first.Text)
	}
	if first.R >= -0.5 {
		t.Errorf("expected strongly negative r, got %v", first.R)
	}
}

func TestComputeObservationsSkipsWeakCorrelation(t *testing.T) {
	// constant agitation: zero variance, PearsonR reports 0
	logs := make([]models.DailyLog, 28)
	for i := range logs {
		logs[i] = models.DailyLog{
			Date:       dayN(i),
			SleepHours: fptr(float64(4 + i%5)),
			Symptoms:   []models.SymptomEntry{{Name: SymptomAgitation, Severity: 5}},
		}
	}

	observations := ComputeObservations(logs)
	if len(observations) != 0 {
		t.Errorf("expected no observations for flat symptoms, got %+v", observations)
	}
}

func TestComputeObservationsCapAndOrder(t *testing.T) {
	// Make four same-day pairs qualify: sleep vs each tracked symptom,
	// and alcohol vs agitation. Low-sleep days carry every symptom high
	// and alcohol logged.
	logs := make([]models.DailyLog, 28)
	for i := range logs {
		lowSleep := i%2 == 0
		sleep, severity := 8.0, 2
		if lowSleep {
			sleep, severity = 4.0, 9
		}
		logs[i] = models.DailyLog{
			Date:       dayN(i),
			SleepHours: fptr(sleep),
			Symptoms: []models.SymptomEntry{
				{Name: SymptomAgitation, Severity: severity},
				{Name: SymptomMoodSwings, Severity: severity},
				{Name: SymptomConfusion, Severity: severity},
			},
			Lifestyle: &models.Lifestyle{Alcohol: lowSleep},
		}
	}

	observations := ComputeObservations(logs)
	if len(observations) != 3 {
		t.Fatalf("expected cap of 3 observations, got %d", len(observations))
	}

	// screening order: sleep pairs first, never the alcohol pair
	wantTexts := []string{
		"Agitation has tended to run lower on days with more sleep.",
		"Mood swings have tended to be milder on days with more sleep.",
		"Confusion has tended to be milder on days with more sleep.",
	}
	for i, want := range wantTexts {
		if observations[i].Text != want {
			t.Errorf("observation %d: got %q, want %q", i, observations[i].Text, want)
		}
	}
}

func TestComputeObservationsNeedsEnoughPairs(t *testing.T) {
	// 28 logs clear the log floor, but only 20 of them carry sleep, so no
	// pair reaches 21 aligned samples.
	logs := inverseSleepAgitationLogs(28)
	for i := 20; i < len(logs); i++ {
		logs[i].SleepHours = nil
	}

	observations := ComputeObservations(logs)
	if len(observations) != 0 {
		t.Errorf("expected no observations with 20 aligned pairs, got %d", len(observations))
	}
}
