package insights

import (
	"math"

	"github.com/carelog/backend/internal/models"
)

const (
	// minLogsForObservations is the floor below which no observations are
	// produced at all, regardless of content. Small samples correlate
	// spuriously.
	minLogsForObservations = 21

	// minPairsForPearson is the floor below which PearsonR reports zero.
	minPairsForPearson = 5

	// minPairsForObservation is the paired-sample floor a metric pair must
	// clear before its correlation may be phrased as an observation.
	minPairsForObservation = 21

	// correlationThreshold is the minimum |r| worth surfacing.
	correlationThreshold = 0.5

	// observationCap bounds how many observations a caregiver is shown.
	observationCap = 3
)

// PearsonR computes the product-moment correlation coefficient of two
// paired samples. It reports exactly 0 for fewer than five pairs or when
// either variable has no variance, so callers never see NaN. Inputs of
// unequal length are truncated to the shorter.
func PearsonR(xs, ys []float64) float64 {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n < minPairsForPearson {
		return 0
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var numerator, denomX, denomY float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		numerator += dx * dy
		denomX += dx * dx
		denomY += dy * dy
	}

	if denomX == 0 || denomY == 0 {
		return 0
	}
	return numerator / math.Sqrt(denomX*denomY)
}

// byDate indexes a series by date. When duplicate dates exist the last
// point wins, matching the order extractors emit them in.
func byDate(points []models.MetricPoint) map[string]float64 {
	indexed := make(map[string]float64, len(points))
	for _, p := range points {
		indexed[p.Date] = p.Value
	}
	return indexed
}

// alignSameDay pairs two series on their shared dates, in a's date order.
func alignSameDay(a, b []models.MetricPoint) (xs, ys []float64) {
	lookup := byDate(b)
	for _, p := range a {
		if v, ok := lookup[p.Date]; ok {
			xs = append(xs, p.Value)
			ys = append(ys, v)
		}
	}
	return xs, ys
}

// alignLagged pairs a's value on day D with b's value on day D+1, testing
// whether an exposure predicts the next day's outcome rather than same-day
// co-occurrence.
func alignLagged(a, b []models.MetricPoint) (xs, ys []float64) {
	lookup := byDate(b)
	for _, p := range a {
		d, ok := ParseDay(p.Date)
		if !ok {
			continue
		}
		next := formatDay(d.AddDate(0, 0, 1))
		if v, ok := lookup[next]; ok {
			xs = append(xs, p.Value)
			ys = append(ys, v)
		}
	}
	return xs, ys
}

// observationPair is one screened metric combination with its pre-written
// phrasings. The sign of r picks between them; neither claims causation.
type observationPair struct {
	seriesA  func(logs []models.DailyLog) []models.MetricPoint
	seriesB  func(logs []models.DailyLog) []models.MetricPoint
	lagged   bool
	positive string
	negative string
}

func agitationSeries(logs []models.DailyLog) []models.MetricPoint {
	return SymptomSeries(logs, SymptomAgitation)
}

func moodSwingsSeries(logs []models.DailyLog) []models.MetricPoint {
	return SymptomSeries(logs, SymptomMoodSwings)
}

func confusionSeries(logs []models.DailyLog) []models.MetricPoint {
	return SymptomSeries(logs, SymptomConfusion)
}

func alcoholSeries(logs []models.DailyLog) []models.MetricPoint {
	return LifestyleSeries(logs, FlagAlcohol)
}

// observationPairs is the fixed screening order. The first qualifying
// pairs win; observations are never re-ranked by correlation strength.
var observationPairs = []observationPair{
	{
		seriesA:  SleepSeries,
		seriesB:  agitationSeries,
		positive: "Agitation has tended to run higher on days with more sleep.",
		negative: "Agitation has tended to run lower on days with more sleep.",
	},
	{
		seriesA:  SleepSeries,
		seriesB:  moodSwingsSeries,
		positive: "Mood swings have tended to be worse on days with more sleep.",
		negative: "Mood swings have tended to be milder on days with more sleep.",
	},
	{
		seriesA:  SleepSeries,
		seriesB:  confusionSeries,
		positive: "Confusion has tended to be worse on days with more sleep.",
		negative: "Confusion has tended to be milder on days with more sleep.",
	},
	{
		seriesA:  alcoholSeries,
		seriesB:  agitationSeries,
		positive: "Agitation has tended to run higher on days when alcohol was logged.",
		negative: "Agitation has tended to run lower on days when alcohol was logged.",
	},
	{
		seriesA:  OverallAdherenceSeries,
		seriesB:  agitationSeries,
		lagged:   true,
		positive: "Days with higher medication adherence have tended to be followed by higher agitation the next day.",
		negative: "Days with higher medication adherence have tended to be followed by lower agitation the next day.",
	},
}

// ObservationDisclaimer accompanies every observation payload. The engine
// reports co-occurrence in logged data only.
const ObservationDisclaimer = "These observations describe correlations in the logged data; they do not establish cause and effect."

// ComputeObservations screens the fixed metric pairs and phrases a finding
// for each one whose correlation clears the strength and sample floors.
// Collections under 21 logs produce nothing, and at most three
// observations are returned, in screening order.
func ComputeObservations(logs []models.DailyLog) []models.Observation {
	observations := make([]models.Observation, 0, observationCap)
	if len(logs) < minLogsForObservations {
		return observations
	}

	sorted := sortLogsByDate(logs)
	for _, pair := range observationPairs {
		if len(observations) == observationCap {
			break
		}

		var xs, ys []float64
		if pair.lagged {
			xs, ys = alignLagged(pair.seriesA(sorted), pair.seriesB(sorted))
		} else {
			xs, ys = alignSameDay(pair.seriesA(sorted), pair.seriesB(sorted))
		}
		if len(xs) < minPairsForObservation {
			continue
		}

		r := PearsonR(xs, ys)
		if math.Abs(r) <= correlationThreshold {
			continue
		}

		text := pair.negative
		if r > 0 {
			text = pair.positive
		}
		observations = append(observations, models.Observation{Text: text, R: r})
	}

	return observations
}
