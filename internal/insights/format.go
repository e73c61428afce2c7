package insights

import (
	"fmt"
	"math"

	"github.com/carelog/backend/internal/models"
)

// changeEpsilon is the band inside which a 7-day change renders as
// neutral rather than a direction.
const changeEpsilon = 0.05

// FormatValue renders a metric value for display according to its unit:
// percentages as whole numbers, severities and hours with one decimal,
// ounces as integers, and boolean day-flags as Yes/No.
func FormatValue(value float64, unit models.Unit) string {
	switch unit {
	case models.UnitPercent:
		return fmt.Sprintf("%.0f%%", value)
	case models.UnitSeverity:
		return fmt.Sprintf("%.1f", value)
	case models.UnitHours:
		return fmt.Sprintf("%.1fh", value)
	case models.UnitOunces:
		return fmt.Sprintf("%.0foz", value)
	case models.UnitDays:
		if value != 0 {
			return "Yes"
		}
		return "No"
	default:
		return fmt.Sprintf("%.1f", value)
	}
}

func formatDelta(change float64, unit models.Unit) string {
	switch unit {
	case models.UnitPercent:
		return fmt.Sprintf("%+.0f%%", change)
	case models.UnitHours:
		return fmt.Sprintf("%+.1fh", change)
	case models.UnitOunces:
		return fmt.Sprintf("%+.0foz", change)
	default:
		return fmt.Sprintf("%+.1f", change)
	}
}

// FormatChange renders a 7-day change figure. Nil changes and changes
// inside the epsilon band are neutral; otherwise the direction comes from
// the sign and the tone from whether that direction is good for this
// metric (a rising severity is bad, a rising adherence is good).
func FormatChange(change *float64, unit models.Unit, higherIsBetter bool) models.ChangeBadge {
	if change == nil || math.Abs(*change) < changeEpsilon {
		return models.ChangeBadge{Text: "—", Direction: models.ChangeNeutral, Tone: models.ToneNeutral}
	}

	direction := models.ChangeDown
	if *change > 0 {
		direction = models.ChangeUp
	}

	good := (direction == models.ChangeUp) == higherIsBetter
	tone := models.ToneBad
	if good {
		tone = models.ToneGood
	}

	return models.ChangeBadge{Text: formatDelta(*change, unit), Direction: direction, Tone: tone}
}
