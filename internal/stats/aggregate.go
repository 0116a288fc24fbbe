package stats

import (
	"fmt"
	"math"

	"deskpulse/internal/ticket"
)

// Overview holds the dashboard-level statistics for one ticket population.
// Averages cover closed tickets only and are 0 when there are none.
type Overview struct {
	Total              int     `json:"total"`
	Open               int     `json:"open"`
	Closed             int     `json:"closed"`
	AvgResolutionHours float64 `json:"avgResolutionHours"`
	AvgRating          float64 `json:"avgRating"`
}

// Trend describes the change of one metric between the current and previous
// comparable period. Favorable depends on the metric's polarity: less ticket
// volume and faster resolution are good, a higher rating is good.
type Trend struct {
	Current   float64 `json:"current"`
	Previous  float64 `json:"previous"`
	Change    string  `json:"change"`
	Favorable bool    `json:"favorable"`
}

// TrendSet bundles the dashboard trends for one period comparison.
type TrendSet struct {
	Total           Trend `json:"total"`
	Open            Trend `json:"open"`
	ResolutionHours Trend `json:"resolutionHours"`
	Rating          Trend `json:"rating"`
}

// Aggregate computes the Overview for a ticket population.
func Aggregate(tickets []ticket.Ticket) Overview {
	o := Overview{Total: len(tickets)}

	var resolutionSum, ratingSum float64
	for _, t := range tickets {
		if !t.IsClosed() {
			o.Open++
			continue
		}
		o.Closed++
		resolutionSum += t.ResolutionHours
		ratingSum += t.Rating
	}

	if o.Closed > 0 {
		o.AvgResolutionHours = round2(resolutionSum / float64(o.Closed))
		o.AvgRating = round2(ratingSum / float64(o.Closed))
	}
	return o
}

// CompareOverview derives the period-over-period trends for two populations.
func CompareOverview(current, previous Overview) TrendSet {
	return TrendSet{
		Total:           percentTrend(float64(current.Total), float64(previous.Total)),
		Open:            percentTrend(float64(current.Open), float64(previous.Open)),
		ResolutionHours: percentTrend(current.AvgResolutionHours, previous.AvgResolutionHours),
		Rating:          ratingTrend(current.AvgRating, previous.AvgRating),
	}
}

// PercentDelta computes ((current-previous)/previous)*100. A zero previous
// value is defined as 0 when current is also 0, else 100.
func PercentDelta(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return (current - previous) / previous * 100
}

// FormatDelta renders a percentage change to one decimal with an explicit +
// for non-negative values. The zero-previous/zero-current case renders as a
// bare "0.0%".
func FormatDelta(current, previous float64) string {
	if previous == 0 && current == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%+.1f%%", PercentDelta(current, previous))
}

// percentTrend builds a Trend for a volume or duration metric, where a
// decrease is the favorable direction.
func percentTrend(current, previous float64) Trend {
	delta := PercentDelta(current, previous)
	return Trend{
		Current:   current,
		Previous:  previous,
		Change:    FormatDelta(current, previous),
		Favorable: delta <= 0,
	}
}

// ratingTrend uses the absolute difference rather than a percentage; rating
// scales are small enough that ratios mislead.
func ratingTrend(current, previous float64) Trend {
	diff := current - previous
	return Trend{
		Current:   current,
		Previous:  previous,
		Change:    fmt.Sprintf("%+.1f", diff),
		Favorable: diff >= 0,
	}
}

func round2(n float64) float64 {
	return math.Round(n*100) / 100
}
