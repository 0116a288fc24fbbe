package insights

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"
)

// MockGenerator produces deterministic canned narratives without a network
// call. The range label seeds the phrasing so repeated calls for the same
// period return identical text.
type MockGenerator struct {
	ModelVersion string
}

var mockOpeners = []string{
	"Ticket volume held steady this period.",
	"The queue shifted noticeably this period.",
	"A quieter stretch for the support desk.",
	"Workload picked up compared to the previous period.",
}

// Generate builds a short summary from the aggregated numbers.
func (m MockGenerator) Generate(_ context.Context, req Request) (Insight, error) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(req.RangeLabel))
	opener := mockOpeners[h.Sum64()%uint64(len(mockOpeners))]

	narrative := fmt.Sprintf(
		"%s %d tickets in range %q (%s vs previous), %d still open. "+
			"Closed tickets averaged %.2f hours to resolution (%s) with a %.2f rating (%s).",
		opener,
		req.Current.Total, req.RangeLabel, req.Trends.Total.Change,
		req.Current.Open,
		req.Current.AvgResolutionHours, req.Trends.ResolutionHours.Change,
		req.Current.AvgRating, req.Trends.Rating.Change,
	)
	if len(req.TopAgents) > 0 {
		top := req.TopAgents[0]
		narrative += fmt.Sprintf(" Busiest agent: %s with %d tickets.", top.Email, top.TotalTickets)
	}

	model := m.ModelVersion
	if model == "" {
		model = "mock"
	}

	return Insight{
		Narrative:   narrative,
		Model:       model,
		GeneratedAt: time.Now().UTC(),
	}, nil
}
