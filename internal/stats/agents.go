package stats

import (
	"cmp"
	"slices"

	"deskpulse/internal/ticket"
)

// AgentMetrics is the per-agent rollup. A ticket with N assignees counts
// toward all N agents. Averages cover the agent's closed tickets only.
type AgentMetrics struct {
	Email              string  `json:"email"`
	TotalTickets       int     `json:"totalTickets"`
	ActiveTickets      int     `json:"activeTickets"`
	AvgRating          float64 `json:"avgRating"`
	AvgResolutionHours float64 `json:"avgResolutionHours"`
}

// AgentRollup groups the population by distinct assignee and computes each
// agent's workload metrics, sorted by totalTickets descending. Ties sort by
// email so the output is deterministic.
func AgentRollup(tickets []ticket.Ticket) []AgentMetrics {
	type accumulator struct {
		total         int
		active        int
		closed        int
		ratingSum     float64
		resolutionSum float64
	}

	agents := make(map[string]*accumulator)
	for _, t := range tickets {
		for _, email := range t.Assignees {
			if email == "" {
				continue
			}
			acc := agents[email]
			if acc == nil {
				acc = &accumulator{}
				agents[email] = acc
			}
			acc.total++
			if t.IsClosed() {
				acc.closed++
				acc.ratingSum += t.Rating
				acc.resolutionSum += t.ResolutionHours
			} else {
				acc.active++
			}
		}
	}

	results := make([]AgentMetrics, 0, len(agents))
	for email, acc := range agents {
		m := AgentMetrics{
			Email:         email,
			TotalTickets:  acc.total,
			ActiveTickets: acc.active,
		}
		if acc.closed > 0 {
			m.AvgRating = round2(acc.ratingSum / float64(acc.closed))
			m.AvgResolutionHours = round2(acc.resolutionSum / float64(acc.closed))
		}
		results = append(results, m)
	}

	slices.SortFunc(results, func(a, b AgentMetrics) int {
		if c := cmp.Compare(b.TotalTickets, a.TotalTickets); c != 0 {
			return c
		}
		return cmp.Compare(a.Email, b.Email)
	})

	return results
}
