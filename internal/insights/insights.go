// Package insights turns aggregated dashboard context into narrative text
// via an external language-model API. The generator is a collaborator with a
// simple contract: it may be slow or fail, and neither outcome ever touches
// the canonical ticket collection.
package insights

import (
	"context"
	"time"

	"deskpulse/internal/stats"
	"deskpulse/internal/ticket"
)

// Request carries the aggregated context forwarded to the model. It contains
// only derived numbers, never raw ticket rows.
type Request struct {
	RangeLabel string               `json:"range"`
	Current    stats.Overview       `json:"current"`
	Previous   stats.Overview       `json:"previous"`
	Trends     stats.TrendSet       `json:"trends"`
	TopAgents  []stats.AgentMetrics `json:"topAgents,omitempty"`
}

// Insight is one generated narrative payload.
type Insight struct {
	Narrative   string    `json:"narrative"`
	Model       string    `json:"model"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Generator produces a narrative insight for one aggregated period.
type Generator interface {
	Generate(ctx context.Context, req Request) (Insight, error)
}

// topAgentCount caps how many agents are forwarded; the model only needs the
// leaders, not the full roster.
const topAgentCount = 5

// BuildRequest aggregates a ticket population for the given range anchored
// at now and packs the result into a model-ready Request.
func BuildRequest(tickets []ticket.Ticket, rng stats.Range, now time.Time) Request {
	current := stats.FilterByRange(tickets, rng, now)
	previous := stats.PreviousPeriod(tickets, rng, now)

	currentOverview := stats.Aggregate(current)
	previousOverview := stats.Aggregate(previous)

	agents := stats.AgentRollup(current)
	if len(agents) > topAgentCount {
		agents = agents[:topAgentCount]
	}

	return Request{
		RangeLabel: string(rng),
		Current:    currentOverview,
		Previous:   previousOverview,
		Trends:     stats.CompareOverview(currentOverview, previousOverview),
		TopAgents:  agents,
	}
}
