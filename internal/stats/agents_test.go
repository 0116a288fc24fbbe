package stats

import (
	"testing"
	"time"

	"deskpulse/internal/ticket"
)

func TestAgentRollup(t *testing.T) {
	resolved := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	tickets := []ticket.Ticket{
		{Status: ticket.StatusClosed, Assignees: []string{"x@y.com"}, Rating: 4, ResolvedAt: &resolved, ResolutionHours: 10},
		{Status: ticket.StatusClosed, Assignees: []string{"x@y.com"}, Rating: 5, ResolvedAt: &resolved, ResolutionHours: 20},
		{Status: "Open", Assignees: []string{"x@y.com"}},
		{Status: "Open", Assignees: []string{"z@y.com"}},
	}

	rollup := AgentRollup(tickets)
	if len(rollup) != 2 {
		t.Fatalf("Expected 2 agents, got %d", len(rollup))
	}

	x := rollup[0]
	if x.Email != "x@y.com" {
		t.Fatalf("Expected x@y.com first (most tickets), got %s", x.Email)
	}
	if x.TotalTickets != 3 {
		t.Errorf("Expected totalTickets 3, got %d", x.TotalTickets)
	}
	if x.ActiveTickets != 1 {
		t.Errorf("Expected activeTickets 1, got %d", x.ActiveTickets)
	}
	if x.AvgRating != 4.5 {
		t.Errorf("Expected avgRating 4.5 over closed tickets, got %f", x.AvgRating)
	}
	if x.AvgResolutionHours != 15.0 {
		t.Errorf("Expected avgResolutionHours 15.0, got %f", x.AvgResolutionHours)
	}

	z := rollup[1]
	if z.TotalTickets != 1 || z.ActiveTickets != 1 {
		t.Errorf("Expected z@y.com with 1 active ticket, got %+v", z)
	}
	if z.AvgRating != 0 || z.AvgResolutionHours != 0 {
		t.Errorf("Expected zero averages with no closed tickets, got %+v", z)
	}
}

func TestAgentRollupMultiAssigneeCountsForEach(t *testing.T) {
	tickets := []ticket.Ticket{
		{Status: "Open", Assignees: []string{"a@y.com", "b@y.com"}},
	}

	rollup := AgentRollup(tickets)
	if len(rollup) != 2 {
		t.Fatalf("Expected the ticket to count toward both agents, got %d entries", len(rollup))
	}
	for _, m := range rollup {
		if m.TotalTickets != 1 {
			t.Errorf("Expected %s to have 1 ticket, got %d", m.Email, m.TotalTickets)
		}
	}
}

func TestAgentRollupDeterministicTieOrder(t *testing.T) {
	tickets := []ticket.Ticket{
		{Status: "Open", Assignees: []string{"b@y.com"}},
		{Status: "Open", Assignees: []string{"a@y.com"}},
	}

	rollup := AgentRollup(tickets)
	if rollup[0].Email != "a@y.com" || rollup[1].Email != "b@y.com" {
		t.Errorf("Expected ties sorted by email, got %s then %s", rollup[0].Email, rollup[1].Email)
	}
}

func TestAgentRollupEmpty(t *testing.T) {
	if got := AgentRollup(nil); len(got) != 0 {
		t.Errorf("Expected empty rollup, got %v", got)
	}

	unassigned := []ticket.Ticket{{Status: "Open"}}
	if got := AgentRollup(unassigned); len(got) != 0 {
		t.Errorf("Expected no agents for unassigned tickets, got %v", got)
	}
}
