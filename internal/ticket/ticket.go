package ticket

import "time"

// Default values applied during normalization for fields the source omits.
const (
	StatusOpen        = "Open"
	StatusClosed      = "Closed"
	DefaultSubject    = "No Subject"
	DefaultCustomer   = "Unknown"
	DefaultPriority   = "Medium"
	DefaultTicketType = "Unspecified"
)

// Ticket is the canonical helpdesk record. It is immutable after creation;
// a new upload replaces the whole collection, it never patches individual rows.
type Ticket struct {
	ID              string     `json:"id"`
	Subject         string     `json:"subject"`
	Status          string     `json:"status"`
	Assignees       []string   `json:"assignees"`
	Customer        string     `json:"customer"`
	Priority        string     `json:"priority"`
	TicketType      string     `json:"ticketType"`
	Owner           string     `json:"owner"`
	Rating          float64    `json:"rating"`
	CreatedAt       time.Time  `json:"createdAt"`
	ResolvedAt      *time.Time `json:"resolvedAt,omitempty"`
	ResolutionHours float64    `json:"resolutionTimeHours"`
}

// IsClosed reports whether the ticket's status collapsed to Closed.
func (t Ticket) IsClosed() bool {
	return t.Status == StatusClosed
}
