package ingest

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"deskpulse/internal/ticket"

	"github.com/google/uuid"
)

// File-level conditions reported to the caller. Per-row defects never error;
// they degrade to defaults instead.
var (
	ErrEmptyFile = errors.New("file contains no rows")
	ErrNoTickets = errors.New("no tickets could be built from the rows")
)

var closedSynonyms = map[string]bool{
	"resolved":  true,
	"completed": true,
	"verified":  true,
}

// CollapseStatus folds the terminal status synonyms into Closed. Everything
// else passes through unchanged.
func CollapseStatus(status string) string {
	if closedSynonyms[strings.ToLower(strings.TrimSpace(status))] {
		return ticket.StatusClosed
	}
	return status
}

// BuildTicket folds one raw row into a canonical Ticket. It is total over its
// input: every missing or malformed field has a defined default.
func BuildTicket(raw RawRow) ticket.Ticket {
	row := NormalizeRow(raw)

	id := cellString(row[FieldID])
	if id == "" {
		// Synthetic IDs only need to be unique within a batch; they are not
		// reproducible across re-imports.
		id = uuid.NewString()
	}

	owner := cellString(row[FieldOwner])

	t := ticket.Ticket{
		ID:         id,
		Subject:    stringOr(row[FieldSubject], ticket.DefaultSubject),
		Status:     CollapseStatus(stringOr(row[FieldStatus], ticket.StatusOpen)),
		Assignees:  ParseAssignees(row[FieldAssign], owner),
		Customer:   stringOr(row[FieldCustomer], ticket.DefaultCustomer),
		Priority:   stringOr(row[FieldPriority], ticket.DefaultPriority),
		TicketType: stringOr(row[FieldTicketType], ticket.DefaultTicketType),
		Owner:      owner,
		Rating:     parseRating(row[FieldRating]),
		CreatedAt:  ParseWhen(row[FieldDate]),
	}

	if t.Status == ticket.StatusClosed {
		if resolved := ParseWhen(row[FieldResolutionBy]); !resolved.IsZero() {
			t.ResolvedAt = &resolved
		}
	}

	t.ResolutionHours = resolutionHours(t.CreatedAt, t.ResolvedAt)

	return t
}

// BuildTickets converts a batch of raw rows. Blank rows are skipped. An empty
// batch and a batch where nothing survived are distinct error conditions.
func BuildTickets(rows []RawRow) ([]ticket.Ticket, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	tickets := make([]ticket.Ticket, 0, len(rows))
	for _, raw := range rows {
		if rowIsBlank(raw) {
			continue
		}
		tickets = append(tickets, BuildTicket(raw))
	}

	if len(tickets) == 0 {
		return nil, ErrNoTickets
	}
	return tickets, nil
}

// resolutionHours computes the ticket's time-to-resolution in hours, rounded
// to 2 decimals. Negative spans are clamped to 0 to absorb clock skew and bad
// source data rather than surfacing them.
func resolutionHours(created time.Time, resolved *time.Time) float64 {
	if created.IsZero() || resolved == nil || resolved.IsZero() {
		return 0
	}
	hours := resolved.Sub(created).Hours()
	if hours < 0 {
		return 0
	}
	return math.Round(hours*100) / 100
}

func rowIsBlank(raw RawRow) bool {
	for _, v := range raw {
		if !isBlank(v) {
			return false
		}
	}
	return true
}

func cellString(v any) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

func stringOr(v any, fallback string) string {
	if s := cellString(v); s != "" {
		return s
	}
	return fallback
}

// parseRating reads a rating cell as a non-negative number; anything that
// does not parse counts as 0.
func parseRating(v any) float64 {
	switch n := v.(type) {
	case float64:
		return clampRating(n)
	case int:
		return clampRating(float64(n))
	}
	s := cellString(v)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return clampRating(n)
}

func clampRating(n float64) float64 {
	if n < 0 {
		return 0
	}
	return n
}
