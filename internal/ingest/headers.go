package ingest

import "strings"

// RawRow is one spreadsheet row as an open mapping from header text to cell
// value. It only exists during ingestion; BuildTicket folds it into a Ticket.
type RawRow map[string]any

// Canonical field names the header normalizer maps spreadsheet columns onto.
const (
	FieldID           = "ID"
	FieldSubject      = "Subject"
	FieldStatus       = "Status"
	FieldAssign       = "Assign"
	FieldCustomer     = "Customer"
	FieldPriority     = "Priority"
	FieldTicketType   = "TicketType"
	FieldOwner        = "Owner"
	FieldRating       = "Rating"
	FieldDate         = "Date"
	FieldResolutionBy = "ResolutionBy"
)

// HeaderSynonyms maps squashed header text (lowercase, no spaces, underscores
// or hyphens) to canonical fields. Exported so tests can enumerate it.
var HeaderSynonyms = map[string]string{
	"id":           FieldID,
	"ticketid":     FieldID,
	"ticketno":     FieldID,
	"ticketnumber": FieldID,
	"caseid":       FieldID,
	"casenumber":   FieldID,
	"reference":    FieldID,

	"subject": FieldSubject,
	"title":   FieldSubject,
	"summary": FieldSubject,
	"issue":   FieldSubject,

	"status":       FieldStatus,
	"state":        FieldStatus,
	"ticketstatus": FieldStatus,

	"assign":     FieldAssign,
	"assigned":   FieldAssign,
	"assignedto": FieldAssign,
	"assignee":   FieldAssign,
	"assignees":  FieldAssign,
	"agent":      FieldAssign,
	"agents":     FieldAssign,
	"handledby":  FieldAssign,

	"customer":     FieldCustomer,
	"customername": FieldCustomer,
	"client":       FieldCustomer,
	"clientname":   FieldCustomer,
	"company":      FieldCustomer,
	"organization": FieldCustomer,
	"requester":    FieldCustomer,
	"requestedby":  FieldCustomer,

	"priority": FieldPriority,
	"severity": FieldPriority,
	"urgency":  FieldPriority,

	"tickettype":  FieldTicketType,
	"type":        FieldTicketType,
	"category":    FieldTicketType,
	"issuetype":   FieldTicketType,
	"requesttype": FieldTicketType,

	"owner":       FieldOwner,
	"ticketowner": FieldOwner,
	"createdby":   FieldOwner,
	"reporter":    FieldOwner,

	"rating":         FieldRating,
	"customerrating": FieldRating,
	"satisfaction":   FieldRating,
	"csat":           FieldRating,
	"feedbackscore":  FieldRating,
	"score":          FieldRating,

	"date":         FieldDate,
	"created":      FieldDate,
	"createdat":    FieldDate,
	"createdon":    FieldDate,
	"createddate":  FieldDate,
	"creationdate": FieldDate,
	"opendate":     FieldDate,
	"opened":       FieldDate,

	"resolutionby":   FieldResolutionBy,
	"resolutiondate": FieldResolutionBy,
	"resolveddate":   FieldResolutionBy,
	"resolvedon":     FieldResolutionBy,
	"resolvedat":     FieldResolutionBy,
	"dateresolved":   FieldResolutionBy,
	"closedon":       FieldResolutionBy,
	"closeddate":     FieldResolutionBy,
	"completedon":    FieldResolutionBy,
}

var keySquasher = strings.NewReplacer(" ", "", "_", "", "-", "")

// CanonicalKey maps one raw header onto its canonical field. Matching is
// case-insensitive and ignores spaces, underscores and hyphens. Unknown
// headers pass through verbatim so extra columns survive as-is.
func CanonicalKey(raw string) string {
	squashed := keySquasher.Replace(strings.ToLower(strings.TrimSpace(raw)))
	if canonical, ok := HeaderSynonyms[squashed]; ok {
		return canonical
	}
	return raw
}

// NormalizeRow remaps every key of a raw row to its canonical field and then
// applies the row-level defaults: missing type, status and subject get their
// sentinel values, and a missing Assign falls back to Owner when one exists.
func NormalizeRow(raw RawRow) RawRow {
	row := make(RawRow, len(raw))
	for k, v := range raw {
		row[CanonicalKey(k)] = v
	}

	if isBlank(row[FieldTicketType]) {
		row[FieldTicketType] = "Unspecified"
	}
	if isBlank(row[FieldStatus]) {
		row[FieldStatus] = "Open"
	}
	if isBlank(row[FieldSubject]) {
		row[FieldSubject] = "No Subject"
	}
	if isBlank(row[FieldAssign]) && !isBlank(row[FieldOwner]) {
		row[FieldAssign] = row[FieldOwner]
	}

	return row
}

// isBlank treats nil, empty strings and whitespace-only strings as absent.
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
