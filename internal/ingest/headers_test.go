package ingest_test

import (
	"testing"

	"deskpulse/internal/ingest"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalKey(t *testing.T) {
	tests := map[string]struct {
		raw      string
		expected string
	}{
		"AssignedToWithSpace": {"Assigned To", ingest.FieldAssign},
		"AssigneeLower":       {"assignee", ingest.FieldAssign},
		"AgentUpper":          {"AGENT", ingest.FieldAssign},
		"HandledByUnderscore": {"handled_by", ingest.FieldAssign},
		"ResolvedDate":        {"Resolved Date", ingest.FieldResolutionBy},
		"ClosedOn":            {"closed-on", ingest.FieldResolutionBy},
		"CompletedOn":         {"Completed On", ingest.FieldResolutionBy},
		"TicketType":          {"Ticket Type", ingest.FieldTicketType},
		"CreatedDate":         {"created_date", ingest.FieldDate},
		"SubjectTitle":        {"Title", ingest.FieldSubject},
		"StatusPlain":         {"Status", ingest.FieldStatus},
		"CustomerName":        {"Customer Name", ingest.FieldCustomer},
		"PrioritySeverity":    {"severity", ingest.FieldPriority},
		"OwnerPlain":          {"owner", ingest.FieldOwner},
		"RatingCsat":          {"CSAT", ingest.FieldRating},
		"TicketNumber":        {"Ticket Number", ingest.FieldID},
		"UnknownPassthrough":  {"Internal Notes", "Internal Notes"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ingest.CanonicalKey(tc.raw))
		})
	}
}

func TestHeaderSynonymsTargetsAreCanonical(t *testing.T) {
	canonical := map[string]bool{
		ingest.FieldID: true, ingest.FieldSubject: true, ingest.FieldStatus: true,
		ingest.FieldAssign: true, ingest.FieldCustomer: true, ingest.FieldPriority: true,
		ingest.FieldTicketType: true, ingest.FieldOwner: true, ingest.FieldRating: true,
		ingest.FieldDate: true, ingest.FieldResolutionBy: true,
	}
	for synonym, field := range ingest.HeaderSynonyms {
		assert.True(t, canonical[field], "synonym %q maps to unknown field %q", synonym, field)
		assert.Equal(t, field, ingest.CanonicalKey(synonym), "synonym %q must be stored pre-squashed", synonym)
	}
}

func TestNormalizeRowDefaults(t *testing.T) {
	row := ingest.NormalizeRow(ingest.RawRow{
		"Subject": "",
		"Owner":   "c@x.com",
	})

	assert.Equal(t, "Unspecified", row[ingest.FieldTicketType])
	assert.Equal(t, "Open", row[ingest.FieldStatus])
	assert.Equal(t, "No Subject", row[ingest.FieldSubject])
	assert.Equal(t, "c@x.com", row[ingest.FieldAssign], "missing Assign falls back to Owner")
}

func TestNormalizeRowKeepsUnknownColumns(t *testing.T) {
	row := ingest.NormalizeRow(ingest.RawRow{
		"Assigned To":    "a@x.com",
		"Internal Notes": "escalated twice",
	})

	assert.Equal(t, "a@x.com", row[ingest.FieldAssign])
	assert.Equal(t, "escalated twice", row["Internal Notes"])
}
