package ingest_test

import (
	"path/filepath"
	"strings"
	"testing"

	"deskpulse/internal/ingest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadCSV(t *testing.T) {
	input := strings.Join([]string{
		"Ticket ID,Subject,Status,Assigned To,Created Date",
		"1,Login broken,Open,a@x.com,15-03-2024",
		",,,,",
		"2,Slow VPN,Resolved,\"a@x.com, b@x.com\",16-03-2024",
		"3,Short row,Open",
	}, "\n")

	rows, err := ingest.ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 3, "the all-empty row is dropped")

	assert.Equal(t, "Login broken", rows[0]["Subject"])
	assert.Equal(t, "a@x.com, b@x.com", rows[1]["Assigned To"])

	_, hasCreated := rows[2]["Created Date"]
	assert.False(t, hasCreated, "short records omit missing keys")
	assert.Equal(t, "Short row", rows[2]["Subject"])
}

func TestReadCSVEmptyInput(t *testing.T) {
	rows, err := ingest.ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows, "an empty reader yields zero rows for BuildTickets to reject")
}

func TestReadFileWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickets.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Subject", "Status", "Agent"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Broken printer", "Open", "a@x.com"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{"Lost password", "Resolved", "b@x.com"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	rows, err := ingest.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Broken printer", rows[0]["Subject"])
	assert.Equal(t, "b@x.com", rows[1]["Agent"])
}

func TestReadFileUnsupportedExtension(t *testing.T) {
	_, err := ingest.ReadFile("tickets.pdf")
	assert.ErrorContains(t, err, "unsupported file type")
}
