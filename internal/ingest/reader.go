package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

// ReadFile loads a spreadsheet export into raw rows, dispatching on the file
// extension. The first non-empty row of each sheet is the header row.
func ReadFile(path string) ([]RawRow, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return readWorkbook(path)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		return ReadCSV(f)
	default:
		return nil, fmt.Errorf("unsupported file type %q (want .xlsx, .xlsm or .csv)", ext)
	}
}

// readWorkbook reads every sheet of an Excel workbook concurrently and
// concatenates the results in sheet order.
func readWorkbook(path string) ([]RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	perSheet := make([][]RawRow, len(sheets))

	var g errgroup.Group
	for i, name := range sheets {
		i, name := i, name
		g.Go(func() error {
			grid, err := f.GetRows(name)
			if err != nil {
				return fmt.Errorf("sheet %q: %w", name, err)
			}
			perSheet[i] = rowsFromGrid(grid)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var rows []RawRow
	for i, sheetRows := range perSheet {
		log.Debug().Str("sheet", sheets[i]).Int("rows", len(sheetRows)).Msg("Read worksheet")
		rows = append(rows, sheetRows...)
	}
	return rows, nil
}

// ReadCSV reads comma-separated rows. Ragged records are tolerated; cells
// beyond the header row are dropped and short records simply omit keys.
func ReadCSV(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var grid [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		grid = append(grid, record)
	}

	return rowsFromGrid(grid), nil
}

// rowsFromGrid turns a header row plus data rows into raw rows. Rows that are
// entirely empty are dropped here; partially empty rows flow through so the
// builder can apply defaults.
func rowsFromGrid(grid [][]string) []RawRow {
	var headers []string
	var rows []RawRow

	for _, record := range grid {
		if recordIsEmpty(record) {
			continue
		}
		if headers == nil {
			headers = record
			continue
		}

		row := make(RawRow, len(headers))
		for i, h := range headers {
			if strings.TrimSpace(h) == "" {
				continue
			}
			if i < len(record) {
				row[h] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows
}

func recordIsEmpty(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
