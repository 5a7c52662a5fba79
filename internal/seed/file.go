package seed

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ParseCSV reads a network from CSV
func ParseCSV(r io.Reader) ([]domain.Location, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return parseRecords(records)
}

// ParseXLSX reads a network from the first sheet of a workbook
func ParseXLSX(r io.Reader) ([]domain.Location, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", domain.ErrInvalidSeed)
	}
	sheet := sheets[0]

	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from sheet %s: %w", sheet, err)
	}
	defer rows.Close()

	var records [][]string
	for rows.Next() {
		record, err := rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("failed to read row from sheet %s: %w", sheet, err)
		}
		records = append(records, record)
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("error iterating rows in sheet %s: %w", sheet, err)
	}

	return parseRecords(records)
}

// Parse picks the CSV or XLSX parser from the file name
func Parse(name string, r io.Reader) ([]domain.Location, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		return ParseXLSX(r)
	case ".csv", "":
		return ParseCSV(r)
	default:
		return nil, fmt.Errorf("%w: unsupported seed format %q", domain.ErrInvalidSeed, filepath.Ext(name))
	}
}

func LoadFile(path string) ([]domain.Location, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file %s: %w", path, err)
	}
	defer f.Close()

	locations, err := Parse(path, f)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return locations, nil
}

// WriteCSV writes locations in the format ParseCSV reads
func WriteCSV(w io.Writer, locations []domain.Location) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(toRecords(locations)); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// WriteXLSX writes locations to the first sheet of a new workbook
func WriteXLSX(w io.Writer, locations []domain.Location) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, record := range toRecords(locations) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := make([]interface{}, len(record))
		for j, v := range record {
			row[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write xlsx row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
