package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitfantasy/nimo-scm/internal/finance/entity"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ErrMissingColumns is returned when the upload lacks one of the required
// year/revenue/expenditure columns.
var ErrMissingColumns = errors.New("data must contain columns: year, revenue, expenditure")

type parseResult struct {
	Records []entity.RevenueRecord
	Skipped int // rows dropped for an unparseable year
}

// columnIndex maps the required columns from a header row, matching
// case-insensitively and in any order.
func columnIndex(header []string) (year, revenue, expenditure int, err error) {
	year, revenue, expenditure = -1, -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "year":
			year = i
		case "revenue":
			revenue = i
		case "expenditure":
			expenditure = i
		}
	}
	if year < 0 || revenue < 0 || expenditure < 0 {
		return 0, 0, 0, fmt.Errorf("%w, found: %v", ErrMissingColumns, header)
	}
	return year, revenue, expenditure, nil
}

// parseRows converts raw table rows into records. A row with an unparseable
// year is skipped and counted; unparseable amounts are coerced to 0.
func parseRows(rows [][]string) (*parseResult, error) {
	if len(rows) == 0 {
		return nil, ErrMissingColumns
	}

	yearIdx, revIdx, expIdx, err := columnIndex(rows[0])
	if err != nil {
		return nil, err
	}

	result := &parseResult{}
	for _, row := range rows[1:] {
		if len(row) <= yearIdx {
			result.Skipped++
			continue
		}
		year, err := strconv.Atoi(strings.TrimSpace(row[yearIdx]))
		if err != nil {
			result.Skipped++
			continue
		}
		result.Records = append(result.Records, entity.RevenueRecord{
			ID:          uuid.New().String(),
			Year:        year,
			Revenue:     parseAmount(row, revIdx),
			Expenditure: parseAmount(row, expIdx),
		})
	}
	return result, nil
}

func parseAmount(row []string, idx int) float64 {
	if idx >= len(row) {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseCSV(r io.Reader) (*parseResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return parseRows(rows)
}

// parseXLSX reads the first sheet of a workbook.
func parseXLSX(r io.Reader) (*parseResult, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrMissingColumns
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return parseRows(rows)
}
