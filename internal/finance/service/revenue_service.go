package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bitfantasy/nimo-scm/internal/finance/entity"
	"github.com/bitfantasy/nimo-scm/internal/finance/repository"
	"github.com/google/uuid"
)

type RevenueService struct {
	repo *repository.RevenueRepository
}

func NewRevenueService(repo *repository.RevenueRepository) *RevenueService {
	return &RevenueService{repo: repo}
}

type ImportSummary struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// Import parses a CSV or XLSX upload and upserts every parsed year. The
// format is picked from the filename extension; anything but .xlsx is treated
// as CSV.
func (s *RevenueService) Import(filename string, r io.Reader) (*ImportSummary, error) {
	var result *parseResult
	var err error
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		result, err = parseXLSX(r)
	} else {
		result, err = parseCSV(r)
	}
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpsertAll(result.Records); err != nil {
		return nil, fmt.Errorf("failed to import revenue data: %w", err)
	}

	return &ImportSummary{Imported: len(result.Records), Skipped: result.Skipped}, nil
}

// SeedFromFile imports a bundled CSV once, on an empty table. Used at startup
// to load the default dataset.
func (s *RevenueService) SeedFromFile(path string) (*ImportSummary, error) {
	count, err := s.repo.Count()
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return &ImportSummary{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()

	return s.Import(path, f)
}

type UpsertRecordRequest struct {
	Year        int     `json:"year" binding:"required"`
	Revenue     float64 `json:"revenue"`
	Expenditure float64 `json:"expenditure"`
}

// UpsertRecord writes a single year, the manual correction path.
func (s *RevenueService) UpsertRecord(req UpsertRecordRequest) (*entity.RevenueRecord, error) {
	rec := &entity.RevenueRecord{
		ID:          uuid.New().String(),
		Year:        req.Year,
		Revenue:     req.Revenue,
		Expenditure: req.Expenditure,
	}
	if err := s.repo.Upsert(rec); err != nil {
		return nil, fmt.Errorf("failed to upsert revenue record: %w", err)
	}

	// On conflict the stored row keeps its original ID; reload so the caller
	// sees what was actually persisted.
	return s.repo.GetByYear(req.Year)
}

// Summary revenue/expenditure KPIs over a year range.
type Summary struct {
	FromYear         int     `json:"from_year"`
	ToYear           int     `json:"to_year"`
	Years            int     `json:"years"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalExpenditure float64 `json:"total_expenditure"`
	AvgRevenue       float64 `json:"avg_revenue"`
	AvgExpenditure   float64 `json:"avg_expenditure"`
	MinYear          int     `json:"min_year"`
	MaxYear          int     `json:"max_year"`
}

func (s *RevenueService) Summarize(from, to int) (*Summary, error) {
	recs, err := s.repo.ListRange(from, to)
	if err != nil {
		return nil, err
	}

	sum := &Summary{FromYear: from, ToYear: to, Years: len(recs)}
	for _, rec := range recs {
		sum.TotalRevenue += rec.Revenue
		sum.TotalExpenditure += rec.Expenditure
	}
	if len(recs) > 0 {
		sum.AvgRevenue = sum.TotalRevenue / float64(len(recs))
		sum.AvgExpenditure = sum.TotalExpenditure / float64(len(recs))
	}

	if min, max, ok, err := s.repo.YearBounds(); err != nil {
		return nil, err
	} else if ok {
		sum.MinYear = min
		sum.MaxYear = max
	}

	return sum, nil
}

// Series year-ordered rows for charting.
func (s *RevenueService) Series(from, to int) ([]entity.RevenueRecord, error) {
	return s.repo.ListRange(from, to)
}

// ExportCSV writes the filtered rows as year,revenue,expenditure CSV.
func (s *RevenueService) ExportCSV(from, to int, w io.Writer) error {
	recs, err := s.repo.ListRange(from, to)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"year", "revenue", "expenditure"}); err != nil {
		return err
	}
	for _, rec := range recs {
		row := []string{
			strconv.Itoa(rec.Year),
			strconv.FormatFloat(rec.Revenue, 'f', 2, 64),
			strconv.FormatFloat(rec.Expenditure, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
