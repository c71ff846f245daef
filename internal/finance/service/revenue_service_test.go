package service

import (
	"strings"
	"testing"

	"github.com/bitfantasy/nimo-scm/internal/finance/entity"
	"github.com/bitfantasy/nimo-scm/internal/finance/repository"
	"github.com/bitfantasy/nimo-scm/internal/scm/testutil"
)

func setupRevenue(t *testing.T) *RevenueService {
	t.Helper()
	db := testutil.SetupTestDB(t)
	if err := entity.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate finance tables: %v", err)
	}
	return NewRevenueService(repository.NewRevenueRepository(db))
}

const sampleCSV = `year,revenue,expenditure
2013,1000,400
2014,2000,600
2015,3000,800
`

func TestImportAndSummarize(t *testing.T) {
	svc := setupRevenue(t)

	summary, err := svc.Import("revenue.csv", strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if summary.Imported != 3 || summary.Skipped != 0 {
		t.Fatalf("unexpected import summary: %+v", summary)
	}

	sum, err := svc.Summarize(0, 0)
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}
	if sum.TotalRevenue != 6000 || sum.TotalExpenditure != 1800 {
		t.Errorf("unexpected totals: %+v", sum)
	}
	if sum.AvgRevenue != 2000 || sum.AvgExpenditure != 600 {
		t.Errorf("unexpected averages: %+v", sum)
	}
	if sum.MinYear != 2013 || sum.MaxYear != 2015 {
		t.Errorf("unexpected year bounds: %+v", sum)
	}
}

// Re-importing a year replaces its values instead of duplicating the row.
func TestImportUpsertsOnYear(t *testing.T) {
	svc := setupRevenue(t)

	if _, err := svc.Import("revenue.csv", strings.NewReader(sampleCSV)); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	update := `year,revenue,expenditure
2014,2500,650
`
	if _, err := svc.Import("revenue.csv", strings.NewReader(update)); err != nil {
		t.Fatalf("second import failed: %v", err)
	}

	recs, err := svc.Series(2014, 2014)
	if err != nil {
		t.Fatalf("series failed: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record for 2014, got %d", len(recs))
	}
	if recs[0].Revenue != 2500 || recs[0].Expenditure != 650 {
		t.Errorf("unexpected record: %+v", recs[0])
	}
}

// TestUpsertRecordKeepsIDOnConflict verifies a second write to the same year
// returns the row that is actually stored, original ID included.
func TestUpsertRecordKeepsIDOnConflict(t *testing.T) {
	svc := setupRevenue(t)

	first, err := svc.UpsertRecord(UpsertRecordRequest{Year: 2014, Revenue: 2000, Expenditure: 600})
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	second, err := svc.UpsertRecord(UpsertRecordRequest{Year: 2014, Revenue: 2500, Expenditure: 650})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("expected stored ID %s, got %s", first.ID, second.ID)
	}
	if second.Revenue != 2500 || second.Expenditure != 650 {
		t.Errorf("unexpected record after upsert: %+v", second)
	}

	recs, err := svc.Series(2014, 2014)
	if err != nil {
		t.Fatalf("series failed: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != first.ID {
		t.Errorf("expected single 2014 row with ID %s, got %+v", first.ID, recs)
	}
}

func TestSeriesYearRange(t *testing.T) {
	svc := setupRevenue(t)

	if _, err := svc.Import("revenue.csv", strings.NewReader(sampleCSV)); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	recs, err := svc.Series(2014, 2015)
	if err != nil {
		t.Fatalf("series failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Year != 2014 || recs[1].Year != 2015 {
		t.Errorf("expected ascending years 2014,2015, got %d,%d", recs[0].Year, recs[1].Year)
	}
}

func TestExportCSV(t *testing.T) {
	svc := setupRevenue(t)

	if _, err := svc.Import("revenue.csv", strings.NewReader(sampleCSV)); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	var out strings.Builder
	if err := svc.ExportCSV(2013, 2014, &out); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "year,revenue,expenditure" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if lines[1] != "2013,1000.00,400.00" {
		t.Errorf("unexpected row: %s", lines[1])
	}
}
