package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/bitfantasy/nimo-scm/internal/finance/service"
	scmhandler "github.com/bitfantasy/nimo-scm/internal/scm/handler"
	"github.com/gin-gonic/gin"
)

type RevenueHandler struct {
	svc *service.RevenueService
}

func NewRevenueHandler(svc *service.RevenueService) *RevenueHandler {
	return &RevenueHandler{svc: svc}
}

// Import uploads a revenue dataset
// POST /api/v1/finance/revenue/import, multipart field "file" (.csv or .xlsx)
func (h *RevenueHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		scmhandler.BadRequest(c, "file is required")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		scmhandler.BadRequest(c, "failed to open upload: "+err.Error())
		return
	}
	defer f.Close()

	summary, err := h.svc.Import(fileHeader.Filename, f)
	if err != nil {
		if errors.Is(err, service.ErrMissingColumns) {
			scmhandler.BadRequest(c, err.Error())
			return
		}
		scmhandler.InternalError(c, err.Error())
		return
	}

	scmhandler.Success(c, summary)
}

// Upsert writes a single year
// POST /api/v1/finance/revenue
func (h *RevenueHandler) Upsert(c *gin.Context) {
	var req service.UpsertRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		scmhandler.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	rec, err := h.svc.UpsertRecord(req)
	if err != nil {
		scmhandler.InternalError(c, err.Error())
		return
	}

	scmhandler.Success(c, rec)
}

// Summary KPIs over a year range
// GET /api/v1/finance/revenue/summary?from=&to=
func (h *RevenueHandler) Summary(c *gin.Context) {
	from, to := yearRange(c)
	sum, err := h.svc.Summarize(from, to)
	if err != nil {
		scmhandler.InternalError(c, err.Error())
		return
	}

	scmhandler.Success(c, sum)
}

// Series year-ordered rows for the chart
// GET /api/v1/finance/revenue/series?from=&to=
func (h *RevenueHandler) Series(c *gin.Context) {
	from, to := yearRange(c)
	recs, err := h.svc.Series(from, to)
	if err != nil {
		scmhandler.InternalError(c, err.Error())
		return
	}

	scmhandler.Success(c, recs)
}

// Export streams the filtered rows as a CSV attachment
// GET /api/v1/finance/revenue/export?from=&to=
func (h *RevenueHandler) Export(c *gin.Context) {
	from, to := yearRange(c)

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "revenue_filtered.csv"))

	if err := h.svc.ExportCSV(from, to, c.Writer); err != nil {
		scmhandler.InternalError(c, err.Error())
		return
	}
}

func yearRange(c *gin.Context) (from, to int) {
	if v := c.Query("from"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			from = n
		}
	}
	if v := c.Query("to"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			to = n
		}
	}
	return from, to
}
