package handler

import (
	"strconv"

	"github.com/bitfantasy/nimo-scm/internal/scm/service"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Overview product/supplier/low-stock counts
// GET /api/v1/dashboard/overview
func (h *DashboardHandler) Overview(c *gin.Context) {
	ov, err := h.svc.Overview(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, ov)
}

// RecentOrders latest purchase orders
// GET /api/v1/dashboard/recent-orders?limit=10
func (h *DashboardHandler) RecentOrders(c *gin.Context) {
	limit := 10
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	orders, err := h.svc.RecentOrders(limit)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, orders)
}
