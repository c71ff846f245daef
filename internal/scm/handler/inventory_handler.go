package handler

import (
	"errors"

	"github.com/bitfantasy/nimo-scm/internal/scm/repository"
	"github.com/bitfantasy/nimo-scm/internal/scm/service"
	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	svc *service.InventoryService
}

func NewInventoryHandler(svc *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

func (h *InventoryHandler) List(c *gin.Context) {
	page, size := GetPagination(c)
	params := repository.InventoryListParams{
		Page: page,
		Size: size,
	}

	records, total, err := h.svc.List(params)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, gin.H{"items": records, "total": total, "page": page, "size": size})
}

// LowStock lists SKUs at or below their reorder point.
func (h *InventoryHandler) LowStock(c *gin.Context) {
	page, size := GetPagination(c)
	params := repository.InventoryListParams{
		LowStock: true,
		Page:     page,
		Size:     size,
	}

	records, total, err := h.svc.List(params)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, gin.H{"items": records, "total": total, "page": page, "size": size})
}

func (h *InventoryHandler) Adjust(c *gin.Context) {
	var req service.AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	rec, err := h.svc.Adjust(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			NotFound(c, err.Error())
			return
		}
		InternalError(c, err.Error())
		return
	}

	Success(c, rec)
}
