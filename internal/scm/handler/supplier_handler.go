package handler

import (
	"errors"

	"github.com/bitfantasy/nimo-scm/internal/scm/repository"
	"github.com/bitfantasy/nimo-scm/internal/scm/service"
	"github.com/gin-gonic/gin"
)

type SupplierHandler struct {
	svc *service.SupplierService
}

func NewSupplierHandler(svc *service.SupplierService) *SupplierHandler {
	return &SupplierHandler{svc: svc}
}

func (h *SupplierHandler) Create(c *gin.Context) {
	var req service.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	supplier, err := h.svc.Create(req)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Created(c, supplier)
}

func (h *SupplierHandler) Update(c *gin.Context) {
	var req service.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	supplier, err := h.svc.Update(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			NotFound(c, "supplier not found")
			return
		}
		InternalError(c, err.Error())
		return
	}

	Success(c, supplier)
}

func (h *SupplierHandler) Get(c *gin.Context) {
	supplier, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			NotFound(c, "supplier not found")
			return
		}
		InternalError(c, err.Error())
		return
	}

	Success(c, supplier)
}

func (h *SupplierHandler) List(c *gin.Context) {
	page, size := GetPagination(c)
	params := repository.SupplierListParams{
		Keyword: c.Query("keyword"),
		Page:    page,
		Size:    size,
	}

	suppliers, total, err := h.svc.List(params)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, gin.H{"items": suppliers, "total": total, "page": page, "size": size})
}
