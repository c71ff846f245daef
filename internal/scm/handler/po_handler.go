package handler

import (
	"errors"
	"strconv"

	"github.com/bitfantasy/nimo-scm/internal/scm/repository"
	"github.com/bitfantasy/nimo-scm/internal/scm/service"
	"github.com/gin-gonic/gin"
)

type POHandler struct {
	svc *service.ProcurementService
}

func NewPOHandler(svc *service.ProcurementService) *POHandler {
	return &POHandler{svc: svc}
}

func (h *POHandler) Create(c *gin.Context) {
	var req service.CreatePORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	po, err := h.svc.CreatePO(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			NotFound(c, err.Error())
		case errors.Is(err, service.ErrSupplierNotFound):
			NotFound(c, "supplier not found")
		default:
			InternalError(c, err.Error())
		}
		return
	}

	Created(c, po)
}

func (h *POHandler) Get(c *gin.Context) {
	po, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPONotFound) {
			NotFound(c, "purchase order not found")
			return
		}
		InternalError(c, err.Error())
		return
	}

	Success(c, po)
}

func (h *POHandler) List(c *gin.Context) {
	page, size := GetPagination(c)
	params := repository.POListParams{
		SupplierID: c.Query("supplier_id"),
		Keyword:    c.Query("keyword"),
		Page:       page,
		Size:       size,
	}
	if v := c.Query("received"); v != "" {
		if received, err := strconv.ParseBool(v); err == nil {
			params.Received = &received
		}
	}

	pos, total, err := h.svc.List(params)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, gin.H{"items": pos, "total": total, "page": page, "size": size})
}

type receiveRequest struct {
	PONumber string `json:"po_number" binding:"required"`
}

// Receive marks an order received by its PO number and credits inventory.
func (h *POHandler) Receive(c *gin.Context) {
	var req receiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	summary, err := h.svc.Receive(c.Request.Context(), req.PONumber)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPONotFound):
			NotFound(c, "purchase order not found")
		case errors.Is(err, service.ErrAlreadyReceived):
			Conflict(c, "purchase order already received")
		default:
			InternalError(c, err.Error())
		}
		return
	}

	Success(c, summary)
}
