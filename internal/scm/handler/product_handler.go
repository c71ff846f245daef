package handler

import (
	"errors"

	"github.com/bitfantasy/nimo-scm/internal/scm/repository"
	"github.com/bitfantasy/nimo-scm/internal/scm/service"
	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	svc *service.ProductService
}

func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	product, err := h.svc.Create(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateSKU):
			Conflict(c, err.Error())
		case errors.Is(err, service.ErrSupplierNotFound):
			NotFound(c, "supplier not found")
		default:
			InternalError(c, err.Error())
		}
		return
	}

	Created(c, product)
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			NotFound(c, "product not found")
			return
		}
		InternalError(c, err.Error())
		return
	}

	Success(c, product)
}

func (h *ProductHandler) GetBySKU(c *gin.Context) {
	product, err := h.svc.GetBySKU(c.Param("sku"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			NotFound(c, "product not found")
			return
		}
		InternalError(c, err.Error())
		return
	}

	Success(c, product)
}

func (h *ProductHandler) List(c *gin.Context) {
	page, size := GetPagination(c)
	params := repository.ProductListParams{
		SupplierID: c.Query("supplier_id"),
		Keyword:    c.Query("keyword"),
		Page:       page,
		Size:       size,
	}

	products, total, err := h.svc.List(params)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, gin.H{"items": products, "total": total, "page": page, "size": size})
}
