package handler

import (
	"strconv"

	"github.com/bitfantasy/nimo-scm/internal/scm/service"
	"github.com/gin-gonic/gin"
)

// Handlers supply-chain HTTP handler set
type Handlers struct {
	Supplier  *SupplierHandler
	Product   *ProductHandler
	Inventory *InventoryHandler
	PO        *POHandler
	Dashboard *DashboardHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Supplier:  NewSupplierHandler(services.Supplier),
		Product:   NewProductHandler(services.Product),
		Inventory: NewInventoryHandler(services.Inventory),
		PO:        NewPOHandler(services.Procurement),
		Dashboard: NewDashboardHandler(services.Dashboard),
	}
}

// === response helpers ===

type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, 40900, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

func GetPagination(c *gin.Context) (page, size int) {
	page = 1
	size = 20

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}

	if ps := c.Query("size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			size = v
		}
	}

	return page, size
}
