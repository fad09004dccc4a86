// Package http provides gin handlers for the customer API.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/allisson/customers/internal/customer/domain"
	"github.com/allisson/customers/internal/customer/http/dto"
	"github.com/allisson/customers/internal/customer/service"
	"github.com/allisson/customers/internal/httputil"
)

// CustomerHandler serves /v1/customers on top of the customer service.
type CustomerHandler struct {
	customerService service.CustomerService
	logger          *slog.Logger
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(customerService service.CustomerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
	}
}

// RegisterRoutes mounts the customer endpoints on group.
func (h *CustomerHandler) RegisterRoutes(group *gin.RouterGroup) {
	customers := group.Group("/customers")
	customers.GET("", h.ListHandler)
	customers.POST("", h.CreateHandler)
	customers.GET("/:id", h.GetHandler)
	customers.DELETE("/:id", h.DeleteHandler)
}

// ListHandler returns every customer.
// GET /v1/customers - 200 with {"data": [...]}.
func (h *CustomerHandler) ListHandler(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewListCustomersResponse(customers))
}

// GetHandler returns one customer.
// GET /v1/customers/:id - 200, 404 when absent, 422 on a malformed id.
func (h *CustomerHandler) GetHandler(c *gin.Context) {
	id, err := parseCustomerID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), &id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	if customer == nil {
		httputil.HandleErrorGin(c, domain.ErrCustomerNotFound, h.logger)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// CreateHandler stores a new customer.
// POST /v1/customers - 201 with the persisted customer.
func (h *CustomerHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateCustomerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req.ToCustomerDTO())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// DeleteHandler removes a customer.
// DELETE /v1/customers/:id - 204, also when the customer does not exist.
func (h *CustomerHandler) DeleteHandler(c *gin.Context) {
	id, err := parseCustomerID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), &id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseCustomerID reads the :id path parameter as a positive integer.
func parseCustomerID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidCustomerID
	}
	return id, nil
}
