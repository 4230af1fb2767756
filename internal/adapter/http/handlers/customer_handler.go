package handlers

import (
	"net/http"

	request "fieldservice/internal/adapter/http/dto/request"
	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// CreateCustomer godoc
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body usecase.CustomerCommand true "Customer to add"
// @Success 201 {object} response.CustomerResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var cmd usecase.CustomerCommand
	if !bindJSON(c, &cmd) {
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCustomer(created))
}

// ListCustomers godoc
// @Summary List customers
// @Description Optional case-insensitive search over name, email, phone and company.
// @Tags customers
// @Produce json
// @Param search query string false "Search text"
// @Success 200 {array} response.CustomerResponse
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	var q request.CustomerListQuery
	if !bindQuery(c, &q) {
		return
	}
	list, err := h.usecase.List(c.Request.Context(), q.Search)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromList(list, response.FromCustomer))
}

// GetCustomer godoc
// @Summary Get a customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} response.CustomerResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// UpdateCustomer godoc
// @Summary Replace a customer's details
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param customer body usecase.CustomerCommand true "Customer details"
// @Success 200 {object} response.CustomerResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var cmd usecase.CustomerCommand
	if !bindJSON(c, &cmd) {
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(updated))
}
