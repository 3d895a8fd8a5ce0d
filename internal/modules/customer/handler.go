package customer

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"equipmentrental/internal/pkg/response"
	"equipmentrental/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/Customer", h.List)
	rg.GET("/Customer/:id", h.GetByID)
	rg.POST("/Customer", h.Create)
	rg.PUT("/Customer/:id", h.Update)
	rg.DELETE("/Customer/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	customers, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Message(c, http.StatusInternalServerError, "Failed to list customers")
		return
	}
	response.Data(c, http.StatusOK, "All customers provided", customers)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	cu, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Message(c, http.StatusNotFound, notFoundMessage(id))
			return
		}
		response.Message(c, http.StatusInternalServerError, "Failed to get customer")
		return
	}
	response.Data(c, http.StatusOK, "Customer provided", cu)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationFailed(c, http.StatusBadRequest, "Missing required customer fields", errs)
		return
	}

	if _, err := h.service.Create(c.Request.Context(), req); err != nil {
		response.Message(c, http.StatusInternalServerError, "Failed to add customer")
		return
	}
	response.Message(c, http.StatusOK, "Customer added to the system")
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationFailed(c, http.StatusBadRequest, "Missing required customer fields", errs)
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Message(c, http.StatusNotFound, notFoundMessage(id))
			return
		}
		response.Message(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("Customer with id (%d) updated in the system", id))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Message(c, http.StatusNotFound, notFoundMessage(id))
			return
		}
		response.Message(c, http.StatusInternalServerError, "Failed to delete customer")
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("Customer with id (%d) was deleted from the system", id))
}

func notFoundMessage(id int64) string {
	return fmt.Sprintf("Customer with id (%d) was not found in the system", id)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid customer id")
		return 0, false
	}
	return id, true
}
