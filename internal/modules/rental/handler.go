package rental

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
	rg.GET("/Rental", h.List)
	rg.GET("/Rental/:id", h.GetByID)
	rg.POST("/Rental", h.Create)
	rg.PUT("/Rental/:id", h.Update)
	rg.DELETE("/Rental/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	rentals, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Message(c, http.StatusInternalServerError, "Failed to list rentals")
		return
	}
	response.Data(c, http.StatusOK, "All rentals provided", rentals)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rt, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Message(c, http.StatusNotFound, notFoundMessage(id))
			return
		}
		response.Message(c, http.StatusInternalServerError, "Failed to get rental")
		return
	}
	response.Data(c, http.StatusOK, "Rental provided", rt)
}

// Create responds with the pricing message; the computed cost is not part
// of the stored record.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationFailed(c, http.StatusBadRequest, "Missing required rental fields", errs)
		return
	}

	receipt, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Message(c, http.StatusBadRequest, "Rental dates must use the YYYY-MM-DD format")
		case errors.Is(err, ErrNotFound):
			response.Message(c, http.StatusNotFound,
				"Rental references a customer or equipment that was not found in the system")
		default:
			response.Message(c, http.StatusInternalServerError, "Failed to add rental")
		}
		return
	}
	response.Message(c, http.StatusOK, receipt.Message())
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationFailed(c, http.StatusBadRequest, "Missing required rental fields", errs)
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Message(c, http.StatusNotFound, notFoundMessage(id))
			return
		}
		response.Message(c, http.StatusInternalServerError, "Failed to update rental")
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("Rental item with id (%d) updated in the system", id))
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
		response.Message(c, http.StatusInternalServerError, "Failed to delete rental")
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("Rental item with id (%d) was deleted from the system", id))
}

func notFoundMessage(id int64) string {
	return fmt.Sprintf("Rental item with id (%d) was not found in the system", id)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid rental id")
		return 0, false
	}
	return id, true
}
