package equipment

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
	rg.GET("/Equipment", h.List)
	rg.GET("/Equipment/:id", h.GetByID)
	rg.POST("/Equipment", h.Create)
	rg.PUT("/Equipment/:id", h.Update)
	rg.DELETE("/Equipment/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Message(c, http.StatusInternalServerError, "Failed to list equipment")
		return
	}
	response.Data(c, http.StatusOK, "All equipment provided", items)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Message(c, http.StatusNotFound, notFoundMessage(id))
			return
		}
		response.Message(c, http.StatusInternalServerError, "Failed to get equipment")
		return
	}
	response.Data(c, http.StatusOK, "Equipment provided", e)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationFailed(c, http.StatusBadRequest, "Missing required equipment fields", errs)
		return
	}

	if _, err := h.service.Create(c.Request.Context(), req); err != nil {
		response.Message(c, http.StatusInternalServerError, "Failed to add equipment")
		return
	}
	response.Message(c, http.StatusOK, "Equipment added to the system")
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationFailed(c, http.StatusBadRequest, "Missing required equipment fields", errs)
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Message(c, http.StatusNotFound, notFoundMessage(id))
			return
		}
		response.Message(c, http.StatusInternalServerError, "Failed to update equipment")
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("Equipment with id (%d) updated in the system", id))
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
		response.Message(c, http.StatusInternalServerError, "Failed to delete equipment")
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("Equipment with id (%d) was deleted from the system", id))
}

func notFoundMessage(id int64) string {
	return fmt.Sprintf("Equipment with id (%d) was not found in the system", id)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid equipment id")
		return 0, false
	}
	return id, true
}
