package inventory

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

// Inventory rows are addressed by equipment id; there is no separate
// inventory identity.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/Inventory", h.List)
	rg.GET("/Inventory/:id", h.GetByEquipmentID)
	rg.POST("/Inventory", h.Create)
	rg.PUT("/Inventory/:id", h.Update)
	rg.DELETE("/Inventory/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Message(c, http.StatusInternalServerError, "Failed to list inventory")
		return
	}
	response.Data(c, http.StatusOK, "All inventory provided", items)
}

func (h *Handler) GetByEquipmentID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	inv, err := h.service.GetByEquipmentID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Message(c, http.StatusNotFound, notFoundMessage(id))
			return
		}
		response.Message(c, http.StatusInternalServerError, "Failed to get inventory item")
		return
	}
	response.Data(c, http.StatusOK, "Inventory provided", inv)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationFailed(c, http.StatusBadRequest, "Missing required inventory fields", errs)
		return
	}

	if _, err := h.service.Create(c.Request.Context(), req); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			response.Message(c, http.StatusConflict,
				fmt.Sprintf("Inventory item with id (%d) already exists in the system", *req.EquipmentID))
			return
		}
		response.Message(c, http.StatusInternalServerError, "Failed to add inventory item")
		return
	}
	response.Message(c, http.StatusOK, "Item added to the system inventory")
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationFailed(c, http.StatusBadRequest, "Missing required inventory fields", errs)
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Message(c, http.StatusNotFound, notFoundMessage(id))
			return
		}
		response.Message(c, http.StatusInternalServerError, "Failed to update inventory item")
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("Inventory item with id (%d) updated in the system", id))
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
		response.Message(c, http.StatusInternalServerError, "Failed to delete inventory item")
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("Inventory item with id (%d) was deleted from the system", id))
}

func notFoundMessage(id int64) string {
	return fmt.Sprintf("Inventory item with id (%d) was not found in the system", id)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid inventory id")
		return 0, false
	}
	return id, true
}
