package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"port-route-server/models"
	"port-route-server/services"
)

type PortHandler struct {
	ports *services.PortService
}

func NewPortHandler(ports *services.PortService) *PortHandler {
	return &PortHandler{ports: ports}
}

// Create handles POST /api/v1/ports.
func (h *PortHandler) Create(c *gin.Context) {
	var req models.CreatePortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	port, err := h.ports.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusForError(err), models.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, port)
}

// List handles GET /api/v1/ports with an optional ?type= filter.
func (h *PortHandler) List(c *gin.Context) {
	ports, err := h.ports.List(c.Request.Context(), c.Query("type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, ports)
}

// Get handles GET /api/v1/ports/:id.
func (h *PortHandler) Get(c *gin.Context) {
	port, err := h.ports.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusForError(err), models.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, port)
}

// Update handles PATCH /api/v1/ports/:id.
func (h *PortHandler) Update(c *gin.Context) {
	var req models.UpdatePortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	port, err := h.ports.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(statusForError(err), models.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, port)
}
