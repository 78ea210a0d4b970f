package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"port-route-server/models"
	"port-route-server/services"
)

type ConnectionHandler struct {
	connections *services.ConnectionService
}

func NewConnectionHandler(connections *services.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{connections: connections}
}

// Create handles POST /api/v1/connections.
func (h *ConnectionHandler) Create(c *gin.Context) {
	var req models.CreateConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	conn, err := h.connections.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusForError(err), models.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, conn)
}

// List handles GET /api/v1/connections with an optional ?port= filter.
func (h *ConnectionHandler) List(c *gin.Context) {
	connections, err := h.connections.List(c.Request.Context(), c.Query("port"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, connections)
}

// SetRestriction handles PATCH /api/v1/connections/:id/restriction.
func (h *ConnectionHandler) SetRestriction(c *gin.Context) {
	var req models.UpdateRestrictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	conn, err := h.connections.SetRestriction(c.Request.Context(), c.Param("id"), *req.IsRestricted)
	if err != nil {
		c.JSON(statusForError(err), models.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, conn)
}
