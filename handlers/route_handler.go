package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/twpayne/go-polyline"
	"go.uber.org/zap"

	"port-route-server/graphs"
	"port-route-server/models"
	"port-route-server/repository"
	"port-route-server/services"
	"port-route-server/utils"
)

type RouteHandler struct {
	planner *services.RoutePlanner
	ports   repository.PortRepository
	logger  *zap.Logger
}

func NewRouteHandler(planner *services.RoutePlanner, ports repository.PortRepository, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{planner: planner, ports: ports, logger: logger}
}

// statusForError maps the service-level failure modes onto HTTP statuses.
// Anything unrecognized is an infrastructure failure, not a client error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, utils.ErrUnsupportedAlgorithm),
		errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrPortNotFound),
		errors.Is(err, services.ErrNoRouteFound),
		errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, graphs.ErrNegativeCycle):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Generate handles POST /api/v1/routes.
func (h *RouteHandler) Generate(c *gin.Context) {
	var req models.GenerateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	plan := services.PlanRequest{
		Source:        req.Source,
		Destination:   req.Destination,
		Mode:          req.Mode,
		ExportWeight:  req.ExportWeight,
		AlgorithmName: req.AlgorithmName,
		Criterion:     req.Criterion,
	}
	if req.Parameters != nil {
		plan.CostMultiplier = req.Parameters.CostMultiplier
		plan.DistanceMultiplier = req.Parameters.DistanceMultiplier
		plan.TimeMultiplier = req.Parameters.TimeMultiplier
	}

	record, err := h.planner.GenerateRoute(c.Request.Context(), plan)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("route generation failed", zap.Error(err))
		}
		c.JSON(status, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, h.toResponse(c, record))
}

// Get handles GET /api/v1/routes/:id.
func (h *RouteHandler) Get(c *gin.Context) {
	record, err := h.planner.GetRoute(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusForError(err), models.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.toResponse(c, record))
}

// Algorithms handles GET /api/v1/algorithms.
func (h *RouteHandler) Algorithms(c *gin.Context) {
	c.JSON(http.StatusOK, []models.AlgorithmInfo{
		{
			ID:          "astar",
			Name:        string(models.AlgorithmAStar),
			Description: "Heuristic search over real distances, guided by great-circle estimates",
			Complexity:  "O((V+E) log V)",
		},
		{
			ID:          "dijkstra",
			Name:        string(models.AlgorithmDijkstra),
			Description: "Uniform-cost search over a single chosen measure (cost by default)",
			Complexity:  "O((V+E) log V)",
		},
		{
			ID:                 "bellman-ford",
			Name:               string(models.AlgorithmBellmanFord),
			Description:        "Relaxation over blended weights; tolerates negative edges, rejects negative cycles",
			RequiresParameters: true,
			Complexity:         "O(V*E)",
		},
	})
}

// toResponse converts a stored record into the API shape and best-effort
// attaches the encoded polyline of the visited ports.
func (h *RouteHandler) toResponse(c *gin.Context, record *models.OptimalRoute) models.RouteResponse {
	resp := models.RouteResponse{
		ID:                  record.ID,
		OriginPortID:        record.OriginPortID,
		OriginPortName:      record.OriginPortName,
		DestinationPortID:   record.DestinationPortID,
		DestinationPortName: record.DestinationPortName,
		RouteMode:           record.RouteMode,
		AlgorithmUsed:       record.AlgorithmUsed,
		TotalCost:           record.TotalCost,
		TotalDistance:       record.TotalDistance,
		TotalTime:           record.TotalTime,
		VisitedPorts:        record.VisitedPorts,
		CreatedAt:           record.CreatedAt.Format(time.RFC3339),
	}

	coords := make([][]float64, 0, len(record.VisitedPorts))
	for _, name := range record.VisitedPorts {
		port, err := h.ports.FindByName(c.Request.Context(), name)
		if err != nil {
			h.logger.Warn("skipping route geometry, port missing",
				zap.String("route_id", record.ID),
				zap.String("port", name))
			return resp
		}
		coords = append(coords, []float64{port.Latitude, port.Longitude})
	}
	resp.Geometry = string(polyline.EncodeCoords(coords))
	return resp
}
