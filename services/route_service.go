package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"port-route-server/models"
)

// RouteService owns route record construction. Validation happens exactly
// once here; records are immutable afterwards.
type RouteService struct{}

func NewRouteService() *RouteService {
	return &RouteService{}
}

// Register validates and assembles an OptimalRoute record from the real
// aggregated totals of a successful computation.
func (s *RouteService) Register(
	originPortID, originPortName string,
	destinationPortID, destinationPortName string,
	routeMode models.RouteMode,
	algorithmUsed models.AlgorithmName,
	totalCost, totalDistance, totalTime float64,
	visitedPorts []string,
) (*models.OptimalRoute, error) {
	if strings.TrimSpace(originPortID) == "" {
		return nil, fmt.Errorf("%w: origin port id cannot be empty", ErrInvalidInput)
	}
	if strings.TrimSpace(originPortName) == "" {
		return nil, fmt.Errorf("%w: origin port name cannot be empty", ErrInvalidInput)
	}
	if strings.TrimSpace(destinationPortID) == "" {
		return nil, fmt.Errorf("%w: destination port id cannot be empty", ErrInvalidInput)
	}
	if strings.TrimSpace(destinationPortName) == "" {
		return nil, fmt.Errorf("%w: destination port name cannot be empty", ErrInvalidInput)
	}
	if strings.TrimSpace(string(routeMode)) == "" {
		return nil, fmt.Errorf("%w: route mode cannot be empty", ErrInvalidInput)
	}
	if totalCost <= 0 {
		return nil, fmt.Errorf("%w: total cost must be greater than 0", ErrInvalidInput)
	}
	if totalDistance <= 0 {
		return nil, fmt.Errorf("%w: total distance must be greater than 0", ErrInvalidInput)
	}
	if totalTime <= 0 {
		return nil, fmt.Errorf("%w: total time must be greater than 0", ErrInvalidInput)
	}
	if len(visitedPorts) == 0 {
		return nil, fmt.Errorf("%w: visited ports list cannot be empty", ErrInvalidInput)
	}

	return &models.OptimalRoute{
		ID:                  uuid.NewString(),
		OriginPortID:        originPortID,
		OriginPortName:      originPortName,
		DestinationPortID:   destinationPortID,
		DestinationPortName: destinationPortName,
		RouteMode:           routeMode,
		AlgorithmUsed:       algorithmUsed,
		TotalCost:           totalCost,
		TotalDistance:       totalDistance,
		TotalTime:           totalTime,
		VisitedPorts:        visitedPorts,
		CreatedAt:           time.Now().UTC(),
	}, nil
}
