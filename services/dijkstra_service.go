package services

import (
	"port-route-server/graphs"
	"port-route-server/models"
)

// DijkstraService wraps the uniform-cost search. The optimization criterion
// is a caller choice; monetary cost is the default so the result is clearly
// distinct from the distance-driven A* variant.
type DijkstraService struct {
	algorithm *graphs.Dijkstra
	criterion models.WeightCriterion
}

func NewDijkstraService(criterion models.WeightCriterion) *DijkstraService {
	if criterion == "" {
		criterion = models.CriterionCost
	}
	return &DijkstraService{
		algorithm: graphs.NewDijkstra(),
		criterion: criterion,
	}
}

func (s *DijkstraService) edgeWeight(conn models.PortConnection) float64 {
	switch s.criterion {
	case models.CriterionTime:
		return conn.TimeHours
	case models.CriterionDistance:
		return conn.DistanceKm
	default:
		return conn.CostUSD
	}
}

func (s *DijkstraService) BuildGraph(ports []models.Port, connections []models.PortConnection) {
	names := portNameSet(ports)

	for _, port := range ports {
		s.algorithm.AddPort(port)
	}

	for _, conn := range connections {
		if conn.IsRestricted {
			continue
		}
		if !names[conn.PortAName] || !names[conn.PortBName] {
			continue
		}
		s.algorithm.AddConnection(conn.PortAName, conn.PortBName, s.edgeWeight(conn))
	}
}

func (s *DijkstraService) ComputePath(origin, destination string, exportWeight float64) (float64, []string, error) {
	weight, route := s.algorithm.Compute(origin, destination, exportWeight)
	return weight, route, nil
}
