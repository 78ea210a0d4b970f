package services

import (
	"port-route-server/graphs"
	"port-route-server/models"
)

// AStarService wraps the heuristic search. Edges are weighted by raw
// distance in kilometers, which keeps the haversine heuristic admissible.
type AStarService struct {
	algorithm *graphs.AStar
}

func NewAStarService() *AStarService {
	return &AStarService{algorithm: graphs.NewAStar()}
}

func (s *AStarService) BuildGraph(ports []models.Port, connections []models.PortConnection) {
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
		s.algorithm.AddConnection(conn.PortAName, conn.PortBName, conn.DistanceKm)
	}
}

func (s *AStarService) ComputePath(origin, destination string, exportWeight float64) (float64, []string, error) {
	weight, route := s.algorithm.Compute(origin, destination, exportWeight)
	return weight, route, nil
}
