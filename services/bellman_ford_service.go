package services

import (
	"port-route-server/graphs"
	"port-route-server/models"
)

// BellmanFordService wraps the relaxation-based search. Each edge entering
// the graph is weighted by the blended cost/time/distance scalar, which is
// what makes negative-cycle detection necessary downstream.
type BellmanFordService struct {
	algorithm *graphs.BellmanFord
	weights   *WeightCalculationService
}

func NewBellmanFordService(costMultiplier, distanceMultiplier, timeMultiplier float64) *BellmanFordService {
	return &BellmanFordService{
		algorithm: graphs.NewBellmanFord(),
		weights:   NewWeightCalculationService(costMultiplier, distanceMultiplier, timeMultiplier),
	}
}

func (s *BellmanFordService) BuildGraph(ports []models.Port, connections []models.PortConnection) {
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
		s.algorithm.AddConnection(conn.PortAName, conn.PortBName, s.weights.Calculate(conn))
	}
}

func (s *BellmanFordService) ComputePath(origin, destination string, exportWeight float64) (float64, []string, error) {
	return s.algorithm.Compute(origin, destination, exportWeight)
}
