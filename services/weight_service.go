package services

import "port-route-server/models"

// WeightCalculationService blends a connection's three raw measures into one
// scalar. The multipliers are not normalized: callers usually keep them
// summing to 1.0, but nothing enforces it, so the blended unit is
// implementation-defined. Only the Bellman-Ford build uses this.
type WeightCalculationService struct {
	costMultiplier     float64
	distanceMultiplier float64
	timeMultiplier     float64
}

func NewWeightCalculationService(costMultiplier, distanceMultiplier, timeMultiplier float64) *WeightCalculationService {
	return &WeightCalculationService{
		costMultiplier:     costMultiplier,
		distanceMultiplier: distanceMultiplier,
		timeMultiplier:     timeMultiplier,
	}
}

func (s *WeightCalculationService) Calculate(conn models.PortConnection) float64 {
	return conn.CostUSD*s.costMultiplier +
		conn.TimeHours*s.timeMultiplier +
		conn.DistanceKm*s.distanceMultiplier
}
