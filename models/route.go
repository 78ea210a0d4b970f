package models

import "time"

// OptimalRoute is the persisted summary of a successful route computation.
// The three totals are re-derived from the real connections traversed, never
// from the algorithm's internal optimization scalar. Records are immutable
// once created.
type OptimalRoute struct {
	ID                  string        `json:"id"`
	OriginPortID        string        `json:"origin_port_id"`
	OriginPortName      string        `json:"origin_port_name"`
	DestinationPortID   string        `json:"destination_port_id"`
	DestinationPortName string        `json:"destination_port_name"`
	RouteMode           RouteMode     `json:"route_mode"`
	AlgorithmUsed       AlgorithmName `json:"algorithm_used"`
	TotalCost           float64       `json:"total_cost"`
	TotalDistance       float64       `json:"total_distance"`
	TotalTime           float64       `json:"total_time"`
	VisitedPorts        []string      `json:"visited_ports"`
	CreatedAt           time.Time     `json:"created_at"`
}
