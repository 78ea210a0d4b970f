package models

// RouteResponse is the API view of a route record, extended with an encoded
// polyline of the visited ports' coordinates.
type RouteResponse struct {
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
	Geometry            string        `json:"geometry,omitempty"`
	CreatedAt           string        `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// AlgorithmInfo describes one entry of the algorithm catalog endpoint.
type AlgorithmInfo struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	RequiresParameters bool   `json:"requires_parameters"`
	Complexity         string `json:"complexity"`
}
