package models

// PortConnection is a usable link between two ports, traversable in the
// declared direction only. Two-way traversal requires a mirrored record.
type PortConnection struct {
	ID           string  `json:"id"`
	PortAID      string  `json:"port_a_id"`
	PortAName    string  `json:"port_a_name"`
	PortBID      string  `json:"port_b_id"`
	PortBName    string  `json:"port_b_name"`
	DistanceKm   float64 `json:"distance_km"`
	TimeHours    float64 `json:"time_hours"`
	CostUSD      float64 `json:"cost_usd"`
	RouteType    string  `json:"route_type"`
	IsRestricted bool    `json:"is_restricted"`
}
