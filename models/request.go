package models

// ParametersRequest carries the Bellman-Ford weighting multipliers. Any
// multiplier left out defaults to 1.0, not 0 — an unweighted sum of raw
// cost+time+distance unless the caller opts into a deliberate blend.
type ParametersRequest struct {
	CostMultiplier     *float64 `json:"cost_multiplier"`
	DistanceMultiplier *float64 `json:"distance_multiplier"`
	TimeMultiplier     *float64 `json:"time_multiplier"`
}

type GenerateRouteRequest struct {
	Source        string             `json:"source" binding:"required"`
	Destination   string             `json:"destination" binding:"required"`
	Mode          string             `json:"mode"`
	ExportWeight  float64            `json:"export_weight" binding:"min=0"`
	AlgorithmName string             `json:"algorithm_name" binding:"required"`
	Criterion     string             `json:"criterion"`
	Parameters    *ParametersRequest `json:"parameters"`
}

type CreatePortRequest struct {
	Name        string  `json:"name" binding:"required"`
	Country     string  `json:"country" binding:"required"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	InGraphType string  `json:"in_graph_type"`
	Capacity    float64 `json:"capacity" binding:"min=0"`
	PortType    string  `json:"port_type" binding:"required"`
}

// UpdatePortRequest uses pointers so that omitted fields keep their stored
// values.
type UpdatePortRequest struct {
	Name     *string  `json:"name"`
	PortType *string  `json:"port_type"`
	Capacity *float64 `json:"capacity"`
}

type CreateConnectionRequest struct {
	PortA      string  `json:"port_a" binding:"required"`
	PortB      string  `json:"port_b" binding:"required"`
	DistanceKm float64 `json:"distance_km" binding:"min=0"`
	TimeHours  float64 `json:"time_hours" binding:"min=0"`
	CostUSD    float64 `json:"cost_usd" binding:"min=0"`
	RouteType  string  `json:"route_type"`
}

type UpdateRestrictionRequest struct {
	IsRestricted *bool `json:"is_restricted" binding:"required"`
}
