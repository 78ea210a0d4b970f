package utils

import (
	"fmt"
	"strings"

	"port-route-server/models"
)

// ParseRouteMode keeps the requested mode for record-keeping. Anything
// outside the known set falls back to multimodal, matching the planner's
// behavior of always unioning all networks into one graph.
func ParseRouteMode(input string) models.RouteMode {
	switch strings.ToLower(input) {
	case "maritime", "sea":
		return models.ModeMaritime
	case "air", "aerial":
		return models.ModeAir
	default:
		return models.ModeMultimodal
	}
}

// ParsePortType maps CSV and API values onto a known port type.
func ParsePortType(input string) models.PortType {
	switch strings.ToLower(input) {
	case "maritime", "sea":
		return models.PortTypeMaritime
	case "air", "aerial":
		return models.PortTypeAir
	case "both", "multimodal":
		return models.PortTypeBoth
	default:
		return models.PortTypeUnknown
	}
}

// ParseWeightCriterion selects the raw measure the Dijkstra build uses as
// edge weight. Empty input defaults to monetary cost.
func ParseWeightCriterion(input string) (models.WeightCriterion, error) {
	switch strings.ToLower(input) {
	case "", "cost":
		return models.CriterionCost, nil
	case "time":
		return models.CriterionTime, nil
	case "distance":
		return models.CriterionDistance, nil
	default:
		return "", fmt.Errorf("unsupported weight criterion: %q", input)
	}
}
