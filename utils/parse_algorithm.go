package utils

import (
	"errors"
	"fmt"
	"strings"

	"port-route-server/models"
)

// ErrUnsupportedAlgorithm is returned for algorithm names outside the
// recognized alias set.
var ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

// ParseAlgorithmName maps a user-supplied algorithm name onto its canonical
// label. Matching is case-insensitive and ignores hyphens and spaces, so
// "A*", "a-star" and "Bellman Ford" are all accepted.
func ParseAlgorithmName(input string) (models.AlgorithmName, error) {
	normalized := strings.ToLower(input)
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.ReplaceAll(normalized, " ", "")

	switch normalized {
	case "astar", "a*":
		return models.AlgorithmAStar, nil
	case "dijkstra":
		return models.AlgorithmDijkstra, nil
	case "bellman", "bellmanford":
		return models.AlgorithmBellmanFord, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, input)
	}
}
