package services

import "port-route-server/models"

// AlgorithmService is the uniform contract the planner drives: ingest the
// snapshot into the algorithm's own graph representation, then compute.
// Each implementation owns a fresh algorithm instance, so a service is
// single-use and never shared between computations.
type AlgorithmService interface {
	BuildGraph(ports []models.Port, connections []models.PortConnection)
	ComputePath(origin, destination string, exportWeight float64) (float64, []string, error)
}

// portNameSet returns the set of known port names so builds can drop
// connections whose endpoints are not part of the snapshot.
func portNameSet(ports []models.Port) map[string]bool {
	names := make(map[string]bool, len(ports))
	for _, port := range ports {
		names[port.Name] = true
	}
	return names
}
