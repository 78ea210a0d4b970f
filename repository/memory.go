package repository

import (
	"context"
	"sync"

	"port-route-server/models"
)

// MemoryStore keeps all three collections in process memory. It backs the
// service when no Neo4j instance is configured and doubles as the test
// double for everything above the repository boundary.
type MemoryStore struct {
	mu          sync.RWMutex
	ports       map[string]models.Port
	connections map[string]models.PortConnection
	routes      map[string]models.OptimalRoute
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ports:       make(map[string]models.Port),
		connections: make(map[string]models.PortConnection),
		routes:      make(map[string]models.OptimalRoute),
	}
}

func (s *MemoryStore) Ports() PortRepository             { return (*memoryPorts)(s) }
func (s *MemoryStore) Connections() ConnectionRepository { return (*memoryConnections)(s) }
func (s *MemoryStore) Routes() RouteRepository           { return (*memoryRoutes)(s) }

type memoryPorts MemoryStore

func (r *memoryPorts) Save(_ context.Context, port *models.Port) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ports[port.ID] = *port
	return nil
}

func (r *memoryPorts) FindByID(_ context.Context, id string) (*models.Port, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	port, ok := r.ports[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &port, nil
}

func (r *memoryPorts) FindByName(_ context.Context, name string) (*models.Port, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, port := range r.ports {
		if port.Name == name {
			p := port
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryPorts) FindByType(_ context.Context, portType models.PortType) ([]models.Port, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Port
	for _, port := range r.ports {
		if port.PortType == portType {
			out = append(out, port)
		}
	}
	return out, nil
}

func (r *memoryPorts) FindAll(_ context.Context) ([]models.Port, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Port, 0, len(r.ports))
	for _, port := range r.ports {
		out = append(out, port)
	}
	return out, nil
}

func (r *memoryPorts) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ports), nil
}

type memoryConnections MemoryStore

func (r *memoryConnections) Save(_ context.Context, conn *models.PortConnection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connections[conn.ID] = *conn
	return nil
}

func (r *memoryConnections) FindByID(_ context.Context, id string) (*models.PortConnection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conn, ok := r.connections[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &conn, nil
}

func (r *memoryConnections) FindByPortName(_ context.Context, name string) ([]models.PortConnection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.PortConnection
	for _, conn := range r.connections {
		if conn.PortAName == name || conn.PortBName == name {
			out = append(out, conn)
		}
	}
	return out, nil
}

func (r *memoryConnections) FindAll(_ context.Context) ([]models.PortConnection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.PortConnection, 0, len(r.connections))
	for _, conn := range r.connections {
		out = append(out, conn)
	}
	return out, nil
}

func (r *memoryConnections) SetRestricted(_ context.Context, id string, restricted bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	conn, ok := r.connections[id]
	if !ok {
		return ErrNotFound
	}
	conn.IsRestricted = restricted
	r.connections[id] = conn
	return nil
}

func (r *memoryConnections) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.connections), nil
}

type memoryRoutes MemoryStore

func (r *memoryRoutes) Save(_ context.Context, route *models.OptimalRoute) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes[route.ID] = *route
	return nil
}

func (r *memoryRoutes) FindByID(_ context.Context, id string) (*models.OptimalRoute, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	route, ok := r.routes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &route, nil
}
