package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"port-route-server/models"
	"port-route-server/repository"
	"port-route-server/utils"
)

// PortService validates and persists ports.
type PortService struct {
	ports repository.PortRepository
}

func NewPortService(ports repository.PortRepository) *PortService {
	return &PortService{ports: ports}
}

func validateCoordinates(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return fmt.Errorf("%w: latitude must be between -90 and 90, got %v", ErrInvalidInput, latitude)
	}
	if longitude < -180 || longitude > 180 {
		return fmt.Errorf("%w: longitude must be between -180 and 180, got %v", ErrInvalidInput, longitude)
	}
	return nil
}

func (s *PortService) Create(ctx context.Context, req models.CreatePortRequest) (*models.Port, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: port name cannot be empty", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Country) == "" {
		return nil, fmt.Errorf("%w: port country cannot be empty", ErrInvalidInput)
	}
	if req.Capacity < 0 {
		return nil, fmt.Errorf("%w: port capacity cannot be negative", ErrInvalidInput)
	}
	if err := validateCoordinates(req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	if _, err := s.ports.FindByName(ctx, name); err == nil {
		return nil, fmt.Errorf("%w: port %q already exists", ErrInvalidInput, name)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	port := &models.Port{
		ID:          uuid.NewString(),
		Name:        name,
		Country:     strings.TrimSpace(req.Country),
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		InGraphType: req.InGraphType,
		Capacity:    req.Capacity,
		PortType:    utils.ParsePortType(req.PortType),
	}
	if err := s.ports.Save(ctx, port); err != nil {
		return nil, err
	}
	return port, nil
}

func (s *PortService) Get(ctx context.Context, id string) (*models.Port, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: port id cannot be empty", ErrInvalidInput)
	}
	return s.ports.FindByID(ctx, id)
}

// List returns all ports, optionally filtered by port type.
func (s *PortService) List(ctx context.Context, portType string) ([]models.Port, error) {
	if strings.TrimSpace(portType) == "" {
		return s.ports.FindAll(ctx)
	}
	return s.ports.FindByType(ctx, utils.ParsePortType(portType))
}

// Update applies the set fields of the request to a stored port.
func (s *PortService) Update(ctx context.Context, id string, req models.UpdatePortRequest) (*models.Port, error) {
	port, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: port name cannot be empty", ErrInvalidInput)
		}
		port.Name = name
	}
	if req.PortType != nil {
		port.PortType = utils.ParsePortType(*req.PortType)
	}
	if req.Capacity != nil {
		if *req.Capacity < 0 {
			return nil, fmt.Errorf("%w: port capacity cannot be negative", ErrInvalidInput)
		}
		port.Capacity = *req.Capacity
	}

	if err := s.ports.Save(ctx, port); err != nil {
		return nil, err
	}
	return port, nil
}
