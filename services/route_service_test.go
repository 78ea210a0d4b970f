package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"port-route-server/models"
)

func TestRegisterBuildsCompleteRecord(t *testing.T) {
	s := NewRouteService()

	record, err := s.Register(
		"p1", "Valparaiso",
		"p2", "Shanghai",
		models.ModeMaritime,
		models.AlgorithmDijkstra,
		1200, 18700, 430,
		[]string{"Valparaiso", "Callao", "Shanghai"},
	)
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "Valparaiso", record.OriginPortName)
	assert.Equal(t, "Shanghai", record.DestinationPortName)
	assert.Equal(t, models.AlgorithmDijkstra, record.AlgorithmUsed)
	assert.Equal(t, []string{"Valparaiso", "Callao", "Shanghai"}, record.VisitedPorts)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	s := NewRouteService()
	visited := []string{"A", "B"}

	cases := []struct {
		name string
		run  func() error
	}{
		{"empty origin id", func() error {
			_, err := s.Register("", "A", "p2", "B", models.ModeMaritime, models.AlgorithmAStar, 1, 1, 1, visited)
			return err
		}},
		{"empty destination name", func() error {
			_, err := s.Register("p1", "A", "p2", "", models.ModeMaritime, models.AlgorithmAStar, 1, 1, 1, visited)
			return err
		}},
		{"zero cost", func() error {
			_, err := s.Register("p1", "A", "p2", "B", models.ModeMaritime, models.AlgorithmAStar, 0, 1, 1, visited)
			return err
		}},
		{"negative distance", func() error {
			_, err := s.Register("p1", "A", "p2", "B", models.ModeMaritime, models.AlgorithmAStar, 1, -5, 1, visited)
			return err
		}},
		{"zero time", func() error {
			_, err := s.Register("p1", "A", "p2", "B", models.ModeMaritime, models.AlgorithmAStar, 1, 1, 0, visited)
			return err
		}},
		{"empty visited list", func() error {
			_, err := s.Register("p1", "A", "p2", "B", models.ModeMaritime, models.AlgorithmAStar, 1, 1, 1, nil)
			return err
		}},
		{"empty mode", func() error {
			_, err := s.Register("p1", "A", "p2", "B", "", models.AlgorithmAStar, 1, 1, 1, visited)
			return err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.run())
		})
	}
}

func TestRegisterAssignsUniqueIDs(t *testing.T) {
	s := NewRouteService()
	visited := []string{"A", "B"}

	first, err := s.Register("p1", "A", "p2", "B", models.ModeAir, models.AlgorithmAStar, 1, 1, 1, visited)
	require.NoError(t, err)
	second, err := s.Register("p1", "A", "p2", "B", models.ModeAir, models.AlgorithmAStar, 1, 1, 1, visited)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}
