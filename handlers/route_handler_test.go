package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"port-route-server/graphs"
	"port-route-server/models"
	"port-route-server/repository"
	"port-route-server/services"
	"port-route-server/utils"
)

func testEngine(t *testing.T) (*gin.Engine, *repository.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	logger := zap.NewNop()

	planner, err := services.NewRoutePlanner(store.Ports(), store.Connections(), store.Routes(), 16, logger)
	require.NoError(t, err)
	portService := services.NewPortService(store.Ports())
	connectionService := services.NewConnectionService(store.Ports(), store.Connections())

	r := gin.New()
	Register(r,
		NewRouteHandler(planner, store.Ports(), logger),
		NewPortHandler(portService),
		NewConnectionHandler(connectionService),
	)
	return r, store
}

func seedNetwork(t *testing.T, store *repository.MemoryStore) {
	t.Helper()
	ctx := context.Background()

	ports := []models.Port{
		{ID: "p-a", Name: "A", Country: "XX", Latitude: 0, Longitude: 0, Capacity: 100, PortType: models.PortTypeMaritime},
		{ID: "p-b", Name: "B", Country: "XX", Latitude: 0, Longitude: 1, Capacity: 100, PortType: models.PortTypeMaritime},
		{ID: "p-c", Name: "C", Country: "XX", Latitude: 0, Longitude: 2, Capacity: 100, PortType: models.PortTypeMaritime},
	}
	for i := range ports {
		require.NoError(t, store.Ports().Save(ctx, &ports[i]))
	}
	connections := []models.PortConnection{
		{ID: "c-ab", PortAID: "p-a", PortAName: "A", PortBID: "p-b", PortBName: "B", DistanceKm: 120, TimeHours: 2, CostUSD: 10},
		{ID: "c-bc", PortAID: "p-b", PortAName: "B", PortBID: "p-c", PortBName: "C", DistanceKm: 130, TimeHours: 1, CostUSD: 5},
	}
	for i := range connections {
		require.NoError(t, store.Connections().Save(ctx, &connections[i]))
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateRouteEndpoint(t *testing.T) {
	r, store := testEngine(t)
	seedNetwork(t, store)

	w := doJSON(t, r, http.MethodPost, "/api/v1/routes", models.GenerateRouteRequest{
		Source:        "A",
		Destination:   "C",
		Mode:          "maritime",
		ExportWeight:  50,
		AlgorithmName: "dijkstra",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp models.RouteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"A", "B", "C"}, resp.VisitedPorts)
	assert.InDelta(t, 15.0, resp.TotalCost, 1e-9)
	assert.NotEmpty(t, resp.Geometry)
	assert.NotEmpty(t, resp.ID)

	got := doJSON(t, r, http.MethodGet, "/api/v1/routes/"+resp.ID, nil)
	require.Equal(t, http.StatusOK, got.Code)
}

func TestGenerateRouteEndpointValidation(t *testing.T) {
	r, store := testEngine(t)
	seedNetwork(t, store)

	missingFields := doJSON(t, r, http.MethodPost, "/api/v1/routes", gin.H{"source": "A"})
	assert.Equal(t, http.StatusBadRequest, missingFields.Code)

	badAlgorithm := doJSON(t, r, http.MethodPost, "/api/v1/routes", models.GenerateRouteRequest{
		Source: "A", Destination: "C", ExportWeight: 50, AlgorithmName: "floyd",
	})
	assert.Equal(t, http.StatusBadRequest, badAlgorithm.Code)

	unknownPort := doJSON(t, r, http.MethodPost, "/api/v1/routes", models.GenerateRouteRequest{
		Source: "A", Destination: "Atlantis", ExportWeight: 50, AlgorithmName: "dijkstra",
	})
	assert.Equal(t, http.StatusNotFound, unknownPort.Code)

	noRoute := doJSON(t, r, http.MethodPost, "/api/v1/routes", models.GenerateRouteRequest{
		Source: "C", Destination: "A", ExportWeight: 50, AlgorithmName: "dijkstra",
	})
	assert.Equal(t, http.StatusNotFound, noRoute.Code)
}

func TestGenerateRouteEndpointNegativeCycle(t *testing.T) {
	r, store := testEngine(t)
	seedNetwork(t, store)

	// Mirror A<->B so a negative cost multiplier turns the pair into a
	// negative cycle under the blended weights.
	back := models.PortConnection{
		ID: "c-ba", PortAID: "p-b", PortAName: "B", PortBID: "p-a", PortBName: "A",
		DistanceKm: 120, TimeHours: 2, CostUSD: 10,
	}
	require.NoError(t, store.Connections().Save(context.Background(), &back))

	negative := -1.0
	zero := 0.0
	w := doJSON(t, r, http.MethodPost, "/api/v1/routes", models.GenerateRouteRequest{
		Source:        "A",
		Destination:   "C",
		ExportWeight:  50,
		AlgorithmName: "bellman-ford",
		Parameters: &models.ParametersRequest{
			CostMultiplier:     &negative,
			DistanceMultiplier: &zero,
			TimeMultiplier:     &zero,
		},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
}

func TestStatusForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unsupported algorithm", utils.ErrUnsupportedAlgorithm, http.StatusBadRequest},
		{"invalid input", fmt.Errorf("%w: export weight cannot be negative", services.ErrInvalidInput), http.StatusBadRequest},
		{"port not found", services.ErrPortNotFound, http.StatusNotFound},
		{"no route", services.ErrNoRouteFound, http.StatusNotFound},
		{"record not found", repository.ErrNotFound, http.StatusNotFound},
		{"negative cycle", fmt.Errorf("computation failed: %w", graphs.ErrNegativeCycle), http.StatusUnprocessableEntity},
		{"snapshot inconsistency", services.ErrMissingConnection, http.StatusInternalServerError},
		{"storage failure", fmt.Errorf("could not load ports: connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusForError(tc.err))
		})
	}
}

func TestGetRouteEndpointNotFound(t *testing.T) {
	r, _ := testEngine(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/routes/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAlgorithmCatalogEndpoint(t *testing.T) {
	r, _ := testEngine(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/algorithms", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var catalog []models.AlgorithmInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &catalog))
	require.Len(t, catalog, 3)

	var withParameters int
	for _, info := range catalog {
		if info.RequiresParameters {
			withParameters++
		}
	}
	assert.Equal(t, 1, withParameters)
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := testEngine(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
