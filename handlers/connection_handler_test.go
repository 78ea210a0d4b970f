package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"port-route-server/models"
)

func TestConnectionEndpoints(t *testing.T) {
	r, store := testEngine(t)
	seedNetwork(t, store)

	created := doJSON(t, r, http.MethodPost, "/api/v1/connections", models.CreateConnectionRequest{
		PortA:      "A",
		PortB:      "C",
		DistanceKm: 400,
		TimeHours:  6,
		CostUSD:    30,
		RouteType:  "maritime",
	})
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	var conn models.PortConnection
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &conn))
	assert.Equal(t, "A", conn.PortAName)
	assert.Equal(t, "C", conn.PortBName)

	listed := doJSON(t, r, http.MethodGet, "/api/v1/connections?port=A", nil)
	require.Equal(t, http.StatusOK, listed.Code)
	var touching []models.PortConnection
	require.NoError(t, json.Unmarshal(listed.Body.Bytes(), &touching))
	assert.Len(t, touching, 2)

	restricted := doJSON(t, r, http.MethodPatch, "/api/v1/connections/"+conn.ID+"/restriction",
		models.UpdateRestrictionRequest{IsRestricted: boolPtr(true)})
	require.Equal(t, http.StatusOK, restricted.Code)
	require.NoError(t, json.Unmarshal(restricted.Body.Bytes(), &conn))
	assert.True(t, conn.IsRestricted)
}

func TestConnectionEndpointErrors(t *testing.T) {
	r, store := testEngine(t)
	seedNetwork(t, store)

	unknownPort := doJSON(t, r, http.MethodPost, "/api/v1/connections", models.CreateConnectionRequest{
		PortA: "A", PortB: "Atlantis", DistanceKm: 10, TimeHours: 1, CostUSD: 5,
	})
	assert.Equal(t, http.StatusNotFound, unknownPort.Code)

	zeroCost := doJSON(t, r, http.MethodPost, "/api/v1/connections", models.CreateConnectionRequest{
		PortA: "A", PortB: "B", DistanceKm: 10, TimeHours: 1, CostUSD: 0,
	})
	assert.Equal(t, http.StatusBadRequest, zeroCost.Code)

	missingBody := doJSON(t, r, http.MethodPatch, "/api/v1/connections/c-ab/restriction", gin.H{})
	assert.Equal(t, http.StatusBadRequest, missingBody.Code)

	notFound := doJSON(t, r, http.MethodPatch, "/api/v1/connections/nope/restriction",
		models.UpdateRestrictionRequest{IsRestricted: boolPtr(false)})
	assert.Equal(t, http.StatusNotFound, notFound.Code)
}

func boolPtr(b bool) *bool { return &b }
