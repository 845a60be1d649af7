package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/assetdesk/backend/internal/service"
	"github.com/assetdesk/backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPersonTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	docStore := store.NewDocumentStore(store.NewMemoryBackend(), nil, nil, zap.NewNop(), nil)
	h := NewPersonHandler(service.NewPersonService(docStore, zap.NewNop()))

	r := gin.New()
	r.GET("/api/v1/people", h.List)
	r.GET("/api/v1/people/hierarchy", h.Hierarchy)
	r.GET("/api/v1/people/:id", h.Get)
	r.GET("/api/v1/people/:id/costs", h.Costs)
	r.POST("/api/v1/people", h.Create)
	return r
}

func TestPersonListRequiresOrganizationID(t *testing.T) {
	r := newPersonTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/people", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "missing_organization_id", resp.Error)
}

func TestPersonHierarchyEndpoint(t *testing.T) {
	r := newPersonTestRouter()

	// Create manager and report
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/people",
		strings.NewReader(`{"name":"Boss","organizationId":"o1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var boss struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &boss))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/people",
		strings.NewReader(`{"name":"Report","organizationId":"o1","managerId":"`+boss.ID+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/people/hierarchy?organization_id=o1", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Roots []struct {
			Name         string `json:"name"`
			Level        int    `json:"level"`
			Subordinates []struct {
				Name  string `json:"name"`
				Level int    `json:"level"`
			} `json:"subordinates"`
		} `json:"roots"`
		Cycles []string `json:"cycles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Cycles)
	require.Len(t, resp.Roots, 1)
	assert.Equal(t, "Boss", resp.Roots[0].Name)
	require.Len(t, resp.Roots[0].Subordinates, 1)
	assert.Equal(t, "Report", resp.Roots[0].Subordinates[0].Name)
	assert.Equal(t, 1, resp.Roots[0].Subordinates[0].Level)
}

func TestPersonCostsNotFound(t *testing.T) {
	r := newPersonTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/people/missing/costs", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
