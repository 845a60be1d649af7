package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/assetdesk/backend/internal/domain"
	"github.com/assetdesk/backend/internal/service"
	"github.com/assetdesk/backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newOrganizationTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	docStore := store.NewDocumentStore(store.NewMemoryBackend(), nil, nil, zap.NewNop(), nil)
	h := NewOrganizationHandler(service.NewOrganizationService(docStore, zap.NewNop()))

	r := gin.New()
	r.GET("/api/v1/organizations", h.List)
	r.GET("/api/v1/organizations/:id", h.Get)
	r.POST("/api/v1/organizations", h.Create)
	r.PUT("/api/v1/organizations/:id", h.Update)
	r.DELETE("/api/v1/organizations/:id", h.Delete)
	return r
}

func TestOrganizationCRUD(t *testing.T) {
	r := newOrganizationTestRouter()

	// Create
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/organizations", strings.NewReader(`{"name":"Acme"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created domain.Organization
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Acme", created.Name)

	// Get
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/organizations/"+created.ID, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Update
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/v1/organizations/"+created.ID, strings.NewReader(`{"name":"Renamed"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/organizations/"+created.ID, nil)
	r.ServeHTTP(w, req)

	var got domain.Organization
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Renamed", got.Name)

	// Delete
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/organizations/"+created.ID, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/organizations/"+created.ID, nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrganizationGetNotFound(t *testing.T) {
	r := newOrganizationTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/organizations/missing", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"organization_not_found"}`, w.Body.String())
}

func TestOrganizationCreateInvalidBody(t *testing.T) {
	r := newOrganizationTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/organizations", strings.NewReader("{broken"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
