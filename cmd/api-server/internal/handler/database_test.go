package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/assetdesk/backend/internal/domain"
	"github.com/assetdesk/backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDatabaseTestRouter(primary *store.MemoryBackend) *gin.Engine {
	gin.SetMode(gin.TestMode)

	docStore := store.NewDocumentStore(primary, nil, nil, zap.NewNop(), nil)
	h := NewDatabaseHandler(docStore)

	r := gin.New()
	r.GET("/api/database", h.GetDatabase)
	r.POST("/api/database", h.SaveDatabase)
	return r
}

func TestGetDatabaseEmpty(t *testing.T) {
	r := newDatabaseTestRouter(store.NewMemoryBackend())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/database", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}

func TestSaveDatabaseRoundTrip(t *testing.T) {
	primary := store.NewMemoryBackend()
	r := newDatabaseTestRouter(primary)

	body := `{"organizations":[{"id":"o1","name":"Acme"}],"teams":[]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/database", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/database", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var doc domain.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.JSONEq(t, `[{"id":"o1","name":"Acme"}]`, string(doc["organizations"]))
}

func TestSaveDatabaseInvalidJSON(t *testing.T) {
	r := newDatabaseTestRouter(store.NewMemoryBackend())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/database", strings.NewReader("{broken"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveDatabaseWriteFailure(t *testing.T) {
	primary := store.NewMemoryBackend()
	primary.FailWrites = true
	r := newDatabaseTestRouter(primary)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/database", strings.NewReader(`{"teams":[]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to save database"}`, w.Body.String())
}
