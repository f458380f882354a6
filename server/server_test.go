package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tabgroup"
	"github.com/hupe1980/tabgroup/embedding"
	"github.com/hupe1980/tabgroup/model"
	"github.com/hupe1980/tabgroup/naming"
)

func testService(opts Options) *Service {
	return New(tabgroup.New(), embedding.NewStaticEmbedder(64), naming.NoopNamer{}, opts)
}

func postCluster(t *testing.T, svc *Service, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/cluster", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	svc.Handler().ServeHTTP(w, req)
	return w
}

func TestHandleCluster(t *testing.T) {
	// The static embedder maps identical names to identical vectors, so
	// two repeated names form two well-separated groups.
	tabs := []model.Tab{
		{ID: "tab_0", Name: "Golang tutorial"},
		{ID: "tab_1", Name: "Golang tutorial"},
		{ID: "tab_2", Name: "Golang tutorial"},
		{ID: "tab_3", Name: "Golang tutorial"},
		{ID: "tab_4", Name: "Football news"},
		{ID: "tab_5", Name: "Football news"},
		{ID: "tab_6", Name: "Football news"},
		{ID: "tab_7", Name: "Football news"},
	}
	body, err := json.Marshal(tabs)
	require.NoError(t, err)

	w := postCluster(t, testService(Options{}), body)
	require.Equal(t, http.StatusOK, w.Code)

	var exports []model.ClusterExport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &exports))
	require.Len(t, exports, 2)

	seen := make(map[string]bool)
	for _, c := range exports {
		assert.Len(t, c.Tabs, 4)
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Name)
		for _, tab := range c.Tabs {
			assert.False(t, seen[tab.ID], "tab %s in two clusters", tab.ID)
			seen[tab.ID] = true
		}
	}
	assert.Len(t, seen, 8)
}

func TestHandleClusterEmptyInput(t *testing.T) {
	w := postCluster(t, testService(Options{}), []byte("[]"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestHandleClusterMalformedBody(t *testing.T) {
	w := postCluster(t, testService(Options{}), []byte("{not json"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthz(t *testing.T) {
	svc := testService(Options{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	svc.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit(t *testing.T) {
	svc := testService(Options{RateLimit: 0.001, Burst: 1})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	first := httptest.NewRecorder()
	svc.Handler().ServeHTTP(first, req)
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	svc.Handler().ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
