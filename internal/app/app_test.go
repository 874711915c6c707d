package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqarboard/internal/config"
	"aqarboard/internal/infrastructure"
)

const sampleCSV = `Price,Area in m²,Bedrooms,View,Governorate,Price per meter,Payment Method,Year Built,Floor
"1,200,000",120 m²,3,Sea,Alexandria,"10,000",Cash,2015,3
"950,000",95 m²,2,Street,Cairo,"10,000",Installment,2018,5
"2,400,000",210 m²,4,Sea,North Coast,"11,428",Cash,2020,2
N/A,150 m²,3,Garden,Giza,"9,000",Cash,2010,1
"1,800,000",160 m²,3,Street,Alexandria,"11,250",Installment,2021,8
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	for _, name := range []string{"listings.csv", "deployment.csv", "train.csv"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(sampleCSV), 0644))
	}

	cfg := config.Default()
	cfg.Logging.Output = "stdout"
	cfg.Paths.DataDir = dir
	cfg.Paths.ListingsFile = "listings.csv"
	cfg.Paths.DeploymentFile = "deployment.csv"
	cfg.Paths.TrainFile = "train.csv"
	return cfg
}

func newTestApp(t *testing.T) *Application {
	t.Helper()
	infrastructure.ResetLoggerForTesting()

	frontend := fstest.MapFS{
		"index.html": {Data: []byte("<!DOCTYPE html><title>aqarboard</title>")},
	}
	application, err := NewApplicationWithConfig(testConfig(t), frontend)
	require.NoError(t, err)
	return application
}

func TestApplication_APIRoutes(t *testing.T) {
	application := newTestApp(t)

	tests := []struct {
		path string
		want int
	}{
		{"/api/pages", http.StatusOK},
		{"/api/pages/", http.StatusOK},
		{"/api/pages/home", http.StatusOK},
		{"/api/pages/eda", http.StatusOK},
		{"/api/pages/preprocessed", http.StatusOK},
		{"/api/pages/settings", http.StatusNotFound},
		{"/api/datasets/train/download", http.StatusOK},
		{"/api/datasets/train/download?format=xlsx", http.StatusOK},
		{"/api/health", http.StatusOK},
		{"/api/health/live", http.StatusOK},
		{"/api/health/ready", http.StatusOK},
		{"/api/version", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/api/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		application.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		assert.Equal(t, tt.want, rec.Code, tt.path)
	}
}

func TestApplication_ServesFrontend(t *testing.T) {
	application := newTestApp(t)

	for _, path := range []string{"/", "/eda"} {
		rec := httptest.NewRecorder()
		application.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "aqarboard")
	}
}

func TestApplication_PageResponseShape(t *testing.T) {
	application := newTestApp(t)

	rec := httptest.NewRecorder()
	application.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pages/eda", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Name string `json:"name"`
		Tabs []struct {
			Name string `json:"name"`
		} `json:"tabs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, "eda", page.Name)
	require.Len(t, page.Tabs, 3)
	assert.Equal(t, "Univariate Analysis", page.Tabs[0].Name)
}

func TestApplication_CompressesJSON(t *testing.T) {
	application := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/pages", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	application.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}

func TestApplication_RequestIDHeader(t *testing.T) {
	application := newTestApp(t)

	rec := httptest.NewRecorder()
	application.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pages", nil))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestApplication_SecurityHeaders(t *testing.T) {
	application := newTestApp(t)

	rec := httptest.NewRecorder()
	application.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pages", nil))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
