package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "aqarboard/internal/errors"
)

func newDatasetRouter(svc PageServiceInterface) chi.Router {
	h := NewDatasetHandler(svc, testLogger(), apierrors.NewErrorHandler(testLogger(), false))
	r := chi.NewRouter()
	r.Mount("/api/datasets", h.Routes())
	return r
}

func TestDownload_CSVDefault(t *testing.T) {
	router := newDatasetRouter(&fakePageService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/datasets/deployment/download", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="deployment.csv"`, rec.Header().Get("Content-Disposition"))

	body := rec.Body.Bytes()
	// BOM prefix, then the header row.
	require.True(t, len(body) > 3)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, body[:3])
	assert.True(t, strings.HasPrefix(string(body[3:]), "Price,View\n"))
}

func TestDownload_XLSX(t *testing.T) {
	router := newDatasetRouter(&fakePageService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/datasets/deployment/download?format=xlsx", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="deployment.xlsx"`, rec.Header().Get("Content-Disposition"))
	// XLSX files are zip archives.
	body := rec.Body.Bytes()
	require.True(t, len(body) > 2)
	assert.Equal(t, []byte{'P', 'K'}, body[:2])
}

func TestDownload_UnsupportedFormat(t *testing.T) {
	router := newDatasetRouter(&fakePageService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/datasets/deployment/download?format=pdf", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownload_UnknownDataset(t *testing.T) {
	router := newDatasetRouter(&fakePageService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/datasets/secrets/download", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
