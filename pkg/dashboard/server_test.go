package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csviz/csviz-go/pkg/csviz/output"
)

const requestsDataset = `#Requests
#minute
#count
#lines
#min,req
0,10
1,12
2,9
`

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "requests.csv"), []byte(requestsDataset), 0644))

	cfg := DefaultConfig()
	cfg.DataDir = dir
	cfg.CacheTTL = Duration(time.Minute)

	srv, err := New(cfg, nil)
	require.NoError(t, err)
	return srv, dir
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandleDatasets(t *testing.T) {
	srv, dir := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.csv"), []byte(requestsDataset), 0644))

	rec := get(t, srv, "/api/datasets")
	require.Equal(t, http.StatusOK, rec.Code)

	var names []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &names))
	assert.Equal(t, []string{"other.csv", "requests.csv"}, names)
}

func TestHandleSpec(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := get(t, srv, "/api/spec/requests.csv")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var spec struct {
		Title  string `json:"title"`
		Series []struct {
			Title string `json:"title"`
			Type  string `json:"type"`
		} `json:"series"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spec))
	assert.Equal(t, "Requests", spec.Title)
	require.Len(t, spec.Series, 1)
	assert.Equal(t, "req", spec.Series[0].Title)
	assert.Equal(t, "lines", spec.Series[0].Type)
}

func TestHandleFigure(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := get(t, srv, "/api/figure/requests.csv")
	require.Equal(t, http.StatusOK, rec.Code)

	var fig output.Figure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fig))
	require.Len(t, fig.Data, 1)
	assert.Equal(t, "scatter", fig.Data[0].Type)
	assert.Equal(t, "lines", fig.Data[0].Mode)
	assert.Equal(t, "Requests", fig.Layout.Title)
}

func TestHandleFigureUnknownDataset(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := get(t, srv, "/api/figure/missing.csv")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleFigureMalformedDataset(t *testing.T) {
	srv, dir := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.csv"), []byte("no header\n"), 0644))

	rec := get(t, srv, "/api/figure/broken.csv")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
}

func TestHandleMetrics(t *testing.T) {
	srv, _ := newTestServer(t)

	get(t, srv, "/api/spec/requests.csv")
	rec := get(t, srv, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "csviz_cache_misses_total")
}

func TestValidateDatasetName(t *testing.T) {
	assert.NoError(t, validateDatasetName("requests.csv"))
	assert.Error(t, validateDatasetName(""))
	assert.Error(t, validateDatasetName(".."))
	assert.Error(t, validateDatasetName("../etc/passwd"))
	assert.Error(t, validateDatasetName("sub/requests.csv"))
	assert.Error(t, validateDatasetName(`sub\requests.csv`))
}

func TestHandlersServeCachedSpec(t *testing.T) {
	srv, dir := newTestServer(t)

	first := get(t, srv, "/api/spec/requests.csv")
	require.Equal(t, http.StatusOK, first.Code)

	// a rewritten file is not re-read inside the TTL window
	require.NoError(t, os.WriteFile(filepath.Join(dir, "requests.csv"), []byte("garbage\n"), 0644))
	second := get(t, srv, "/api/spec/requests.csv")
	require.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}
