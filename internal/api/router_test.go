package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellbench/internal/bench"
	"cellbench/internal/config"
	"cellbench/internal/model"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Bench.Name = "bench-a"

	src := bench.NewSource(42)
	engine := bench.NewEngine(bench.NewStore(model.DefaultRegistry()), bench.NewLog(), src)
	return NewRouter(cfg, engine, src)
}

func do(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_BenchLifecycle(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/v1/bench/initialize", `{"count": 4}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/api/v1/cells", "")
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Cells []map[string]any `json:"cells"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Cells, 4)
	assert.Equal(t, "cell_1", listResp.Cells[0]["cell_id"])

	w = do(t, router, http.MethodPost, "/api/v1/bench/tick", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/api/v1/history", "")
	require.Equal(t, http.StatusOK, w.Code)
	var histResp struct {
		History []map[string]any `json:"history"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &histResp))
	assert.Len(t, histResp.History, 4)

	w = do(t, router, http.MethodGet, "/api/v1/overview", "")
	require.Equal(t, http.StatusOK, w.Code)
	var overview struct {
		BenchName string `json:"bench_name"`
		CellCount int    `json:"cell_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &overview))
	assert.Equal(t, "bench-a", overview.BenchName)
	assert.Equal(t, 4, overview.CellCount)

	w = do(t, router, http.MethodPost, "/api/v1/bench/reset", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/api/v1/overview", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRouter_SetCurrent(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK,
		do(t, router, http.MethodPost, "/api/v1/bench/initialize", `{"count": 2}`).Code)

	w := do(t, router, http.MethodPut, "/api/v1/cells/cell_1/current", `{"current": 2.0}`)
	require.Equal(t, http.StatusOK, w.Code)
	var cell struct {
		Current  float64 `json:"current"`
		Voltage  float64 `json:"voltage"`
		Capacity float64 `json:"capacity"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cell))
	assert.Equal(t, 2.0, cell.Current)
	assert.InDelta(t, cell.Voltage*2.0, cell.Capacity, 1e-9)

	w = do(t, router, http.MethodPut, "/api/v1/cells/cell_1/current", `{"current": -1.0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, router, http.MethodPut, "/api/v1/cells/cell_99/current", `{"current": 1.0}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_EmergencyStop(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK,
		do(t, router, http.MethodPost, "/api/v1/bench/initialize", `{"count": 3}`).Code)
	require.Equal(t, http.StatusOK,
		do(t, router, http.MethodPost, "/api/v1/bench/tick", "").Code)

	w := do(t, router, http.MethodPost, "/api/v1/bench/emergency-stop", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/api/v1/cells", "")
	var listResp struct {
		Cells []map[string]any `json:"cells"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	for _, c := range listResp.Cells {
		assert.Equal(t, 0.0, c["current"])
		assert.Equal(t, 0.0, c["capacity"])
	}

	// Emergency stop is not a tick: history stays at one tick's worth.
	w = do(t, router, http.MethodGet, "/api/v1/history", "")
	var histResp struct {
		History []map[string]any `json:"history"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &histResp))
	assert.Len(t, histResp.History, 3)
}

func TestRouter_ErrorMapping(t *testing.T) {
	router := newTestRouter(t)

	// Tick before initialize.
	assert.Equal(t, http.StatusUnprocessableEntity,
		do(t, router, http.MethodPost, "/api/v1/bench/tick", "").Code)

	// Unknown cell.
	assert.Equal(t, http.StatusNotFound,
		do(t, router, http.MethodGet, "/api/v1/cells/cell_1", "").Code)

	// Unknown chemistry as assignment policy.
	assert.Equal(t, http.StatusBadRequest,
		do(t, router, http.MethodPost, "/api/v1/bench/initialize",
			`{"count": 2, "assignment": "unobtainium"}`).Code)

	// Correlation with no history.
	assert.Equal(t, http.StatusUnprocessableEntity,
		do(t, router, http.MethodGet, "/api/v1/correlation", "").Code)
}

func TestRouter_ExportCSV(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK,
		do(t, router, http.MethodPost, "/api/v1/bench/initialize", `{"count": 2}`).Code)

	w := do(t, router, http.MethodGet, "/api/v1/export/cells.csv", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "cell_id,chemistry,voltage"))
}
