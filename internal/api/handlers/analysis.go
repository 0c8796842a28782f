package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cellbench/internal/analysis"
	"cellbench/internal/api/models"
	"cellbench/internal/bench"
	"cellbench/internal/config"
	"cellbench/internal/model"
)

// AnalysisHandler serves the derived views: overview, status, alerts,
// ranking, summary statistics and the correlation matrix. All are computed
// on demand from the current store and log.
type AnalysisHandler struct {
	engine *bench.Engine
	bench  config.BenchConfig
}

func NewAnalysisHandler(engine *bench.Engine, benchMeta config.BenchConfig) *AnalysisHandler {
	return &AnalysisHandler{engine: engine, bench: benchMeta}
}

// Overview handles GET /api/v1/overview.
func (h *AnalysisHandler) Overview(c *gin.Context) {
	o, err := analysis.Aggregate(h.engine.Store().Records())
	if err != nil {
		writeError(c, err)
		return
	}
	resp := models.OverviewFromAnalysis(o)
	resp.BenchName = h.bench.Name
	resp.Group = h.bench.Group
	c.JSON(http.StatusOK, resp)
}

// Status handles GET /api/v1/status.
func (h *AnalysisHandler) Status(c *gin.Context) {
	records := h.engine.Store().Records()
	statuses := make([]models.CellStatus, 0, len(records))
	for _, r := range records {
		statuses = append(statuses, models.CellStatus{
			CellID: r.CellID,
			Status: string(model.StatusOf(r.CellState)),
		})
	}
	c.JSON(http.StatusOK, gin.H{"statuses": statuses})
}

// Alerts handles GET /api/v1/alerts.
func (h *AnalysisHandler) Alerts(c *gin.Context) {
	alerts := analysis.Alerts(h.engine.Store().Records())
	if alerts == nil {
		alerts = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

// Ranking handles GET /api/v1/ranking.
func (h *AnalysisHandler) Ranking(c *gin.Context) {
	ranked := analysis.Rank(h.engine.Store().Records())
	rows := make([]models.RankingRow, 0, len(ranked))
	for i, r := range ranked {
		rows = append(rows, models.RankingRow{
			Rank:   i + 1,
			Status: string(r.Status),
			Score:  r.Score,
			Cell:   models.CellFromState(r.CellID, r.CellState),
		})
	}
	c.JSON(http.StatusOK, gin.H{"ranking": rows})
}

// Summary handles GET /api/v1/summary.
func (h *AnalysisHandler) Summary(c *gin.Context) {
	summaries, err := analysis.Summarize(h.engine.Store().Records())
	if err != nil {
		writeError(c, err)
		return
	}
	rows := make([]models.SummaryRow, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, models.SummaryRow{
			Field:  s.Field,
			Mean:   s.Mean,
			StdDev: s.StdDev,
			Min:    s.Min,
			Max:    s.Max,
		})
	}
	c.JSON(http.StatusOK, gin.H{"summary": rows})
}

// Correlation handles GET /api/v1/correlation.
func (h *AnalysisHandler) Correlation(c *gin.Context) {
	m, err := analysis.Correlation(h.engine.Log().Records())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.CorrelationResponse{Fields: m.Fields, Values: m.Values})
}
