package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"cellbench/internal/api/models"
	"cellbench/internal/bench"
)

// CellsHandler serves the state and history tables.
type CellsHandler struct {
	engine *bench.Engine
}

func NewCellsHandler(engine *bench.Engine) *CellsHandler {
	return &CellsHandler{engine: engine}
}

// List handles GET /api/v1/cells.
func (h *CellsHandler) List(c *gin.Context) {
	records := h.engine.Store().Records()
	cells := make([]models.Cell, 0, len(records))
	for _, r := range records {
		cells = append(cells, models.CellFromState(r.CellID, r.CellState))
	}
	c.JSON(http.StatusOK, gin.H{"cells": cells})
}

// Get handles GET /api/v1/cells/:id.
func (h *CellsHandler) Get(c *gin.Context) {
	id := c.Param("id")
	cell, err := h.engine.Store().Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.CellFromState(id, cell))
}

// History handles GET /api/v1/history.
func (h *CellsHandler) History(c *gin.Context) {
	records := h.engine.Log().Records()
	rows := make([]models.HistoryRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, models.HistoryRowFromRecord(r))
	}
	c.JSON(http.StatusOK, gin.H{"history": rows})
}

// ExportCells handles GET /api/v1/export/cells.csv.
func (h *CellsHandler) ExportCells(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="battery_data.csv"`)
	if err := bench.WriteStateCSV(c.Writer, h.engine.Store().Records()); err != nil {
		logrus.WithError(err).Error("state CSV export failed")
	}
}

// ExportHistory handles GET /api/v1/export/history.csv.
func (h *CellsHandler) ExportHistory(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="battery_historical.csv"`)
	if err := bench.WriteHistoryCSV(c.Writer, h.engine.Log().Records()); err != nil {
		logrus.WithError(err).Error("history CSV export failed")
	}
}
