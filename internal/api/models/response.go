package models

import (
	"time"

	"cellbench/internal/analysis"
	"cellbench/internal/model"
)

// Cell is one row of the state table as served over the API. Field names
// match the CSV export columns.
type Cell struct {
	CellID      string  `json:"cell_id"`
	Chemistry   string  `json:"chemistry"`
	Voltage     float64 `json:"voltage"`
	Current     float64 `json:"current"`
	Temperature float64 `json:"temperature"`
	MinVoltage  float64 `json:"min_voltage"`
	MaxVoltage  float64 `json:"max_voltage"`
	Capacity    float64 `json:"capacity"`
	CycleCount  int     `json:"cycle_count"`
	Health      float64 `json:"health"`
}

func CellFromState(id string, c model.CellState) Cell {
	return Cell{
		CellID:      id,
		Chemistry:   c.Chemistry,
		Voltage:     c.Voltage,
		Current:     c.Current,
		Temperature: c.Temperature,
		MinVoltage:  c.MinVoltage,
		MaxVoltage:  c.MaxVoltage,
		Capacity:    c.Capacity,
		CycleCount:  c.CycleCount,
		Health:      c.Health,
	}
}

// HistoryRow is one history record as served over the API.
type HistoryRow struct {
	Timestamp time.Time `json:"timestamp"`
	Cell
}

func HistoryRowFromRecord(r model.HistoryRecord) HistoryRow {
	return HistoryRow{
		Timestamp: r.Timestamp,
		Cell:      CellFromState(r.CellID, r.CellState),
	}
}

// OverviewResponse is the bank-level summary plus bench metadata.
type OverviewResponse struct {
	BenchName      string         `json:"bench_name,omitempty"`
	Group          int            `json:"group,omitempty"`
	CellCount      int            `json:"cell_count"`
	AvgVoltage     float64        `json:"avg_voltage"`
	AvgTemperature float64        `json:"avg_temperature"`
	TotalPower     float64        `json:"total_power"`
	AvgHealth      float64        `json:"avg_health"`
	StatusCounts   map[string]int `json:"status_counts"`
}

func OverviewFromAnalysis(o analysis.Overview) OverviewResponse {
	counts := make(map[string]int, len(o.StatusCounts))
	for s, n := range o.StatusCounts {
		counts[string(s)] = n
	}
	return OverviewResponse{
		CellCount:      o.CellCount,
		AvgVoltage:     o.AvgVoltage,
		AvgTemperature: o.AvgTemperature,
		TotalPower:     o.TotalPower,
		AvgHealth:      o.AvgHealth,
		StatusCounts:   counts,
	}
}

// CellStatus pairs a cell with its classification.
type CellStatus struct {
	CellID string `json:"cell_id"`
	Status string `json:"status"`
}

// RankingRow is one row of the performance ranking, best first.
type RankingRow struct {
	Rank   int     `json:"rank"`
	Status string  `json:"status"`
	Score  float64 `json:"performance_score"`
	Cell
}

// SummaryRow holds descriptive statistics for one state-table column.
type SummaryRow struct {
	Field  string  `json:"field"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// CorrelationResponse is the field-by-field Pearson correlation matrix.
type CorrelationResponse struct {
	Fields []string    `json:"fields"`
	Values [][]float64 `json:"values"`
}
