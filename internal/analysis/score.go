package analysis

import (
	"sort"

	"cellbench/internal/model"
)

// Performance score weights: health dominates, voltage ratio and a
// temperature penalty make up the rest. The score ranks cells; it never
// drives state transitions.
const (
	healthWeight   = 0.4
	voltageWeight  = 30.0
	tempWeight     = 0.3
	tempPenaltyCap = 30.0
)

// PerformanceScore combines health, voltage ratio and temperature penalty
// into a single ranking figure. Higher is better.
func PerformanceScore(c model.CellState) float64 {
	penalty := clip(100-(c.Temperature-25)*2, 0, tempPenaltyCap)
	return healthWeight*c.Health + voltageWeight*(c.Voltage/c.MaxVoltage) + tempWeight*penalty
}

// RankedCell is one row of the performance ranking.
type RankedCell struct {
	CellID string
	Status model.Status
	Score  float64
	model.CellState
}

// Rank scores every cell and sorts descending by score, cell id as
// tiebreak so equal scores rank deterministically.
func Rank(cells []model.CellRecord) []RankedCell {
	out := make([]RankedCell, 0, len(cells))
	for _, r := range cells {
		out = append(out, RankedCell{
			CellID:    r.CellID,
			Status:    model.StatusOf(r.CellState),
			Score:     PerformanceScore(r.CellState),
			CellState: r.CellState,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].CellID < out[j].CellID
	})
	return out
}

func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
