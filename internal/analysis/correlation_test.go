package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellbench/internal/model"
)

func historyRecord(i int) model.HistoryRecord {
	// Every field varies linearly in i so the matrix is defined.
	v := 3.0 + 0.1*float64(i)
	a := 1.0 + float64(i)
	return model.HistoryRecord{
		Timestamp: time.Date(2025, 6, 1, 0, i, 0, 0, time.UTC),
		CellID:    "cell_1",
		CellState: model.CellState{
			Chemistry:   "lfp",
			Voltage:     v,
			Current:     a,
			Temperature: 25 + float64(i),
			MinVoltage:  2.8,
			MaxVoltage:  3.6,
			Capacity:    v * a,
			Health:      95 - float64(i),
		},
	}
}

func TestCorrelation(t *testing.T) {
	records := make([]model.HistoryRecord, 0, 6)
	for i := 0; i < 6; i++ {
		records = append(records, historyRecord(i))
	}

	m, err := Correlation(records)
	require.NoError(t, err)
	assert.Equal(t, []string{"voltage", "current", "temperature", "capacity", "health"}, m.Fields)
	require.Len(t, m.Values, 5)

	for i := range m.Fields {
		assert.Equal(t, 1.0, m.Values[i][i])
		for j := range m.Fields {
			assert.InDelta(t, m.Values[j][i], m.Values[i][j], 1e-12, "matrix must be symmetric")
			assert.LessOrEqual(t, m.Values[i][j], 1.0)
			assert.GreaterOrEqual(t, m.Values[i][j], -1.0)
		}
	}

	// voltage and temperature are both linear in the tick index.
	vIdx, tIdx, hIdx := 0, 2, 4
	assert.InDelta(t, 1.0, m.Values[vIdx][tIdx], 1e-9)
	// health declines while voltage rises.
	assert.InDelta(t, -1.0, m.Values[vIdx][hIdx], 1e-9)
}

func TestCorrelation_InsufficientRecords(t *testing.T) {
	_, err := Correlation(nil)
	assert.ErrorIs(t, err, model.ErrInsufficientData)

	_, err = Correlation([]model.HistoryRecord{historyRecord(0)})
	assert.ErrorIs(t, err, model.ErrInsufficientData)
}

func TestCorrelation_ZeroVariance(t *testing.T) {
	r1 := historyRecord(0)
	r2 := historyRecord(1)
	r1.Health = 90
	r2.Health = 90

	_, err := Correlation([]model.HistoryRecord{r1, r2})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInsufficientData)
	assert.Contains(t, err.Error(), "health")
}
