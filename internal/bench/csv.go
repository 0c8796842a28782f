package bench

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"cellbench/internal/model"
)

// stateHeader is the column layout of the current-state export. Keep the
// order stable; downstream notebooks index by position.
var stateHeader = []string{
	"cell_id",
	"chemistry",
	"voltage",
	"current",
	"temperature",
	"min_voltage",
	"max_voltage",
	"capacity",
	"cycle_count",
	"health",
}

// WriteStateCSV serializes the current state table, one row per cell.
func WriteStateCSV(out io.Writer, cells []model.CellRecord) error {
	w := csv.NewWriter(out)

	if err := w.Write(stateHeader); err != nil {
		return err
	}
	for _, r := range cells {
		row := append([]string{r.CellID}, stateColumns(r.CellState)...)
		if err := w.Write(row); err != nil {
			return err
		}
	}
	// Flush before reading the error: small tables only hit the
	// underlying writer here.
	w.Flush()
	return w.Error()
}

// WriteHistoryCSV serializes the history log, one row per record.
func WriteHistoryCSV(out io.Writer, records []model.HistoryRecord) error {
	w := csv.NewWriter(out)

	header := append([]string{"timestamp"}, stateHeader...)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range records {
		row := append([]string{fmtTime(r.Timestamp), r.CellID}, stateColumns(r.CellState)...)
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func stateColumns(c model.CellState) []string {
	return []string{
		c.Chemistry,
		fmtFloat(c.Voltage),
		fmtFloat(c.Current),
		fmtFloat(c.Temperature),
		fmtFloat(c.MinVoltage),
		fmtFloat(c.MaxVoltage),
		fmtFloat(c.Capacity),
		strconv.Itoa(c.CycleCount),
		fmtFloat(c.Health),
	}
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	// Nanosecond precision: ticks can land inside the same second.
	return t.Format(time.RFC3339Nano)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
