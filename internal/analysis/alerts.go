package analysis

import (
	"fmt"

	"cellbench/internal/model"
)

// Alert thresholds beyond the status classification.
const (
	lowHealthThreshold = 70.0 // percent
)

// Alerts walks the cells in store order and emits operator alerts. Per
// cell: a critical-temperature alert suppresses the high-temperature one;
// low-health and low-voltage alerts are independent and can stack on the
// same cell.
func Alerts(cells []model.CellRecord) []string {
	var alerts []string
	for _, c := range cells {
		if c.Temperature > model.TempCritical {
			alerts = append(alerts, fmt.Sprintf("%s: critical temperature (%.1f°C)", c.CellID, c.Temperature))
		} else if c.Temperature > model.TempWarning {
			alerts = append(alerts, fmt.Sprintf("%s: high temperature (%.1f°C)", c.CellID, c.Temperature))
		}
		if c.Health < lowHealthThreshold {
			alerts = append(alerts, fmt.Sprintf("%s: low health (%.1f%%)", c.CellID, c.Health))
		}
		if c.Voltage < c.MinVoltage {
			alerts = append(alerts, fmt.Sprintf("%s: low voltage (%.2fV)", c.CellID, c.Voltage))
		}
	}
	return alerts
}
