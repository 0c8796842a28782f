package model

// Status is the qualitative health classification of a cell.
// Keep these values stable; they are intended for JSON and CSV output.
type Status string

const (
	StatusGood     Status = "Good"
	StatusWarning  Status = "Warning"
	StatusCritical Status = "Critical"
)

// Classification thresholds, shared with the alert engine so the two
// surfaces cannot drift apart. Temperatures are °C.
const (
	TempWarning  = 40.0
	TempCritical = 45.0

	voltageUnderscale = 0.9  // fraction of MinVoltage below which a cell is critical
	voltageOverscale  = 1.05 // fraction of MaxVoltage above which a cell is critical
)

// StatusOf classifies a cell. Critical conditions are checked before
// Warning ones, so a critically hot cell never reports Warning on voltage.
func StatusOf(c CellState) Status {
	switch {
	case c.Temperature > TempCritical,
		c.Voltage < c.MinVoltage*voltageUnderscale,
		c.Voltage > c.MaxVoltage*voltageOverscale:
		return StatusCritical
	case c.Temperature > TempWarning,
		c.Voltage < c.MinVoltage,
		c.Voltage > c.MaxVoltage:
		return StatusWarning
	default:
		return StatusGood
	}
}
