package model

import (
	"fmt"
	"sort"
)

// CellConfig defines the immutable voltage envelope of one cell chemistry.
// Units:
// - Voltages: V
type CellConfig struct {
	NominalVoltage float64
	MinVoltage     float64
	MaxVoltage     float64
}

func (c CellConfig) Validate() error {
	if !(c.MinVoltage < c.NominalVoltage && c.NominalVoltage < c.MaxVoltage) {
		return fmt.Errorf("%w: want min < nominal < max, got %.2f/%.2f/%.2f",
			ErrInvalidValue, c.MinVoltage, c.NominalVoltage, c.MaxVoltage)
	}
	return nil
}

// Registry maps chemistry tags to their voltage envelopes. Adding a
// chemistry is a data addition via Register (or YAML config), never a code
// change for consumers.
type Registry struct {
	configs map[string]CellConfig
}

func NewRegistry() *Registry {
	return &Registry{configs: make(map[string]CellConfig)}
}

// DefaultRegistry returns a registry preloaded with the two bench
// chemistries, LFP and NMC.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	// Envelopes match the bench cell datasheets.
	_ = r.Register("lfp", CellConfig{NominalVoltage: 3.2, MinVoltage: 2.8, MaxVoltage: 3.6})
	_ = r.Register("nmc", CellConfig{NominalVoltage: 3.6, MinVoltage: 3.2, MaxVoltage: 4.0})
	return r
}

func (r *Registry) Register(tag string, cfg CellConfig) error {
	if tag == "" {
		return fmt.Errorf("%w: empty chemistry tag", ErrInvalidValue)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("chemistry %q: %w", tag, err)
	}
	r.configs[tag] = cfg
	return nil
}

// Lookup returns the envelope for a chemistry tag.
func (r *Registry) Lookup(tag string) (CellConfig, error) {
	cfg, ok := r.configs[tag]
	if !ok {
		return CellConfig{}, fmt.Errorf("%w: %q", ErrUnknownChemistry, tag)
	}
	return cfg, nil
}

// Tags returns the registered chemistry tags in sorted order.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.configs))
	for tag := range r.configs {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// CellState captures the mutable state of one cell.
// Units:
// - Voltage, MinVoltage, MaxVoltage: V
// - Current: A (never negative)
// - Temperature: °C (held in [20, 50])
// - Capacity: W, always Voltage × Current
// - Health: percent [0, 100]
//
// MinVoltage/MaxVoltage are copied from the chemistry at creation so each
// row is self-describing in exports.
type CellState struct {
	Chemistry   string
	Voltage     float64
	Current     float64
	Temperature float64
	MinVoltage  float64
	MaxVoltage  float64
	Capacity    float64
	CycleCount  int
	Health      float64
}

// ApplyBounds clamps the cell back into its physical envelope and refreshes
// the derived capacity. Capacity is recomputed after clamping so that
// Capacity == Voltage × Current always holds.
func (c *CellState) ApplyBounds() {
	c.Voltage = clamp(c.Voltage, c.MinVoltage, c.MaxVoltage)
	if c.Current < 0 {
		c.Current = 0
	}
	c.Temperature = clamp(c.Temperature, TempFloor, TempCeiling)
	c.Capacity = c.Voltage * c.Current
}

// Thermal limits of the bench enclosure, °C.
const (
	TempFloor   = 20.0
	TempCeiling = 50.0
)

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
