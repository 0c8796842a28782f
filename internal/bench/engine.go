package bench

import (
	"time"

	"cellbench/internal/model"
)

// Per-tick perturbation bounds.
const (
	tickVoltageJitter = 0.05 // V
	tickCurrentJitter = 0.2  // A
	tickTempJitter    = 1.0  // °C
)

// Engine advances the cell bank. It owns one Source and one clock; a fixed
// Source and clock make a whole session reproducible.
type Engine struct {
	store *Store
	log   *Log
	src   Source
	now   func() time.Time
}

func NewEngine(store *Store, log *Log, src Source) *Engine {
	return &Engine{
		store: store,
		log:   log,
		src:   src,
		now:   time.Now,
	}
}

func (e *Engine) Store() *Store { return e.store }
func (e *Engine) Log() *Log     { return e.log }

// Initialize replaces the bank with n fresh cells using the engine's Source.
func (e *Engine) Initialize(n int, assign AssignFunc) error {
	return e.store.Initialize(n, assign, e.src)
}

// Tick advances every cell by one step: bounded random deltas on voltage,
// current and temperature, clamped back into the physical envelope, then
// one history record per cell. All records of the tick carry the same
// timestamp so the per-cell series stay aligned.
func (e *Engine) Tick() {
	ts := e.now()

	e.store.mu.Lock()
	records := make([]model.HistoryRecord, 0, len(e.store.ids))
	for _, id := range e.store.ids {
		c := e.store.cells[id]
		c.Voltage += e.src.Uniform(-tickVoltageJitter, tickVoltageJitter)
		c.Current += e.src.Uniform(-tickCurrentJitter, tickCurrentJitter)
		c.Temperature += e.src.Uniform(-tickTempJitter, tickTempJitter)
		c.ApplyBounds()
		records = append(records, model.HistoryRecord{Timestamp: ts, CellID: id, CellState: *c})
	}
	e.store.mu.Unlock()

	e.log.Append(records...)
}

// EmergencyStop zeroes every cell's current (and therefore capacity).
// Voltage and temperature are untouched. No history record is written: this
// is an instantaneous control action, not a simulated step.
func (e *Engine) EmergencyStop() {
	e.store.mu.Lock()
	for _, c := range e.store.cells {
		c.Current = 0
		c.Capacity = 0
	}
	e.store.mu.Unlock()
}

// Reset clears both the store and the history log. Idempotent.
func (e *Engine) Reset() {
	e.store.Clear()
	e.log.Reset()
}
