package bench

import (
	"fmt"
	"sync"

	"cellbench/internal/model"
)

// Initialization ranges.
const (
	initVoltageJitter = 0.1  // V around nominal
	initCurrentMax    = 5.0  // A
	initTempMin       = 25.0 // °C
	initTempMax       = 40.0 // °C
	initCycleMax      = 1000
	initHealthMin     = 80.0 // percent
	initHealthMax     = 100.0
)

// Store owns all cell state. Consumers never hold live references; reads
// return snapshots and every operation is atomic under the store lock.
type Store struct {
	mu    sync.Mutex
	reg   *model.Registry
	ids   []string // creation order, cell_1..cell_n
	cells map[string]*model.CellState
}

func NewStore(reg *model.Registry) *Store {
	return &Store{
		reg:   reg,
		cells: make(map[string]*model.CellState),
	}
}

// Registry returns the chemistry registry the store was built with.
func (s *Store) Registry() *model.Registry { return s.reg }

// Initialize replaces the entire store with n fresh cells, cell_1..cell_n.
// Chemistry per cell comes from assign; electrical state is drawn from src
// in a fixed per-cell order (chemistry, voltage, current, temperature,
// cycle count, health) so a seeded source reproduces the same bank.
// The store lock is held for the whole rebuild, and on error the previous
// contents are left untouched.
func (s *Store) Initialize(n int, assign AssignFunc, src Source) error {
	if n <= 0 {
		return fmt.Errorf("%w: cell count must be > 0, got %d", model.ErrInvalidValue, n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, n)
	cells := make(map[string]*model.CellState, n)
	for i := 1; i <= n; i++ {
		tag := assign(i)
		cfg, err := s.reg.Lookup(tag)
		if err != nil {
			return fmt.Errorf("cell %d: %w", i, err)
		}

		c := &model.CellState{
			Chemistry:   tag,
			Voltage:     cfg.NominalVoltage + src.Uniform(-initVoltageJitter, initVoltageJitter),
			Current:     src.Uniform(0, initCurrentMax),
			Temperature: src.Uniform(initTempMin, initTempMax),
			MinVoltage:  cfg.MinVoltage,
			MaxVoltage:  cfg.MaxVoltage,
			CycleCount:  src.Intn(initCycleMax + 1),
			Health:      src.Uniform(initHealthMin, initHealthMax),
		}
		c.ApplyBounds()

		id := fmt.Sprintf("cell_%d", i)
		ids = append(ids, id)
		cells[id] = c
	}

	s.ids = ids
	s.cells = cells
	return nil
}

// Get returns a snapshot of one cell.
func (s *Store) Get(id string) (model.CellState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cells[id]
	if !ok {
		return model.CellState{}, fmt.Errorf("%w: %q", model.ErrCellNotFound, id)
	}
	return *c, nil
}

// SetCurrent is the manual per-cell override. It rejects negative values,
// recomputes capacity and returns the updated snapshot from the same lock
// hold; on error the cell is left untouched.
func (s *Store) SetCurrent(id string, amps float64) (model.CellState, error) {
	if amps < 0 {
		return model.CellState{}, fmt.Errorf("%w: current must be >= 0, got %.3f", model.ErrInvalidValue, amps)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cells[id]
	if !ok {
		return model.CellState{}, fmt.Errorf("%w: %q", model.ErrCellNotFound, id)
	}
	c.Current = amps
	c.Capacity = c.Voltage * c.Current
	return *c, nil
}

// Clear empties the store.
func (s *Store) Clear() {
	s.mu.Lock()
	s.ids = nil
	s.cells = make(map[string]*model.CellState)
	s.mu.Unlock()
}

// Len returns the number of cells.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// IDs returns the cell ids in creation order.
func (s *Store) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Records returns a snapshot of the whole state table in creation order.
func (s *Store) Records() []model.CellRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.CellRecord, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, model.CellRecord{CellID: id, CellState: *s.cells[id]})
	}
	return out
}
