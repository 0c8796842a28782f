package bench

import (
	"sync"

	"cellbench/internal/model"
)

// Log is the append-only history of cell snapshots, one record per cell per
// tick. Records are never mutated or removed except by Reset.
type Log struct {
	mu      sync.Mutex
	records []model.HistoryRecord
}

func NewLog() *Log { return &Log{} }

func (l *Log) Append(records ...model.HistoryRecord) {
	l.mu.Lock()
	l.records = append(l.records, records...)
	l.mu.Unlock()
}

// Records returns a copy of the full log in append order.
func (l *Log) Records() []model.HistoryRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.HistoryRecord, len(l.records))
	copy(out, l.records)
	return out
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

func (l *Log) Reset() {
	l.mu.Lock()
	l.records = nil
	l.mu.Unlock()
}
