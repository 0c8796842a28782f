package model

import "time"

// CellRecord is one row of the current state table: a cell id plus a
// snapshot of its state. This is the shape consumers read and exports
// serialize; no component hands out live references into the store.
type CellRecord struct {
	CellID string
	CellState
}

// HistoryRecord is one row of the history table: a timestamped snapshot of
// one cell taken at the end of a tick. Immutable once appended. All records
// of the same tick share an identical timestamp so the per-cell series
// align in time.
type HistoryRecord struct {
	Timestamp time.Time
	CellID    string
	CellState
}
