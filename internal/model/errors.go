package model

import "errors"

// Core error kinds. All are recoverable conditions reported to the caller;
// a failed operation leaves existing state unchanged.
var (
	ErrUnknownChemistry = errors.New("unknown chemistry")
	ErrCellNotFound     = errors.New("cell not found")
	ErrInvalidValue     = errors.New("invalid value")
	ErrEmptyStore       = errors.New("no cells in store")
	ErrInsufficientData = errors.New("insufficient history data")
)
