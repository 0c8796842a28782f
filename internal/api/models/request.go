package models

// InitializeRequest is the body of POST /api/v1/bench/initialize.
type InitializeRequest struct {
	Count int `json:"count" binding:"required"`
	// Assignment selects the chemistry policy: "random" (default),
	// "round-robin", or a registered chemistry tag.
	Assignment string `json:"assignment,omitempty"`
}

// SetCurrentRequest is the body of PUT /api/v1/cells/:id/current.
// Current is a pointer so an explicit 0 A passes binding.
type SetCurrentRequest struct {
	Current *float64 `json:"current" binding:"required"`
}
