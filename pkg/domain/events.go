package domain

import "time"

// DispatchEvent describes one completed Run of a command line.
type DispatchEvent struct {
	Line     string
	Path     []string // Commands matched from the root down to the dispatched node
	Duration time.Duration
	Err      error
}

// Hooks defines callbacks for menu observability.
type Hooks struct {
	OnDispatch func(*DispatchEvent)
}
