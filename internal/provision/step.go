// Package provision runs the ordered sequence of host setup steps.
package provision

import "context"

// Severity decides what a step failure means for the whole run.
type Severity int

const (
	// Fatal failures stop the run immediately.
	Fatal Severity = iota
	// Cosmetic failures are downgraded to warnings unless strict mode is on.
	Cosmetic
)

// Kind tags steps whose work crosses the network; those run under the
// configured deadline.
type Kind int

const (
	Local Kind = iota
	Network
)

// Step is one labeled unit of provisioning work.
type Step struct {
	Name     string
	Kind     Kind
	Severity Severity
	Run      func(ctx context.Context) error
}

// EventType describes a step state transition.
type EventType int

const (
	EventStarted EventType = iota
	EventSucceeded
	EventWarned
	EventFailed
	EventSkipped
)

// Event is emitted by the runner for every step transition.
type Event struct {
	Type  EventType
	Step  string
	Index int // 0-based position in the sequence
	Total int
	Err   error // set for EventWarned and EventFailed
}
