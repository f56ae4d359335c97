package provision

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Runner executes steps strictly in order. The first Fatal failure stops
// the run; nothing is rolled back.
type Runner struct {
	Steps []Step

	// NetworkTimeout bounds each Network step. Zero means no deadline,
	// matching the source system.
	NetworkTimeout time.Duration

	// Strict treats Cosmetic failures as Fatal.
	Strict bool

	// Skip names steps to report as skipped instead of running.
	Skip map[string]bool

	// Notify receives an Event per step transition; nil is fine.
	Notify func(Event)
}

func (r *Runner) notify(ev Event) {
	if r.Notify != nil {
		r.Notify(ev)
	}
}

// Run executes the sequence. The returned error is nil on full success,
// ErrInterrupted when ctx was cancelled, and a *StepError otherwise.
func (r *Runner) Run(ctx context.Context) error {
	total := len(r.Steps)

	for i, step := range r.Steps {
		if r.Skip[step.Name] {
			r.notify(Event{Type: EventSkipped, Step: step.Name, Index: i, Total: total})
			continue
		}
		if ctx.Err() != nil {
			return fmt.Errorf("%w before step %q", ErrInterrupted, step.Name)
		}

		r.notify(Event{Type: EventStarted, Step: step.Name, Index: i, Total: total})

		stepCtx := ctx
		cancel := context.CancelFunc(func() {})
		if step.Kind == Network && r.NetworkTimeout > 0 {
			stepCtx, cancel = context.WithTimeout(ctx, r.NetworkTimeout)
		}
		err := step.Run(stepCtx)
		// exec-based steps surface deadline expiry as "signal: killed",
		// not DeadlineExceeded, so remember the context's own verdict
		// before releasing it.
		timedOut := errors.Is(stepCtx.Err(), context.DeadlineExceeded)
		cancel()

		if err == nil {
			r.notify(Event{Type: EventSucceeded, Step: step.Name, Index: i, Total: total})
			continue
		}

		// Interrupt beats any other interpretation of the failure
		if ctx.Err() != nil {
			r.notify(Event{Type: EventFailed, Step: step.Name, Index: i, Total: total, Err: ErrInterrupted})
			return fmt.Errorf("%w during step %q", ErrInterrupted, step.Name)
		}

		if timedOut || errors.Is(err, context.DeadlineExceeded) {
			err = &TimeoutError{Step: step.Name, Limit: r.NetworkTimeout, Err: err}
		}

		if step.Severity == Cosmetic && !r.Strict {
			r.notify(Event{Type: EventWarned, Step: step.Name, Index: i, Total: total, Err: err})
			continue
		}

		r.notify(Event{Type: EventFailed, Step: step.Name, Index: i, Total: total, Err: err})
		return &StepError{Step: step.Name, Err: err}
	}

	return nil
}
