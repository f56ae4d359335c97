package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zpdzap/driftwood/internal/provision"
)

// Run drives a provisioning run through the Bubble Tea dashboard. It wires
// the runner's event stream into the program, executes the runner in the
// background, and returns the runner's error once both finish.
func Run(ctx context.Context, r *provision.Runner) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	names := make([]string, len(r.Steps))
	for i, s := range r.Steps {
		names[i] = s.Name
	}

	p := tea.NewProgram(newModel(names, cancel))
	r.Notify = func(ev provision.Event) {
		p.Send(stepEventMsg{ev: ev})
	}

	done := make(chan error, 1)
	go func() {
		err := r.Run(ctx)
		done <- err
		p.Send(runDoneMsg{err: err})
	}()

	if _, err := p.Run(); err != nil {
		cancel()
		<-done
		return fmt.Errorf("TUI error: %w", err)
	}
	return <-done
}
