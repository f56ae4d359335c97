package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zpdzap/driftwood/internal/provision"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case stepEventMsg:
		ev := msg.ev
		if ev.Index < 0 || ev.Index >= len(m.steps) {
			return m, nil
		}
		switch ev.Type {
		case provision.EventStarted:
			m.steps[ev.Index].state = stateRunning
		case provision.EventSucceeded:
			m.steps[ev.Index].state = stateOK
		case provision.EventWarned:
			m.steps[ev.Index].state = stateWarned
			m.steps[ev.Index].err = ev.Err
		case provision.EventFailed:
			m.steps[ev.Index].state = stateFailed
			m.steps[ev.Index].err = ev.Err
		case provision.EventSkipped:
			m.steps[ev.Index].state = stateSkipped
		}
		return m, nil

	case runDoneMsg:
		m.done = true
		m.runErr = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			// Cancel the run; the runner reports the interrupt and
			// runDoneMsg quits the program.
			if !m.aborted {
				m.aborted = true
				if m.cancel != nil {
					m.cancel()
				}
			}
			return m, nil
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}
