package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// stepState is the display state of one pipeline step.
type stepState int

const (
	statePending stepState = iota
	stateRunning
	stateOK
	stateWarned
	stateFailed
	stateSkipped
)

type stepView struct {
	name  string
	state stepState
	err   error
}

// model is the Bubble Tea model for a provisioning run.
type model struct {
	steps   []stepView
	spin    spinner.Model
	cancel  context.CancelFunc
	done    bool
	runErr  error
	width   int
	aborted bool // user pressed ctrl+c
}

func newModel(stepNames []string, cancel context.CancelFunc) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700"))

	steps := make([]stepView, len(stepNames))
	for i, name := range stepNames {
		steps[i] = stepView{name: name, state: statePending}
	}

	return model{
		steps:  steps,
		spin:   sp,
		cancel: cancel,
		width:  80,
	}
}

func (m model) Init() tea.Cmd {
	return m.spin.Tick
}
