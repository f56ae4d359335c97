package tui

import "github.com/zpdzap/driftwood/internal/provision"

// stepEventMsg carries a runner event into the Bubble Tea loop.
type stepEventMsg struct {
	ev provision.Event
}

// runDoneMsg is sent when the runner finishes, successfully or not.
type runDoneMsg struct {
	err error
}
