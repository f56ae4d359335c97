package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/zpdzap/driftwood/internal/provision"
)

func TestPrinterNotify(t *testing.T) {
	tests := []struct {
		ev   provision.Event
		want string
	}{
		{provision.Event{Type: provision.EventStarted, Step: "update os", Index: 1, Total: 14}, "[2/14] update os ...\n"},
		{provision.Event{Type: provision.EventSucceeded, Step: "update os", Index: 1, Total: 14}, "[2/14] update os ok\n"},
		{provision.Event{Type: provision.EventSkipped, Step: "cleanup", Index: 13, Total: 14}, "[14/14] cleanup skipped\n"},
	}

	for _, tt := range tests {
		var b strings.Builder
		p := &Printer{Out: &b}
		p.Notify(tt.ev)
		if b.String() != tt.want {
			t.Errorf("Notify(%v) = %q, want %q", tt.ev.Type, b.String(), tt.want)
		}
	}
}

func TestPrinterNotifyFailure(t *testing.T) {
	var b strings.Builder
	p := &Printer{Out: &b}
	p.Notify(provision.Event{
		Type:  provision.EventFailed,
		Step:  "launch sonarr",
		Index: 8,
		Total: 14,
		Err:   errors.New("image pull failed"),
	})

	out := b.String()
	if !strings.Contains(out, "FAILED") || !strings.Contains(out, "image pull failed") {
		t.Errorf("failure line = %q", out)
	}
}

func TestModelStepTransitions(t *testing.T) {
	m := newModel([]string{"one", "two"}, nil)

	next, _ := m.Update(stepEventMsg{ev: provision.Event{Type: provision.EventStarted, Index: 0, Total: 2}})
	m = next.(model)
	if m.steps[0].state != stateRunning {
		t.Errorf("step 0 state = %v, want running", m.steps[0].state)
	}

	next, _ = m.Update(stepEventMsg{ev: provision.Event{Type: provision.EventSucceeded, Index: 0, Total: 2}})
	m = next.(model)
	if m.steps[0].state != stateOK {
		t.Errorf("step 0 state = %v, want ok", m.steps[0].state)
	}

	boom := errors.New("boom")
	next, _ = m.Update(stepEventMsg{ev: provision.Event{Type: provision.EventFailed, Index: 1, Total: 2, Err: boom}})
	m = next.(model)
	if m.steps[1].state != stateFailed || m.steps[1].err != boom {
		t.Errorf("step 1 = %+v, want failed with err", m.steps[1])
	}

	next, _ = m.Update(runDoneMsg{err: boom})
	m = next.(model)
	if !m.done || m.runErr != boom {
		t.Error("runDoneMsg should mark the model done")
	}

	if !strings.Contains(m.View(), "Provisioning failed") {
		t.Errorf("final view should report failure:\n%s", m.View())
	}
}
