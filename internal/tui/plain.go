package tui

import (
	"fmt"
	"io"

	"github.com/zpdzap/driftwood/internal/provision"
)

// Printer is the non-TTY fallback: one line per step transition, no
// styling, suitable for logs and CI output.
type Printer struct {
	Out io.Writer
}

// Notify implements the runner's callback.
func (p *Printer) Notify(ev provision.Event) {
	prefix := fmt.Sprintf("[%d/%d] %s", ev.Index+1, ev.Total, ev.Step)
	switch ev.Type {
	case provision.EventStarted:
		fmt.Fprintf(p.Out, "%s ...\n", prefix)
	case provision.EventSucceeded:
		fmt.Fprintf(p.Out, "%s ok\n", prefix)
	case provision.EventWarned:
		fmt.Fprintf(p.Out, "%s warning: %v\n", prefix, ev.Err)
	case provision.EventFailed:
		fmt.Fprintf(p.Out, "%s FAILED: %v\n", prefix, ev.Err)
	case provision.EventSkipped:
		fmt.Fprintf(p.Out, "%s skipped\n", prefix)
	}
}
