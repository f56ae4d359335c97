package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zpdzap/driftwood/internal/provision"
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Width(m.width).Render("driftwood — provisioning"))
	b.WriteString("\n\n")

	for _, step := range m.steps {
		b.WriteString(m.renderStep(step))
		b.WriteString("\n")
		if step.err != nil {
			style := errDetailStyle
			if step.state == stateWarned {
				style = warnDetailStyle
			}
			b.WriteString(style.Render(step.err.Error()))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.renderSummary())
	} else if m.aborted {
		b.WriteString(summaryFailStyle.Render("Interrupting..."))
	} else {
		b.WriteString(hotkeysStyle.Render("[ctrl+c] abort"))
	}
	b.WriteString("\n")

	return b.String()
}

func (m model) renderStep(step stepView) string {
	switch step.state {
	case stateRunning:
		return fmt.Sprintf("  %s %s", m.spin.View(), stepRunningStyle.Render(step.name))
	case stateOK:
		return fmt.Sprintf("  %s %s", stepOKStyle.Render("✓"), step.name)
	case stateWarned:
		return fmt.Sprintf("  %s %s", stepWarnStyle.Render("!"), step.name)
	case stateFailed:
		return fmt.Sprintf("  %s %s", stepFailStyle.Render("✗"), stepFailStyle.Render(step.name))
	case stateSkipped:
		return fmt.Sprintf("  %s %s", stepSkipStyle.Render("-"), stepSkipStyle.Render(step.name+" (skipped)"))
	default:
		return stepPendingStyle.Render(fmt.Sprintf("  ○ %s", step.name))
	}
}

func (m model) renderSummary() string {
	if m.runErr == nil {
		ok := 0
		for _, s := range m.steps {
			if s.state == stateOK {
				ok++
			}
		}
		return summaryStyle.Render(fmt.Sprintf("Provisioning complete: %d/%d steps succeeded", ok, len(m.steps)))
	}
	if errors.Is(m.runErr, provision.ErrInterrupted) {
		return summaryFailStyle.Render("Provisioning interrupted")
	}
	return summaryFailStyle.Render(fmt.Sprintf("Provisioning failed: %v", m.runErr))
}
