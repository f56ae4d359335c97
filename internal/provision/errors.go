package provision

import (
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// ErrInterrupted is returned when a signal cancels the run mid-step.
var ErrInterrupted = errors.New("interrupted")

// StepError reports which step ended the run and why.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// TimeoutError marks a network-bound step that exceeded its deadline,
// distinct from a command that failed on its own.
type TimeoutError struct {
	Step  string
	Limit time.Duration
	Err   error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("step %q timed out after %s", e.Step, e.Limit)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// ExitCode extracts the exit code the process should terminate with: the
// underlying command's code when one exists, 1 for any other failure, 0 for
// nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
