package provision

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"testing"
	"time"
)

func TestRunStopsAtFirstFatalFailure(t *testing.T) {
	boom := errors.New("boom")
	var ran []string
	mk := func(name string, err error) Step {
		return Step{Name: name, Run: func(ctx context.Context) error {
			ran = append(ran, name)
			return err
		}}
	}

	r := &Runner{Steps: []Step{mk("one", nil), mk("two", boom), mk("three", nil)}}
	err := r.Run(context.Background())

	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("want *StepError, got %v", err)
	}
	if stepErr.Step != "two" {
		t.Errorf("failing step = %q, want two", stepErr.Step)
	}
	if !errors.Is(err, boom) {
		t.Error("StepError should wrap the underlying error")
	}
	if len(ran) != 2 {
		t.Errorf("steps after the failure must not run, ran %v", ran)
	}
}

func TestRunCosmeticFailureWarns(t *testing.T) {
	boom := errors.New("boom")
	var events []Event
	r := &Runner{
		Steps: []Step{
			{Name: "tweak", Severity: Cosmetic, Run: func(ctx context.Context) error { return boom }},
			{Name: "after", Run: func(ctx context.Context) error { return nil }},
		},
		Notify: func(ev Event) { events = append(events, ev) },
	}

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("cosmetic failure should not end the run: %v", err)
	}

	var warned bool
	for _, ev := range events {
		if ev.Type == EventWarned && ev.Step == "tweak" && errors.Is(ev.Err, boom) {
			warned = true
		}
	}
	if !warned {
		t.Errorf("expected a warned event, got %v", events)
	}
}

func TestRunStrictPromotesCosmetic(t *testing.T) {
	r := &Runner{
		Strict: true,
		Steps: []Step{
			{Name: "tweak", Severity: Cosmetic, Run: func(ctx context.Context) error { return errors.New("boom") }},
		},
	}
	if err := r.Run(context.Background()); err == nil {
		t.Fatal("strict mode should make cosmetic failures fatal")
	}
}

func TestRunSkip(t *testing.T) {
	var ran []string
	var skipped []string
	r := &Runner{
		Steps: []Step{
			{Name: "one", Run: func(ctx context.Context) error { ran = append(ran, "one"); return nil }},
			{Name: "two", Run: func(ctx context.Context) error { ran = append(ran, "two"); return nil }},
		},
		Skip: map[string]bool{"one": true},
		Notify: func(ev Event) {
			if ev.Type == EventSkipped {
				skipped = append(skipped, ev.Step)
			}
		},
	}

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(ran) != 1 || ran[0] != "two" {
		t.Errorf("ran = %v, want [two]", ran)
	}
	if len(skipped) != 1 || skipped[0] != "one" {
		t.Errorf("skipped = %v, want [one]", skipped)
	}
}

func TestRunInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	r := &Runner{
		Steps: []Step{
			{Name: "slow", Run: func(ctx context.Context) error {
				cancel()
				<-ctx.Done()
				return ctx.Err()
			}},
			{Name: "after", Run: func(ctx context.Context) error {
				t.Error("step after interrupt must not run")
				return nil
			}},
		},
	}

	err := r.Run(ctx)
	if !errors.Is(err, ErrInterrupted) {
		t.Errorf("want ErrInterrupted, got %v", err)
	}
}

func TestRunNetworkTimeout(t *testing.T) {
	r := &Runner{
		NetworkTimeout: 10 * time.Millisecond,
		Steps: []Step{
			{Name: "fetch", Kind: Network, Run: func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			}},
		},
	}

	err := r.Run(context.Background())
	var timeout *TimeoutError
	if !errors.As(err, &timeout) {
		t.Fatalf("want *TimeoutError, got %v", err)
	}
	if timeout.Step != "fetch" {
		t.Errorf("timeout step = %q", timeout.Step)
	}
	// A timeout is still a step failure
	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Errorf("timeout should be wrapped in a StepError, got %v", err)
	}
}

func TestRunExecStepTimeout(t *testing.T) {
	// A command killed by deadline expiry reports "signal: killed", not
	// DeadlineExceeded; the runner must still classify it as a timeout.
	r := &Runner{
		NetworkTimeout: 50 * time.Millisecond,
		Steps: []Step{
			{Name: "update os", Kind: Network, Run: func(ctx context.Context) error {
				out, err := exec.CommandContext(ctx, "sleep", "5").CombinedOutput()
				if err != nil {
					return fmt.Errorf("apt-get update failed: %s: %w", out, err)
				}
				return nil
			}},
		},
	}

	err := r.Run(context.Background())
	var timeout *TimeoutError
	if !errors.As(err, &timeout) {
		t.Fatalf("want *TimeoutError for a killed command, got %v", err)
	}
	if timeout.Step != "update os" {
		t.Errorf("timeout step = %q", timeout.Step)
	}
}

func TestRunLocalStepIgnoresNetworkTimeout(t *testing.T) {
	r := &Runner{
		NetworkTimeout: 10 * time.Millisecond,
		Steps: []Step{
			{Name: "local", Run: func(ctx context.Context) error {
				if _, ok := ctx.Deadline(); ok {
					t.Error("local steps must not get the network deadline")
				}
				return nil
			}},
		},
	}
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
}

func TestExitCode(t *testing.T) {
	if got := ExitCode(nil); got != 0 {
		t.Errorf("ExitCode(nil) = %d", got)
	}
	if got := ExitCode(errors.New("plain")); got != 1 {
		t.Errorf("ExitCode(plain) = %d", got)
	}
}

func TestExitCodeSurvivesWrapChain(t *testing.T) {
	// The host and dockercli packages wrap command failures with
	// fmt.Errorf("%w") before the runner adds its StepError; the original
	// exit code must survive the whole chain.
	r := &Runner{
		Steps: []Step{
			{Name: "upgrade", Run: func(ctx context.Context) error {
				out, err := exec.CommandContext(ctx, "sh", "-c", "exit 7").CombinedOutput()
				if err != nil {
					return fmt.Errorf("apt-get dist-upgrade failed: %s: %w", out, err)
				}
				return nil
			}},
		},
	}

	err := r.Run(context.Background())
	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("want *StepError, got %v", err)
	}
	if got := ExitCode(err); got != 7 {
		t.Errorf("ExitCode = %d, want 7", got)
	}
}

func TestEventSequence(t *testing.T) {
	var events []EventType
	r := &Runner{
		Steps: []Step{
			{Name: "one", Run: func(ctx context.Context) error { return nil }},
			{Name: "two", Run: func(ctx context.Context) error { return errors.New("boom") }},
		},
		Notify: func(ev Event) { events = append(events, ev.Type) },
	}
	r.Run(context.Background())

	want := []EventType{EventStarted, EventSucceeded, EventStarted, EventFailed}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, events[i], want[i])
		}
	}
}
