package dockercli

import (
	"context"
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"github.com/zpdzap/driftwood/internal/config"
)

// Status is the coarse container state reported by the runtime.
type Status string

const (
	StatusRunning  Status = "running"
	StatusStopped  Status = "stopped"
	StatusCreating Status = "creating"
	StatusAbsent   Status = "absent"
	StatusError    Status = "error"
)

// runFunc executes a runtime CLI invocation and returns combined output.
// Swapped out in tests.
type runFunc func(ctx context.Context, bin string, args ...string) ([]byte, error)

func execRun(ctx context.Context, bin string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, bin, args...).CombinedOutput()
}

// Client drives a container runtime ("docker" or "podman") through its CLI.
type Client struct {
	bin string
	run runFunc
}

// New creates a Client for the given runtime binary.
// Use DetectRuntime() to find one first.
func New(bin string) *Client {
	return &Client{bin: bin, run: execRun}
}

// RunArgs builds the full `run` argument list for a spec. Environment
// variables are emitted in sorted order so launches are deterministic.
func RunArgs(spec config.ContainerSpec) ([]string, error) {
	args := []string{"run", "-d", "--name", spec.Name}

	if spec.Restart != "" && spec.Restart != config.RestartNo {
		args = append(args, "--restart", spec.Restart)
	}

	ports, err := spec.PortMappings()
	if err != nil {
		return nil, err
	}
	for _, p := range ports {
		args = append(args, "-p", p.String())
	}

	mounts, err := spec.VolumeMounts()
	if err != nil {
		return nil, err
	}
	for _, m := range mounts {
		args = append(args, "-v", m.String())
	}

	keys := make([]string, 0, len(spec.Env))
	for k := range spec.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "-e", fmt.Sprintf("%s=%s", k, spec.Env[k]))
	}

	args = append(args, spec.Image)
	args = append(args, spec.ExtraArgs...)
	return args, nil
}

// Launch starts a detached container from spec and returns its short ID.
func (c *Client) Launch(ctx context.Context, spec config.ContainerSpec) (string, error) {
	args, err := RunArgs(spec)
	if err != nil {
		return "", err
	}

	out, err := c.run(ctx, c.bin, args...)
	if err != nil {
		return "", fmt.Errorf("%s run failed: %s: %w", c.bin, strings.TrimSpace(string(out)), err)
	}

	id := strings.TrimSpace(string(out))
	if len(id) > 12 {
		id = id[:12]
	}
	return id, nil
}

// InspectStatus returns the runtime's view of a container, StatusAbsent if
// the container does not exist.
func (c *Client) InspectStatus(ctx context.Context, name string) Status {
	out, err := c.run(ctx, c.bin, "inspect", "-f", "{{.State.Status}}", name)
	if err != nil {
		return StatusAbsent
	}
	switch strings.TrimSpace(string(out)) {
	case "running":
		return StatusRunning
	case "exited", "dead":
		return StatusStopped
	case "created", "restarting":
		return StatusCreating
	default:
		return StatusError
	}
}

// Ports queries live port mappings for a container: container port → host
// port as reported by `docker port`.
func (c *Client) Ports(ctx context.Context, name string) map[string]string {
	ports := make(map[string]string)
	out, err := c.run(ctx, c.bin, "port", name)
	if err != nil {
		return ports
	}
	return parsePorts(string(out))
}

// parsePorts parses lines like "3000/tcp -> 0.0.0.0:49321".
func parsePorts(out string) map[string]string {
	ports := make(map[string]string)
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, " -> ", 2)
		if len(parts) != 2 {
			continue
		}
		containerPort := strings.SplitN(parts[0], "/", 2)[0]
		hostParts := strings.SplitN(parts[1], ":", 2)
		if len(hostParts) == 2 {
			ports[containerPort] = hostParts[1]
		}
	}
	return ports
}
