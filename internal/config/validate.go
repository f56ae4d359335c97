package config

import (
	"fmt"
	"regexp"
	"strings"
)

var validName = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]*$`)

// Validate checks the whole stack before anything is launched: container
// names must be unique and well-formed, restart policies known, ports
// parseable with no host-port collisions across specs, and every bind-mount
// host path absolute.
func (c *Config) Validate() error {
	if len(c.Containers) == 0 {
		return fmt.Errorf("stack declares no containers")
	}

	names := make(map[string]bool)
	claimed := make(map[string]string) // "port/proto" -> container name

	for _, spec := range c.Containers {
		if !validName.MatchString(spec.Name) {
			return fmt.Errorf("container name %q is invalid", spec.Name)
		}
		if names[spec.Name] {
			return fmt.Errorf("duplicate container name %q", spec.Name)
		}
		names[spec.Name] = true

		if spec.Image == "" {
			return fmt.Errorf("%s: no image", spec.Name)
		}

		switch spec.Restart {
		case "", RestartNo, RestartAlways, RestartUnlessStopped:
		default:
			return fmt.Errorf("%s: unknown restart policy %q", spec.Name, spec.Restart)
		}

		ports, err := spec.PortMappings()
		if err != nil {
			return err
		}
		for _, p := range ports {
			key := fmt.Sprintf("%d/%s", p.Host, p.Proto)
			if owner, taken := claimed[key]; taken {
				return fmt.Errorf("%s: host port %s already published by %s", spec.Name, key, owner)
			}
			claimed[key] = spec.Name
		}

		mounts, err := spec.VolumeMounts()
		if err != nil {
			return err
		}
		for _, m := range mounts {
			if !strings.HasPrefix(m.Host, "/") {
				return fmt.Errorf("%s: mount %q: host path must be absolute", spec.Name, m.String())
			}
		}
	}

	return nil
}
