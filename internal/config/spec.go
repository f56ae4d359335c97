package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Restart policies the container runtime accepts.
const (
	RestartAlways        = "always"
	RestartUnlessStopped = "unless-stopped"
	RestartNo            = "no"
)

// ContainerSpec describes one application container's launch parameters.
// Ports and volumes use the docker CLI string forms ("host:container[/udp]"
// and "host:container") so a stack file reads like a compose file.
type ContainerSpec struct {
	Name      string            `yaml:"name"`
	Image     string            `yaml:"image"`
	Restart   string            `yaml:"restart,omitempty"`
	Ports     []string          `yaml:"ports,omitempty"`
	Volumes   []string          `yaml:"volumes,omitempty"`
	Env       map[string]string `yaml:"env,omitempty"`
	ExtraArgs []string          `yaml:"extra_args,omitempty"`
}

// PortMapping is one published port.
type PortMapping struct {
	Host      int
	Container int
	Proto     string // "tcp" or "udp"
}

func (p PortMapping) String() string {
	s := fmt.Sprintf("%d:%d", p.Host, p.Container)
	if p.Proto != "tcp" {
		s += "/" + p.Proto
	}
	return s
}

// ParsePort parses "host:container" or "host:container/udp".
func ParsePort(s string) (PortMapping, error) {
	proto := "tcp"
	if i := strings.IndexByte(s, '/'); i >= 0 {
		proto = strings.ToLower(s[i+1:])
		s = s[:i]
	}
	if proto != "tcp" && proto != "udp" {
		return PortMapping{}, fmt.Errorf("port %q: unknown protocol %q", s, proto)
	}
	host, container, ok := strings.Cut(s, ":")
	if !ok {
		return PortMapping{}, fmt.Errorf("port %q: want host:container[/proto]", s)
	}
	h, err := strconv.Atoi(host)
	if err != nil {
		return PortMapping{}, fmt.Errorf("port %q: bad host port: %w", s, err)
	}
	c, err := strconv.Atoi(container)
	if err != nil {
		return PortMapping{}, fmt.Errorf("port %q: bad container port: %w", s, err)
	}
	if h < 1 || h > 65535 || c < 1 || c > 65535 {
		return PortMapping{}, fmt.Errorf("port %q: out of range", s)
	}
	return PortMapping{Host: h, Container: c, Proto: proto}, nil
}

// VolumeMount is one bind mount.
type VolumeMount struct {
	Host      string
	Container string
}

func (v VolumeMount) String() string {
	return v.Host + ":" + v.Container
}

// ParseVolume parses "host:container".
func ParseVolume(s string) (VolumeMount, error) {
	host, container, ok := strings.Cut(s, ":")
	if !ok || host == "" || container == "" {
		return VolumeMount{}, fmt.Errorf("volume %q: want host:container", s)
	}
	return VolumeMount{Host: host, Container: container}, nil
}

// PortMappings parses all declared ports.
func (s ContainerSpec) PortMappings() ([]PortMapping, error) {
	out := make([]PortMapping, 0, len(s.Ports))
	for _, p := range s.Ports {
		m, err := ParsePort(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// VolumeMounts parses all declared volumes.
func (s ContainerSpec) VolumeMounts() ([]VolumeMount, error) {
	out := make([]VolumeMount, 0, len(s.Volumes))
	for _, v := range s.Volumes {
		m, err := ParseVolume(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name, err)
		}
		out = append(out, m)
	}
	return out, nil
}
