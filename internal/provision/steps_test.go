package provision

import (
	"strings"
	"testing"

	"github.com/zpdzap/driftwood/internal/config"
	"github.com/zpdzap/driftwood/internal/host"
)

func TestBuildOrdering(t *testing.T) {
	cfg := config.Default()
	steps := Build(cfg, host.NewPrep())

	var names []string
	for _, s := range steps {
		names = append(names, s.Name)
	}

	index := func(name string) int {
		for i, n := range names {
			if n == name {
				return i
			}
		}
		t.Fatalf("step %q missing from %v", name, names)
		return -1
	}

	// Mount-dependent launches come after directory creation; engine
	// install comes before any launch; cleanup is terminal.
	if index("install docker engine") > index("launch portainer") {
		t.Error("engine install must precede launches")
	}
	if index("create directories") > index("launch portainer") {
		t.Error("directory creation must precede launches")
	}
	if names[len(names)-1] != "cleanup" {
		t.Errorf("cleanup must be the terminal step, got %q", names[len(names)-1])
	}

	var launches int
	for _, n := range names {
		if strings.HasPrefix(n, "launch ") {
			launches++
		}
	}
	if launches != len(cfg.Containers) {
		t.Errorf("launch steps = %d, want %d", launches, len(cfg.Containers))
	}
}

func TestBuildSeverities(t *testing.T) {
	steps := Build(config.Default(), host.NewPrep())

	severity := make(map[string]Severity)
	kind := make(map[string]Kind)
	for _, s := range steps {
		severity[s.Name] = s.Severity
		kind[s.Name] = s.Kind
	}

	for _, cosmetic := range []string{"login cosmetics", "console autologin"} {
		if severity[cosmetic] != Cosmetic {
			t.Errorf("%q should be cosmetic", cosmetic)
		}
	}
	for _, fatal := range []string{"prepare os", "update os", "cleanup", "launch sonarr"} {
		if severity[fatal] != Fatal {
			t.Errorf("%q should be fatal", fatal)
		}
	}
	for _, network := range []string{"update os", "install docker engine", "launch jellyfin"} {
		if kind[network] != Network {
			t.Errorf("%q should be network-bound", network)
		}
	}
	if kind["create directories"] != Local {
		t.Error("directory creation is local")
	}
}
