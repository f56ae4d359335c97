// Package host runs the OS-level provisioning steps: locale, package
// updates, directory layout, login cosmetics, and final cleanup. Paths are
// fields so tests can point everything at a temp dir.
package host

import (
	"context"
	"os"
	"os/exec"
)

type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRun(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), "DEBIAN_FRONTEND=noninteractive")
	return cmd.CombinedOutput()
}

// Prep executes host preparation against a live system by default.
type Prep struct {
	LocaleGenPath string
	MotdPath      string
	UnameMotdPath string
	HushloginPath string
	GettyDropIn   string
	AptListsDir   string
	LogDir        string
	SelfPath      string // provisioner binary removed during cleanup; empty keeps it

	run runFunc
}

// NewPrep returns a Prep wired to the real system paths.
func NewPrep() *Prep {
	home, _ := os.UserHomeDir()
	if home == "" {
		home = "/root"
	}
	return &Prep{
		LocaleGenPath: "/etc/locale.gen",
		MotdPath:      "/etc/motd",
		UnameMotdPath: "/etc/update-motd.d/10-uname",
		HushloginPath: home + "/.hushlogin",
		GettyDropIn:   "/etc/systemd/system/getty@tty1.service.d/override.conf",
		AptListsDir:   "/var/lib/apt/lists",
		LogDir:        "/var/log",
		run:           execRun,
	}
}
