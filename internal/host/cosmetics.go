package host

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// gettyOverride clears the unit's ExecStart and replaces it with a root
// autologin on the virtual console.
const gettyOverride = `[Service]
ExecStart=
ExecStart=-/sbin/agetty --autologin root --noclear %I 38400 linux
`

// LoginCosmetics removes the message-of-the-day banners and suppresses the
// "last login" notice. Idempotent.
func (p *Prep) LoginCosmetics() error {
	for _, path := range []string{p.MotdPath, p.UnameMotdPath} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", path, err)
		}
	}
	if err := os.WriteFile(p.HushloginPath, nil, 0o644); err != nil {
		return fmt.Errorf("creating %s: %w", p.HushloginPath, err)
	}
	return nil
}

// ConsoleAutologin installs a getty drop-in that logs the superuser straight
// in on tty1, then reloads systemd and restarts the unit.
func (p *Prep) ConsoleAutologin(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(p.GettyDropIn), 0o755); err != nil {
		return fmt.Errorf("creating drop-in dir: %w", err)
	}
	if err := os.WriteFile(p.GettyDropIn, []byte(gettyOverride), 0o644); err != nil {
		return fmt.Errorf("writing drop-in: %w", err)
	}

	if out, err := p.run(ctx, "systemctl", "daemon-reload"); err != nil {
		return fmt.Errorf("daemon-reload failed: %s: %w", strings.TrimSpace(string(out)), err)
	}
	if out, err := p.run(ctx, "systemctl", "restart", "getty@tty1"); err != nil {
		return fmt.Errorf("restarting getty@tty1: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return nil
}
