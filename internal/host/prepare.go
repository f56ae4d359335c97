package host

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// EnableLocale uncomments the locale in locale.gen (appending it when the
// file never mentions it) and regenerates the locale database.
func (p *Prep) EnableLocale(ctx context.Context, locale string) error {
	data, err := os.ReadFile(p.LocaleGenPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading %s: %w", p.LocaleGenPath, err)
	}

	lines := strings.Split(string(data), "\n")
	found := false
	for i, line := range lines {
		uncommented := strings.TrimLeft(line, "# ")
		if uncommented == locale || strings.HasPrefix(uncommented, locale+" ") {
			lines[i] = uncommented
			found = true
		}
	}
	if !found {
		// Drop a trailing blank line so the entry doesn't land after it
		if n := len(lines); n > 0 && lines[n-1] == "" {
			lines = lines[:n-1]
		}
		lines = append(lines, locale+" UTF-8", "")
	}

	if err := os.WriteFile(p.LocaleGenPath, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", p.LocaleGenPath, err)
	}

	if out, err := p.run(ctx, "locale-gen"); err != nil {
		return fmt.Errorf("locale-gen failed: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return nil
}

// PurgeSSH removes the SSH client and server packages and anything left
// unused by their removal.
func (p *Prep) PurgeSSH(ctx context.Context) error {
	if out, err := p.run(ctx, "apt-get", "purge", "-y", "-qq", "openssh-client", "openssh-server"); err != nil {
		return fmt.Errorf("purging ssh packages: %s: %w", strings.TrimSpace(string(out)), err)
	}
	if out, err := p.run(ctx, "apt-get", "autoremove", "-y", "-qq"); err != nil {
		return fmt.Errorf("autoremove failed: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return nil
}

// Update refreshes the package index and upgrades everything installed,
// non-interactively and quietly. The caller bounds it with a deadline since
// it is network-bound.
func (p *Prep) Update(ctx context.Context) error {
	if out, err := p.run(ctx, "apt-get", "update", "-qq"); err != nil {
		return fmt.Errorf("apt-get update failed: %s: %w", strings.TrimSpace(string(out)), err)
	}
	if out, err := p.run(ctx, "apt-get", "dist-upgrade", "-y", "-qq"); err != nil {
		return fmt.Errorf("apt-get dist-upgrade failed: %s: %w", strings.TrimSpace(string(out)), err)
	}
	return nil
}

// EnsureDirs creates every directory in dirs. Already-existing directories
// are fine.
func EnsureDirs(dirs []string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}
