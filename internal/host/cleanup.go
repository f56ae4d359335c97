package host

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Cleanup shrinks the final image: drops the apt cache and package lists,
// empties the log directory, and removes the provisioner itself. Must be
// the terminal step.
func (p *Prep) Cleanup(ctx context.Context) error {
	if out, err := p.run(ctx, "apt-get", "clean"); err != nil {
		return fmt.Errorf("apt-get clean failed: %s: %w", strings.TrimSpace(string(out)), err)
	}

	if err := removeContents(p.AptListsDir); err != nil {
		return fmt.Errorf("clearing apt lists: %w", err)
	}
	if err := removeContents(p.LogDir); err != nil {
		return fmt.Errorf("clearing logs: %w", err)
	}

	if p.SelfPath != "" {
		if err := os.Remove(p.SelfPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", p.SelfPath, err)
		}
	}
	return nil
}

// removeContents empties dir without removing dir itself. A missing dir is
// a no-op.
func removeContents(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
