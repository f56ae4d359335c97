package dockercli

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Installer fetches and runs the vendor's engine install script.
type Installer struct {
	// URL is where the install script is fetched from.
	URL string
	// SHA256, when non-empty, pins the script's checksum. The source
	// system ran the script unverified; pinning is opt-in.
	SHA256 string
	// Client is the HTTP client used for the fetch. The caller sets the
	// deadline through ctx.
	Client *http.Client
}

// Install downloads the script and runs it with sh. The context bounds both
// the fetch and the script run.
func (ins *Installer) Install(ctx context.Context) error {
	script, err := ins.fetch(ctx)
	if err != nil {
		return err
	}

	if ins.SHA256 != "" {
		sum := sha256.Sum256(script)
		if got := hex.EncodeToString(sum[:]); got != ins.SHA256 {
			return fmt.Errorf("install script checksum mismatch: got %s, want %s", got, ins.SHA256)
		}
	}

	dir, err := os.MkdirTemp("", "driftwood-install")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "install.sh")
	if err := os.WriteFile(path, script, 0o700); err != nil {
		return fmt.Errorf("writing install script: %w", err)
	}

	cmd := exec.CommandContext(ctx, "sh", path)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("install script failed: %s: %w", lastLine(out), err)
	}
	return nil
}

func (ins *Installer) fetch(ctx context.Context) ([]byte, error) {
	client := ins.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ins.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building install request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching install script: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching install script: unexpected status %s", resp.Status)
	}
	script, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading install script: %w", err)
	}
	return script, nil
}

func lastLine(out []byte) string {
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	return lines[len(lines)-1]
}
