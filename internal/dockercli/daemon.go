package dockercli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// daemonConfig is the subset of dockerd's daemon.json this provisioner
// manages.
type daemonConfig struct {
	LogDriver string `json:"log-driver"`
}

// WriteDaemonConfig writes the daemon configuration file, creating parent
// directories as needed. Must happen before the engine install so dockerd
// picks it up on first start.
func WriteDaemonConfig(path, logDriver string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating daemon config dir: %w", err)
	}
	data, err := json.Marshal(daemonConfig{LogDriver: logDriver})
	if err != nil {
		return fmt.Errorf("marshaling daemon config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing daemon config: %w", err)
	}
	return nil
}
