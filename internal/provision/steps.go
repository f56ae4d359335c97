package provision

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zpdzap/driftwood/internal/config"
	"github.com/zpdzap/driftwood/internal/dockercli"
	"github.com/zpdzap/driftwood/internal/host"
)

// Build assembles the full provisioning sequence for cfg. Ordering is the
// contract: directories exist before any container mounts them, and the
// engine is installed before any launch.
func Build(cfg *config.Config, prep *host.Prep) []Step {
	// The runtime binary is resolved lazily so launch steps pick up an
	// engine installed earlier in the same run.
	var client *dockercli.Client
	runtime := func() (*dockercli.Client, error) {
		if client == nil {
			bin, err := dockercli.DetectRuntime()
			if err != nil {
				return nil, err
			}
			client = dockercli.New(bin)
		}
		return client, nil
	}

	steps := []Step{
		{
			Name: "prepare os",
			Run: func(ctx context.Context) error {
				if err := prep.EnableLocale(ctx, cfg.Locale); err != nil {
					return err
				}
				return prep.PurgeSSH(ctx)
			},
		},
		{
			Name: "update os",
			Kind: Network,
			Run:  prep.Update,
		},
		{
			Name: "write docker daemon config",
			Run: func(ctx context.Context) error {
				return dockercli.WriteDaemonConfig(cfg.Docker.DaemonConfigPath, cfg.Docker.LogDriver)
			},
		},
		{
			Name: "install docker engine",
			Kind: Network,
			Run: func(ctx context.Context) error {
				if _, err := dockercli.DetectRuntime(); err == nil {
					return nil
				}
				ins := &dockercli.Installer{
					URL:    cfg.Docker.InstallURL,
					SHA256: cfg.Docker.InstallSHA256,
					Client: http.DefaultClient,
				}
				return ins.Install(ctx)
			},
		},
		{
			Name: "create directories",
			Run: func(ctx context.Context) error {
				return host.EnsureDirs(cfg.MountDirs())
			},
		},
	}

	for _, spec := range cfg.Containers {
		steps = append(steps, Step{
			Name: fmt.Sprintf("launch %s", spec.Name),
			Kind: Network, // image pull
			Run: func(ctx context.Context) error {
				c, err := runtime()
				if err != nil {
					return err
				}
				_, err = c.Launch(ctx, spec)
				return err
			},
		})
	}

	steps = append(steps,
		Step{
			Name:     "login cosmetics",
			Severity: Cosmetic,
			Run: func(ctx context.Context) error {
				return prep.LoginCosmetics()
			},
		},
		Step{
			Name:     "console autologin",
			Severity: Cosmetic,
			Run:      prep.ConsoleAutologin,
		},
		Step{
			Name: "cleanup",
			Run:  prep.Cleanup,
		},
	)

	return steps
}
