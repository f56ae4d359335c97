package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zpdzap/driftwood/internal/config"
	"github.com/zpdzap/driftwood/internal/dockercli"
	"github.com/zpdzap/driftwood/internal/host"
	"github.com/zpdzap/driftwood/internal/provision"
	"github.com/zpdzap/driftwood/internal/tui"
)

func main() {
	root := &cobra.Command{
		Use:   "dw",
		Short: "Driftwood — provision a container host end to end",
	}

	root.AddCommand(provisionCmd())
	root.AddCommand(planCmd())
	root.AddCommand(initCmd())
	root.AddCommand(statusCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func provisionCmd() *cobra.Command {
	var (
		configPath string
		plain      bool
		strict     bool
		keepSelf   bool
		skip       []string
	)

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Run the full provisioning sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid stack: %w", err)
			}

			prep := host.NewPrep()
			if !keepSelf {
				if self, err := os.Executable(); err == nil {
					prep.SelfPath = self
				}
			}

			skipSet := make(map[string]bool, len(skip))
			for _, name := range skip {
				skipSet[name] = true
			}

			runner := &provision.Runner{
				Steps:          provision.Build(cfg, prep),
				NetworkTimeout: time.Duration(cfg.Docker.NetworkTimeout),
				Strict:         strict,
				Skip:           skipSet,
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var runErr error
			if plain || !term.IsTerminal(int(os.Stdout.Fd())) {
				printer := &tui.Printer{Out: os.Stdout}
				runner.Notify = printer.Notify
				runErr = runner.Run(ctx)
			} else {
				runErr = tui.Run(ctx, runner)
			}

			if runErr != nil {
				if errors.Is(runErr, provision.ErrInterrupted) {
					fmt.Fprintln(os.Stderr, "Provisioning interrupted")
					os.Exit(130)
				}
				fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
				os.Exit(provision.ExitCode(runErr))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "stack file")
	cmd.Flags().BoolVar(&plain, "plain", false, "line-per-step output instead of the dashboard")
	cmd.Flags().BoolVar(&strict, "strict", false, "treat cosmetic failures as fatal")
	cmd.Flags().BoolVar(&keepSelf, "keep-self", false, "don't delete the dw binary during cleanup")
	cmd.Flags().StringSliceVar(&skip, "skip", nil, "step names to skip")
	return cmd
}

func planCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Validate the stack and print the steps without running them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid stack: %w", err)
			}

			steps := provision.Build(cfg, host.NewPrep())
			fmt.Printf("Stack: %d containers, %d steps\n\n", len(cfg.Containers), len(steps))
			for i, s := range steps {
				var tags []string
				if s.Kind == provision.Network {
					tags = append(tags, "network")
				}
				if s.Severity == provision.Cosmetic {
					tags = append(tags, "cosmetic")
				}
				suffix := ""
				if len(tags) > 0 {
					suffix = "  (" + strings.Join(tags, ", ") + ")"
				}
				fmt.Printf("  %2d. %s%s\n", i+1, s.Name, suffix)
			}

			fmt.Println("\nContainers:")
			for _, spec := range cfg.Containers {
				line := fmt.Sprintf("  %-12s %s", spec.Name, spec.Image)
				if len(spec.Ports) > 0 {
					line += "  [" + strings.Join(spec.Ports, " ") + "]"
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "stack file")
	return cmd
}

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the built-in default stack to a file for editing",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath
			if len(args) == 1 {
				path = args[0]
			}

			if config.Exists(path) && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			fmt.Printf("Wrote default stack to %s\n", path)
			fmt.Println("Edit it, then run `dw provision`.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing stack file")
	return cmd
}

func statusCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show runtime state and ports for every container in the stack",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}

			bin, err := dockercli.DetectRuntime()
			if err != nil {
				return err
			}
			client := dockercli.New(bin)

			ctx := context.Background()
			for _, spec := range cfg.Containers {
				status := client.InspectStatus(ctx, spec.Name)
				line := fmt.Sprintf("  %-12s %s", spec.Name, status)
				if status == dockercli.StatusRunning {
					ports := client.Ports(ctx, spec.Name)
					keys := make([]string, 0, len(ports))
					for c := range ports {
						keys = append(keys, c)
					}
					sort.Strings(keys)
					var mapped []string
					for _, c := range keys {
						if h := ports[c]; h == c {
							mapped = append(mapped, ":"+c)
						} else {
							mapped = append(mapped, ":"+c+"→:"+h)
						}
					}
					if len(mapped) > 0 {
						line += "  " + strings.Join(mapped, "  ")
					}
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "stack file")
	return cmd
}
