// Package cmd provides the CLI commands for searchprov.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/searchprov/internal/config"
	"github.com/kailas-cloud/searchprov/internal/domain/mode"
	"github.com/kailas-cloud/searchprov/internal/version"
)

// globalOptions are the flags shared by every subcommand.
type globalOptions struct {
	configPath string
	envFile    string
	mode       string
	logLevel   string
}

// NewRootCmd creates the root command for the searchprov CLI.
func NewRootCmd() *cobra.Command {
	g := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "searchprov",
		Short: "Provision a search index and its data-source indexers",
		Long: `searchprov creates (or replaces) a product search index and wires
Cosmos DB and, in multi mode, Blob Storage indexers into it.

Settings are read from appsettings.json and can be overridden by
environment variables named after the keys.`,
		Version:      version.Version,
		SilenceUsage: true,
	}
	cmd.SetVersionTemplate("searchprov version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&g.configPath, "config", config.DefaultPath, "Settings file")
	cmd.PersistentFlags().StringVar(&g.envFile, "env-file", "", "Load environment variables from this file (default .env, if present)")
	cmd.PersistentFlags().StringVar(&g.mode, "mode", "", "Provisioning mode: single or multi (default from settings, then single)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	cmd.AddCommand(newProvisionCmd(g))
	cmd.AddCommand(newPlanCmd(g))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command with a context cancelled on SIGINT/SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// loadSettings loads the env file and settings, then resolves the mode:
// --mode flag, then the Mode key, then mode.Default.
func loadSettings(g *globalOptions) (config.Config, mode.Mode, error) {
	if err := config.LoadDotEnv(g.envFile, g.envFile != ""); err != nil {
		return config.Config{}, "", err
	}
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return config.Config{}, "", err
	}

	raw := g.mode
	if raw == "" {
		raw = cfg.Mode
	}
	m, err := mode.Parse(raw)
	if err != nil {
		return config.Config{}, "", err
	}
	return cfg, m, nil
}
