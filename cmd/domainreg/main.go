package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/JonMunkholm/domainreg/internal/config"
	"github.com/JonMunkholm/domainreg/internal/core"
	_ "github.com/JonMunkholm/domainreg/internal/datasets" // Register all datasets
	"github.com/JonMunkholm/domainreg/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the domainreg command.
func newRootCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "domainreg",
		Short: "Convert registries.csv and registrars.csv to JSON",
		Long: `domainreg converts the domain registry and registrar spreadsheets
into JSON documents next to them:

  registries.csv -> registries.json
  registrars.csv -> registrars.json

Each dataset is converted independently. A missing or unreadable input
is reported and the other dataset is still converted.

Settings are read from the environment (and an optional .env file):
DATA_DIR, REGISTRIES_INPUT, REGISTRIES_OUTPUT, REGISTRARS_INPUT,
REGISTRARS_OUTPUT, MAX_FILE_SIZE, STRICT_KEYS, LOG_LEVEL, LOG_FORMAT.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "data directory holding the CSV inputs (overrides DATA_DIR)")
	return cmd
}

func run(cmd *cobra.Command, dir string) error {
	// Load .env file if it exists; real environment variables win
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "failed to load configuration: %v\n", err)
		return err
	}
	if dir != "" {
		if cfg.Data.Dir, err = filepath.Abs(dir); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "invalid --dir: %v\n", err)
			return err
		}
	}

	logging.Setup(cmd.OutOrStdout(), cfg.Logging.Level, cfg.Logging.Format)
	if envErr == nil {
		slog.Debug("loaded .env file")
	}
	slog.Debug("configuration loaded", "config", cfg.String(), "datasets", core.DatasetCount())

	converter, err := core.NewConverter(cfg)
	if err != nil {
		slog.Error("failed to create converter", "error", err)
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results := converter.RunAll(ctx)

	failed := 0
	for _, r := range results {
		if !r.Succeeded() {
			failed++
		}
	}
	slog.Info("run complete",
		"data_dir", cfg.Data.Dir,
		"datasets", len(results),
		"failed", failed,
	)

	// Per-dataset failures are logged above; the process still exits 0
	return nil
}
