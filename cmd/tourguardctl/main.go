package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"tourguard/config"
	"tourguard/internal/domain/lifecycle"
	logs "tourguard/internal/infra/log"
	"tourguard/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var (
	outputJSON bool
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "tourguardctl",
	Short:         "Administer a tourguard deployment",
	Long:          `Operator commands for the tourguard database, tokens, geofences and alerts. Configuration is read the same way as the server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Print results as JSON")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Overall command timeout")

	rootCmd.AddCommand(migrateCmd, tokenCmd, geofenceCmd, alertCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// commandContext bounds a command by --timeout.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}

// startApp builds an fx graph with config, logging and the database, populates
// targets and starts it. The returned func stops the graph.
func startApp(ctx context.Context, opts fx.Option, targets ...any) (func(), error) {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			stderrLogger,
			context.Background,
			postgres.New,
		),
		opts,
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to build dependencies")
	}
	if err := app.Start(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to start dependencies")
	}

	return func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()
		_ = app.Stop(stopCtx)
	}, nil
}

// stderrLogger keeps log records out of the command output.
func stderrLogger(cfg *config.Config) (*slog.Logger, error) {
	return logs.New(logs.Params{Config: cfg, Output: os.Stderr})
}

// printResult writes v as indented JSON when --json is set, otherwise via text.
func printResult(w io.Writer, v any, text func(io.Writer)) error {
	if !outputJSON {
		text(w)

		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(v))
}
