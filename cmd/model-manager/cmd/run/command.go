// Package run implements the reconciliation daemon command.
package run

import (
	"github.com/spf13/cobra"

	"github.com/tarinyoom/llm-stack/cmd/application"
	"github.com/tarinyoom/llm-stack/pkg/reconcile"
)

// NewCommand creates the run command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run",
		GroupID: "core",
		Short:   "Reconcile required models against the server",
		Long: `Run starts the reconciliation daemon.

It waits for the model server's API to become reachable, then compares the
installed models with the required set and pulls whatever is missing. Every
pull is verified against a fresh listing before the next model is considered.

With LOOP_INTERVAL greater than zero the cycle repeats forever and cycle
errors are logged rather than fatal. Otherwise a single cycle runs and its
outcome decides the exit status.

Configuration comes from environment variables, optionally via a .env file:

  OLLAMA_BASE_URL   address of the model server
  REQUIRED_MODELS   models to keep present (comma or space separated)
  STARTUP_TIMEOUT   how long to wait for the API to come up
  REQUEST_TIMEOUT   per-request timeout
  LOOP_INTERVAL     pause between cycles; zero or negative runs one cycle`,
		Example: `  model-manager run              # reconcile per LOOP_INTERVAL
  model-manager run --once       # force a single cycle and exit
  LOOP_INTERVAL=0 model-manager run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDaemon(cmd, app, mustGetBool(cmd, "once"))
		},
	}

	cmd.Flags().Bool("once", false, "run a single reconciliation cycle and exit")

	return cmd
}

// runDaemon wires the configured client into a runner and drives it until it
// finishes or the command context is cancelled.
func runDaemon(cmd *cobra.Command, app application.Application, once bool) error {
	cfg, err := app.Config()
	if err != nil {
		return err
	}
	client, err := app.Client()
	if err != nil {
		return err
	}

	interval := cfg.LoopInterval
	if once {
		interval = 0
	}

	runner := reconcile.NewRunner(client, cfg.RequiredModels,
		reconcile.WithStartupTimeout(cfg.StartupTimeout),
		reconcile.WithInterval(interval),
		reconcile.WithRunnerProgress(reconcile.NewConsoleProgress(cmd.OutOrStdout(), cmd.ErrOrStderr())),
		reconcile.WithRunnerLogger(app.Logger()),
	)

	return runner.Run(cmd.Context())
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't
// exist. This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
