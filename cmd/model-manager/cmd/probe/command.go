// Package probe implements the inventory probe command.
package probe

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tarinyoom/llm-stack/cmd/application"
	"github.com/tarinyoom/llm-stack/internal/cmd/alerts"
	"github.com/tarinyoom/llm-stack/internal/cmd/output"
	"github.com/tarinyoom/llm-stack/internal/config"
)

// NewCommand creates the probe command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "probe",
		Aliases: []string{"check", "status"},
		GroupID: "core",
		Short:   "Check which required models are installed",
		Long: `Probe queries the model server once and reports whether each required
model is installed, without pulling anything.

The exit status is zero only when every required model is present, so probe
works as a health check in scripts and container probes.`,
		Example: `  model-manager probe              # table of required models
  model-manager probe -o json      # machine-readable report
  model-manager probe -o wide      # include digests`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProbe(cmd, app)
		},
	}
}

// runProbe fetches the inventory once and renders per-model presence.
func runProbe(cmd *cobra.Command, app application.Application) error {
	cfg, err := app.Config()
	if err != nil {
		return err
	}
	if len(cfg.RequiredModels) == 0 {
		return fmt.Errorf("no required models configured; set %s", config.EnvRequiredModels)
	}

	client, err := app.Client()
	if err != nil {
		return err
	}

	tags, err := client.Tags(cmd.Context())
	if err != nil {
		return err
	}

	presences := tags.Check(cfg.RequiredModels)
	if err := output.Inventory(cmd.OutOrStdout(), presences, app.OutputFormat()); err != nil {
		return err
	}

	var missing []string
	for _, presence := range presences {
		if !presence.Present {
			missing = append(missing, presence.Model)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing %d of %d required models: %s",
			len(missing), len(presences), strings.Join(missing, ", "))
	}

	// Summary line for humans; structured formats stay machine-clean.
	format := output.DetectFormat(app.OutputFormat())
	if format == output.FormatTable || format == output.FormatWide {
		writer := alerts.NewFormatWriter(cmd.ErrOrStderr(), format)
		if err := writer.WriteAlert(alerts.NewSuccess(fmt.Sprintf("all %d required models present", len(presences)))); err != nil {
			return err
		}
	}

	return nil
}
