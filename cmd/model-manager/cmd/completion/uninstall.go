package completion

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tarinyoom/llm-stack/internal/cmd/completion"
	"github.com/tarinyoom/llm-stack/internal/cmd/emoji"
)

// NewUninstallCommand creates the completion uninstall subcommand.
func NewUninstallCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove shell completions",
		Long: `Remove shell completions for model-manager.

By default, removes completions for all supported shells (bash, zsh, fish).
Use flags to remove from specific shells only.

Examples:
  model-manager completion uninstall           # Remove from all shells
  model-manager completion uninstall --bash    # Remove from bash only
  model-manager completion uninstall --zsh     # Remove from zsh only
  model-manager completion uninstall --fish    # Remove from fish only`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bash := mustGetBool(cmd, "bash")
			zsh := mustGetBool(cmd, "zsh")
			fish := mustGetBool(cmd, "fish")

			// If no specific shell flags are set, uninstall from all shells
			if !bash && !zsh && !fish {
				bash, zsh, fish = true, true, true
			}

			shells := map[string]bool{
				completion.ShellBash: bash,
				completion.ShellZsh:  zsh,
				completion.ShellFish: fish,
			}

			fmt.Printf("Uninstalling shell completions...\n\n")

			var failures []string
			removed := 0

			for _, shell := range completion.Shells {
				if !shells[shell] {
					continue
				}
				fmt.Printf("🗑️  Removing %s completions...\n", shell)
				if err := completion.Uninstall(shell); err != nil {
					failures = append(failures, fmt.Sprintf("%s: %v", shell, err))
				} else {
					removed++
				}
				fmt.Println()
			}

			if len(failures) > 0 {
				fmt.Printf("%s Some removals failed:\n", emoji.Error)
				for _, failure := range failures {
					fmt.Printf("  - %s\n", failure)
				}
				if removed > 0 {
					fmt.Printf("\n%s Successfully removed completions from %d shell(s)\n", emoji.Success, removed)
				}
				return fmt.Errorf("failed to remove some completions")
			}

			fmt.Printf("🎉 Successfully removed completions from %d shell(s)!\n", removed)
			fmt.Printf("💡 Start a new shell session to ensure completions are fully removed.\n")
			return nil
		},
	}

	// Shell-specific flags
	cmd.Flags().Bool("bash", false, "Remove bash completions only")
	cmd.Flags().Bool("zsh", false, "Remove zsh completions only")
	cmd.Flags().Bool("fish", false, "Remove fish completions only")

	return cmd
}
