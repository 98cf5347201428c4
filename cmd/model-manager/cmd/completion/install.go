package completion

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tarinyoom/llm-stack/internal/cmd/completion"
)

// NewInstallCommand creates the completion install subcommand.
func NewInstallCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install shell completions",
		Long: `Install shell completions for model-manager.

By default, installs completions for all supported shells (bash, zsh, fish).
Use flags to install for specific shells only.

Examples:
  model-manager completion install           # Install for all shells
  model-manager completion install --bash    # Install for bash only
  model-manager completion install --zsh     # Install for zsh only
  model-manager completion install --fish    # Install for fish only`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bash := mustGetBool(cmd, "bash")
			zsh := mustGetBool(cmd, "zsh")
			fish := mustGetBool(cmd, "fish")

			// If no specific shell flags are set, install for all shells
			if !bash && !zsh && !fish {
				bash, zsh, fish = true, true, true
			}

			shells := map[string]bool{
				completion.ShellBash: bash,
				completion.ShellZsh:  zsh,
				completion.ShellFish: fish,
			}

			fmt.Printf("Installing shell completions...\n\n")

			var failures []string
			installed := 0

			for _, shell := range completion.Shells {
				if !shells[shell] {
					continue
				}
				fmt.Printf("🐚 Installing %s completions...\n", shell)
				if err := completion.Install(cmd.Root(), shell); err != nil {
					failures = append(failures, fmt.Sprintf("%s: %v", shell, err))
				} else {
					installed++
				}
				fmt.Println()
			}

			if len(failures) > 0 {
				fmt.Printf("❌ Some installations failed:\n")
				for _, failure := range failures {
					fmt.Printf("  - %s\n", failure)
				}
				if installed > 0 {
					fmt.Printf("\n✅ Successfully installed completions for %d shell(s)\n", installed)
				}
				return fmt.Errorf("failed to install some completions")
			}

			fmt.Printf("🎉 Successfully installed completions for %d shell(s)!\n", installed)
			fmt.Printf("💡 Start a new shell session or reload your shell config to enable completions.\n")
			return nil
		},
	}

	// Shell-specific flags
	cmd.Flags().Bool("bash", false, "Install bash completions only")
	cmd.Flags().Bool("zsh", false, "Install zsh completions only")
	cmd.Flags().Bool("fish", false, "Install fish completions only")

	return cmd
}
