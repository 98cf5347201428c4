// Package completion provides shared utilities for completion management.
package completion

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tarinyoom/llm-stack/internal/cmd/emoji"
	"github.com/tarinyoom/llm-stack/pkg/constants"
)

// Shell type constants for completion commands.
const (
	// ShellBash represents the Bash shell.
	ShellBash = "bash"

	// ShellZsh represents the Zsh shell.
	ShellZsh = "zsh"

	// ShellFish represents the Fish shell.
	ShellFish = "fish"

	// ShellPowerShell represents PowerShell.
	ShellPowerShell = "powershell"
)

// Shells lists the shells with install support.
var Shells = []string{ShellBash, ShellZsh, ShellFish}

// Install installs completion files to appropriate system locations.
func Install(cmd *cobra.Command, shell string) error {
	fmt.Printf("Installing %s completions for model-manager...\n", shell)

	targetPath, err := pathFor(shell)
	if err != nil {
		return fmt.Errorf("failed to determine %s completion path: %w", shell, err)
	}

	var generate func(*os.File) error
	switch shell {
	case ShellBash:
		generate = func(f *os.File) error { return cmd.GenBashCompletion(f) }
	case ShellZsh:
		generate = func(f *os.File) error { return cmd.GenZshCompletion(f) }
	case ShellFish:
		generate = func(f *os.File) error { return cmd.GenFishCompletion(f, true) }
	default:
		return fmt.Errorf("unsupported shell: %s", shell)
	}

	if err := writeCompletion(targetPath, generate); err != nil {
		return err
	}

	fmt.Printf(emoji.Success+" %s completions installed to: %s\n", shell, targetPath)
	fmt.Printf("💡 Start a new shell session or reload your shell config to enable completions.\n")

	return nil
}

// writeCompletion creates the completion file and runs the generator into it.
func writeCompletion(targetPath string, generate func(*os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(targetPath), constants.DirPermissions); err != nil {
		return fmt.Errorf("failed to create completion directory: %w", err)
	}

	file, err := os.Create(targetPath) // #nosec G304 - paths come from pathFor which generates controlled locations
	if err != nil {
		return fmt.Errorf("failed to create completion file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file: %v\n", closeErr)
		}
	}()

	if err := generate(file); err != nil {
		return fmt.Errorf("failed to generate completion: %w", err)
	}
	return nil
}

// Uninstall removes completion files from the same locations where Install puts them.
func Uninstall(shell string) error {
	fmt.Printf("Uninstalling %s completions for model-manager...\n", shell)

	targetPath, err := pathFor(shell)
	if err != nil {
		return fmt.Errorf("failed to determine completion path: %w", err)
	}

	// Check if file exists and remove it
	if info, err := os.Stat(targetPath); err == nil && !info.IsDir() {
		if err := os.Remove(targetPath); err != nil {
			// If we can't remove it (permission issue), provide manual instructions
			fmt.Printf(emoji.Error+" Could not remove: %s\n", targetPath)
			fmt.Printf("💡 Try manually: sudo rm -f %s\n", targetPath)
			return nil
		}
		fmt.Printf(emoji.Success+" Removed %s completions from: %s\n", shell, targetPath)
	} else {
		fmt.Printf(emoji.Info+" No %s completions found at: %s\n", shell, targetPath)

		// Also check other common locations as fallback
		if !checkAndRemoveFromCommonPaths(shell) {
			fmt.Printf(emoji.Info + " No completion files found in common locations.\n")
		}
	}

	fmt.Printf("💡 Start a new shell session to ensure completions are fully removed.\n")
	return nil
}

// UninstallAll removes completion files for all supported shells.
func UninstallAll() error {
	fmt.Printf("Uninstalling completions for all shells...\n\n")

	var failures []string
	for _, shell := range Shells {
		if err := Uninstall(shell); err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", shell, err))
		}
		fmt.Println()
	}

	if len(failures) > 0 {
		fmt.Printf(emoji.Error + " Some errors occurred:\n")
		for _, failure := range failures {
			fmt.Printf("  - %s\n", failure)
		}
		return fmt.Errorf("failed to uninstall some completions")
	}

	return nil
}

// pathFor returns the install path for a shell's completion file.
func pathFor(shell string) (string, error) {
	switch shell {
	case ShellBash:
		return bashPath()
	case ShellZsh:
		return zshPath()
	case ShellFish:
		return fishPath()
	default:
		return "", fmt.Errorf("unsupported shell: %s", shell)
	}
}

// bashPath returns the appropriate bash completion path.
func bashPath() (string, error) {
	if prefix, ok := homebrewPrefix(); ok {
		return filepath.Join(prefix, "etc", "bash_completion.d", "model-manager"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".bash_completion.d", "model-manager"), nil
}

// zshPath returns the appropriate zsh completion path.
func zshPath() (string, error) {
	if prefix, ok := homebrewPrefix(); ok {
		return filepath.Join(prefix, "share", "zsh", "site-functions", "_model-manager"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".zsh", "completions", "_model-manager"), nil
}

// fishPath returns the appropriate fish completion path.
func fishPath() (string, error) {
	if prefix, ok := homebrewPrefix(); ok {
		return filepath.Join(prefix, "share", "fish", "vendor_completions.d", "model-manager.fish"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "fish", "completions", "model-manager.fish"), nil
}

// homebrewPrefix detects a Homebrew installation, which hosts completion
// directories on macOS.
func homebrewPrefix() (string, bool) {
	if brewPrefix := os.Getenv("HOMEBREW_PREFIX"); brewPrefix != "" {
		return brewPrefix, true
	}

	for _, prefix := range []string{"/opt/homebrew", "/usr/local"} {
		if _, err := os.Stat(filepath.Join(prefix, "bin", "brew")); err == nil {
			return prefix, true
		}
	}

	return "", false
}

// checkAndRemoveFromCommonPaths checks and removes completion files from common fallback locations.
func checkAndRemoveFromCommonPaths(shell string) bool {
	homeDir, _ := os.UserHomeDir()

	var commonPaths []string
	switch shell {
	case ShellBash:
		commonPaths = []string{
			"/etc/bash_completion.d/model-manager",
			"/usr/local/etc/bash_completion.d/model-manager",
			"/opt/homebrew/etc/bash_completion.d/model-manager",
			"/usr/share/bash-completion/completions/model-manager",
			filepath.Join(homeDir, ".bash_completion.d", "model-manager"),
		}
	case ShellZsh:
		commonPaths = []string{
			"/usr/local/share/zsh/site-functions/_model-manager",
			"/opt/homebrew/share/zsh/site-functions/_model-manager",
			filepath.Join(homeDir, ".zsh", "completions", "_model-manager"),
		}
	case ShellFish:
		commonPaths = []string{
			filepath.Join(homeDir, ".config", "fish", "completions", "model-manager.fish"),
			"/usr/share/fish/completions/model-manager.fish",
			"/usr/local/share/fish/completions/model-manager.fish",
			"/opt/homebrew/share/fish/vendor_completions.d/model-manager.fish",
		}
	}

	removed := false
	for _, path := range commonPaths {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			if err := os.Remove(path); err == nil {
				fmt.Printf(emoji.Success+" Removed: %s\n", path)
				removed = true
			} else {
				fmt.Printf(emoji.Error+" Could not remove: %s (try: sudo rm %s)\n", path, path)
			}
		}
	}

	return removed
}
