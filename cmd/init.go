package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmurray2011/lrucache/pkg/lru"

	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize lrucache configuration",
	Long: `Create a default configuration file at ~/.lrucache.yaml.

Examples:
  # Create default config (won't overwrite existing)
  lrucache init

  # Force overwrite existing config
  lrucache init --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configPath := filepath.Join(home, ".lrucache.yaml")
	created, err := writeConfigFile(configPath, defaultConfig(), initForce)
	if err != nil {
		return err
	}

	if !created {
		render.Warning("%s already exists (use --force to overwrite)", configPath)
		return nil
	}
	render.Success("Created %s", configPath)
	return nil
}

func defaultConfig() string {
	return fmt.Sprintf(`# lrucache configuration

# Maximum number of keys held before the least recently used key is evicted.
# Must be a positive integer.
capacity: %d

# Default output format: text, json, csv
output: text

# Debug logging of every cache operation
# verbose: true
`, lru.DefaultCapacity)
}

// writeConfigFile writes content to path. An existing file is left alone
// unless force is set; created reports whether anything was written.
func writeConfigFile(path, content string, force bool) (created bool, err error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}
