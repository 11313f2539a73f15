package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/kanaspell/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize kanaspell configuration",
	Long: `Write a default config.yaml to your config directory.

The file sets:
  - locale        language used for descriptions
  - dictionaries  extra .jsonl or .db files, searched before the built-ins
  - labels        spoken attribute labels per locale
  - voice         speech settings for 'kanaspell speak'`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, config.FileName)

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if cfgFile == "" {
		if _, err := config.EnsureConfigDir(); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	} else if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit labels or add dictionaries in config.yaml")
	fmt.Fprintln(out, "  2. Run 'kanaspell spell <text>' to hear a reading")
	return nil
}
