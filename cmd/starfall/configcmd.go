package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the shooter configuration after applying the config file,
--difficulty and --sound, as YAML. The output is a valid config file.

Examples:
  starfall config
  starfall config --difficulty hard > ~/.starfall/configs/shooter.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fatal("loading config: %v", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fatal("encoding config: %v", err)
	}
	os.Stdout.Write(data) //nolint:errcheck // Best-effort write to stdout
}
