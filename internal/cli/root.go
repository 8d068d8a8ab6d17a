// Package cli wires the cobra command tree: query, inspect, and history.
package cli

import (
	"github.com/spf13/cobra"

	"neo-scout/internal/catalog"
	"neo-scout/internal/config"
	"neo-scout/internal/loader"
)

var (
	cfgFile string
	neoFile string
	cadFile string
)

var rootCmd = &cobra.Command{
	Use:   "neoscout",
	Short: "Explore near-Earth objects and their close approaches",
	Long: `neoscout loads the NASA NEO and close-approach datasets, links them
into an in-memory catalog, and answers lookups and filtered queries.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and returns the first command error.
func Execute(version string) error {
	rootCmd.Version = version
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&neoFile, "neofile", "", "path to the NEO dataset (CSV)")
	rootCmd.PersistentFlags().StringVar(&cadFile, "cadfile", "", "path to the close-approach dataset (JSON)")
	rootCmd.AddCommand(inspectCmd, queryCmd, historyCmd)
}

// loadConfig resolves the effective config: defaults, then the config file,
// then path flags.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
	}
	if neoFile != "" {
		cfg.NEOPath = neoFile
	}
	if cadFile != "" {
		cfg.CADPath = cadFile
	}
	return cfg, nil
}

// buildCatalog loads both datasets and links them.
func buildCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	neos, approaches, err := loader.Load(cfg.NEOPath, cfg.CADPath)
	if err != nil {
		return nil, err
	}
	return catalog.New(neos, approaches), nil
}
