package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"neo-scout/internal/models"
)

var (
	inspectPdes    string
	inspectName    string
	inspectVerbose bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Look up a single NEO by designation or name",
	RunE: func(cmd *cobra.Command, args []string) error {
		if inspectPdes == "" && inspectName == "" {
			return fmt.Errorf("inspect: provide --pdes or --name")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cat, err := buildCatalog(cfg)
		if err != nil {
			return err
		}

		var neo *models.NearEarthObject
		if inspectPdes != "" {
			neo = cat.NEOByDesignation(inspectPdes)
		} else {
			neo = cat.NEOByName(inspectName)
		}
		if neo == nil {
			return fmt.Errorf("inspect: no matching NEO found")
		}

		printNEO(neo, inspectVerbose)
		return nil
	},
}

func printNEO(neo *models.NearEarthObject, verbose bool) {
	fmt.Printf("NEO %s\n", neo.FullName())
	if neo.HasDiameter() {
		fmt.Printf("  diameter:  %.3f km\n", neo.Diameter)
	} else {
		fmt.Printf("  diameter:  unknown\n")
	}
	fmt.Printf("  hazardous: %t\n", neo.Hazardous)
	fmt.Printf("  approaches: %d\n", len(neo.Approaches))
	if verbose {
		for _, ca := range neo.Approaches {
			fmt.Printf("  - %s\n", ca.Summary())
		}
	}
}

func init() {
	inspectCmd.Flags().StringVar(&inspectPdes, "pdes", "", "primary designation to look up")
	inspectCmd.Flags().StringVar(&inspectName, "name", "", "IAU name to look up")
	inspectCmd.Flags().BoolVarP(&inspectVerbose, "verbose", "v", false, "also list the object's close approaches")
}
