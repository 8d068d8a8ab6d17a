package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"neo-scout/internal/db"
)

var (
	historyLimit int
	historyID    int64
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved query runs, or replay one run's stored results",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := db.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if historyID > 0 {
			results, err := store.Results(historyID)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				return fmt.Errorf("history: no results stored for run #%d", historyID)
			}
			for _, r := range results {
				name := r.Designation
				if r.Name != "" {
					name = fmt.Sprintf("%s (%s)", r.Designation, r.Name)
				}
				fmt.Printf("%s  %-24s %.4f au  %.2f km/s\n", r.Time, name, r.DistanceAU, r.VelocityKMS)
			}
			return nil
		}

		runs, err := store.Recent(historyLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("no saved query runs")
			return nil
		}
		for _, r := range runs {
			fmt.Printf("#%-4d %s  %-40s %d results\n", r.ID, r.Timestamp, r.Criteria, r.Count)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "number of recent runs to list")
	historyCmd.Flags().Int64Var(&historyID, "id", 0, "replay the stored results of this run")
}
