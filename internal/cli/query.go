package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"neo-scout/internal/db"
	"neo-scout/internal/filters"
	"neo-scout/internal/logger"
	"neo-scout/internal/models"
	"neo-scout/internal/writer"
)

var (
	queryDate      string
	queryStartDate string
	queryEndDate   string

	queryMinDistance float64
	queryMaxDistance float64
	queryMinVelocity float64
	queryMaxVelocity float64
	queryMinDiameter float64
	queryMaxDiameter float64

	queryHazardous    bool
	queryNotHazardous bool

	queryLimit   int
	queryOutfile string
	querySave    bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query close approaches matching the given criteria",
	RunE: func(cmd *cobra.Command, args []string) error {
		crit, err := criteriaFromFlags(cmd)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cat, err := buildCatalog(cfg)
		if err != nil {
			return err
		}

		limit := cfg.Limit
		if cmd.Flags().Changed("limit") {
			limit = queryLimit
		}

		var results []*models.CloseApproach
		for ca := range cat.Query(crit.Build()...) {
			results = append(results, ca)
			if limit > 0 && len(results) >= limit {
				break
			}
		}

		if queryOutfile != "" {
			if err := writer.Write(queryOutfile, results); err != nil {
				return err
			}
			logger.Success("QUERY", fmt.Sprintf("Wrote %d approaches to %s", len(results), queryOutfile))
		} else {
			for _, ca := range results {
				fmt.Println(ca.Summary())
			}
			logger.Info("QUERY", fmt.Sprintf("%d matching approaches (%s)", len(results), crit))
		}

		if querySave {
			store, err := db.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()
			id, err := store.SaveQuery(crit.String(), results)
			if err != nil {
				return err
			}
			logger.Success("DB", fmt.Sprintf("Saved query run #%d", id))
		}
		return nil
	},
}

// criteriaFromFlags assembles filter criteria from the flags the user
// actually set, so zero values stay distinguishable from "not given".
func criteriaFromFlags(cmd *cobra.Command) (filters.Criteria, error) {
	var crit filters.Criteria

	dates := []struct {
		flag string
		raw  string
		dst  **time.Time
	}{
		{"date", queryDate, &crit.Date},
		{"start-date", queryStartDate, &crit.StartDate},
		{"end-date", queryEndDate, &crit.EndDate},
	}
	for _, d := range dates {
		if !cmd.Flags().Changed(d.flag) {
			continue
		}
		t, err := parseDate(d.raw)
		if err != nil {
			return filters.Criteria{}, fmt.Errorf("--%s: %w", d.flag, err)
		}
		*d.dst = &t
	}

	bounds := []struct {
		flag string
		val  float64
		dst  **float64
	}{
		{"min-distance", queryMinDistance, &crit.MinDistance},
		{"max-distance", queryMaxDistance, &crit.MaxDistance},
		{"min-velocity", queryMinVelocity, &crit.MinVelocity},
		{"max-velocity", queryMaxVelocity, &crit.MaxVelocity},
		{"min-diameter", queryMinDiameter, &crit.MinDiameter},
		{"max-diameter", queryMaxDiameter, &crit.MaxDiameter},
	}
	for _, b := range bounds {
		if !cmd.Flags().Changed(b.flag) {
			continue
		}
		v := b.val
		*b.dst = &v
	}

	hazard, err := hazardCriterion(queryHazardous, queryNotHazardous)
	if err != nil {
		return filters.Criteria{}, err
	}
	crit.Hazardous = hazard

	return crit, nil
}

// hazardCriterion maps the two mutually exclusive hazard flags onto the
// optional criteria field.
func hazardCriterion(hazardous, notHazardous bool) (*bool, error) {
	if hazardous && notHazardous {
		return nil, fmt.Errorf("--hazardous and --not-hazardous are mutually exclusive")
	}
	if hazardous {
		v := true
		return &v, nil
	}
	if notHazardous {
		v := false
		return &v, nil
	}
	return nil, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

func init() {
	f := queryCmd.Flags()
	f.StringVar(&queryDate, "date", "", "approaches on this day (YYYY-MM-DD)")
	f.StringVar(&queryStartDate, "start-date", "", "approaches on or after this day (YYYY-MM-DD)")
	f.StringVar(&queryEndDate, "end-date", "", "approaches on or before this day (YYYY-MM-DD)")
	f.Float64Var(&queryMinDistance, "min-distance", 0, "minimum approach distance in au")
	f.Float64Var(&queryMaxDistance, "max-distance", 0, "maximum approach distance in au")
	f.Float64Var(&queryMinVelocity, "min-velocity", 0, "minimum relative velocity in km/s")
	f.Float64Var(&queryMaxVelocity, "max-velocity", 0, "maximum relative velocity in km/s")
	f.Float64Var(&queryMinDiameter, "min-diameter", 0, "minimum object diameter in km")
	f.Float64Var(&queryMaxDiameter, "max-diameter", 0, "maximum object diameter in km")
	f.BoolVar(&queryHazardous, "hazardous", false, "only potentially hazardous objects")
	f.BoolVar(&queryNotHazardous, "not-hazardous", false, "only non-hazardous objects")
	f.IntVar(&queryLimit, "limit", 0, "maximum results (0 = config default)")
	f.StringVarP(&queryOutfile, "outfile", "o", "", "write results to a .csv or .json file")
	f.BoolVar(&querySave, "save", false, "record this query run in the history database")
}
