// Package writer serializes query results to CSV or JSON, matching the
// column layout of the upstream close-approach exports.
package writer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"neo-scout/internal/models"
)

var csvHeader = []string{
	"datetime_utc", "distance_au", "velocity_km_s",
	"designation", "name", "diameter_km", "potentially_hazardous",
}

// Write serializes the approaches to path, dispatching on the file
// extension (.csv or .json).
func Write(path string, approaches []*models.CloseApproach) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create outfile: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return WriteCSV(f, approaches)
	case ".json":
		return WriteJSON(f, approaches)
	default:
		return fmt.Errorf("unsupported outfile extension %q (want .csv or .json)", filepath.Ext(path))
	}
}

// WriteCSV writes the approaches as CSV with a header row. Unnamed objects
// get an empty name cell; unknown diameters are written as "nan". Orphaned
// approaches carry only their designation.
func WriteCSV(w io.Writer, approaches []*models.CloseApproach) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, ca := range approaches {
		name, diameter, hazardous := neoColumns(ca)
		rec := []string{
			ca.TimeString(),
			strconv.FormatFloat(ca.Distance, 'f', -1, 64),
			strconv.FormatFloat(ca.Velocity, 'f', -1, 64),
			ca.Designation,
			name,
			diameter,
			strconv.FormatBool(hazardous),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func neoColumns(ca *models.CloseApproach) (name, diameter string, hazardous bool) {
	diameter = "nan"
	if ca.NEO == nil {
		return "", diameter, false
	}
	if ca.NEO.HasDiameter() {
		diameter = strconv.FormatFloat(ca.NEO.Diameter, 'f', -1, 64)
	}
	return ca.NEO.Name, diameter, ca.NEO.Hazardous
}

type jsonNEO struct {
	Designation          string   `json:"designation"`
	Name                 string   `json:"name"`
	DiameterKM           *float64 `json:"diameter_km"` // null when unknown
	PotentiallyHazardous bool     `json:"potentially_hazardous"`
}

type jsonApproach struct {
	DatetimeUTC string  `json:"datetime_utc"`
	DistanceAU  float64 `json:"distance_au"`
	VelocityKMS float64 `json:"velocity_km_s"`
	NEO         jsonNEO `json:"neo"`
}

// WriteJSON writes the approaches as a JSON array, each element carrying
// the approach scalars plus a nested neo object. An empty result set is
// written as [].
func WriteJSON(w io.Writer, approaches []*models.CloseApproach) error {
	rows := make([]jsonApproach, 0, len(approaches))
	for _, ca := range approaches {
		row := jsonApproach{
			DatetimeUTC: ca.TimeString(),
			DistanceAU:  ca.Distance,
			VelocityKMS: ca.Velocity,
			NEO:         jsonNEO{Designation: ca.Designation},
		}
		if ca.NEO != nil {
			row.NEO.Designation = ca.NEO.Designation
			row.NEO.Name = ca.NEO.Name
			row.NEO.PotentiallyHazardous = ca.NEO.Hazardous
			if ca.NEO.HasDiameter() {
				d := ca.NEO.Diameter
				row.NEO.DiameterKM = &d
			}
		}
		rows = append(rows, row)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
