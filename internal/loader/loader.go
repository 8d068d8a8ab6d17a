// Package loader reads the two upstream datasets: the NEO CSV extract and
// the NASA close-approach (CAD) JSON feed. Malformed rows are skipped and
// counted, never fatal; only unreadable files abort a load.
package loader

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"neo-scout/internal/logger"
	"neo-scout/internal/models"
)

// cdLayout is the CAD feed's close-approach timestamp format, e.g.
// "2020-Jan-01 12:30" (UTC).
const cdLayout = "2006-Jan-02 15:04"

// Load reads both datasets concurrently and logs summary statistics.
func Load(neoPath, cadPath string) ([]*models.NearEarthObject, []*models.CloseApproach, error) {
	var (
		neos       []*models.NearEarthObject
		approaches []*models.CloseApproach
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		neos, err = LoadNEOs(neoPath)
		return err
	})
	g.Go(func() error {
		var err error
		approaches, err = LoadApproaches(cadPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	logger.Section("Dataset statistics")
	logger.Stats("NEOs", len(neos))
	logger.Stats("Close approaches", len(approaches))
	return neos, approaches, nil
}

// LoadNEOs reads near-Earth objects from a CSV file with a header row.
// Required columns: pdes, name, diameter, pha; extra columns are ignored.
//
// Coercions follow the upstream extract: empty name means unnamed, empty
// diameter becomes NaN, pha "N" or "" means not hazardous. Rows without a
// designation or with an unparsable diameter are skipped.
func LoadNEOs(path string) ([]*models.NearEarthObject, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open neo csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are handled per-row below

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read neo csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"pdes", "name", "diameter", "pha"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("neo csv: missing %q column", required)
		}
	}

	var neos []*models.NearEarthObject
	skipped := 0
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		neo, ok := neoFromRecord(rec, col)
		if !ok {
			skipped++
			continue
		}
		neos = append(neos, neo)
	}

	if skipped > 0 {
		logger.Warn("LOAD", fmt.Sprintf("Skipped %d malformed NEO rows in %s", skipped, path))
	}
	return neos, nil
}

func neoFromRecord(rec []string, col map[string]int) (*models.NearEarthObject, bool) {
	field := func(name string) (string, bool) {
		i := col[name]
		if i >= len(rec) {
			return "", false
		}
		return rec[i], true
	}

	pdes, ok := field("pdes")
	if !ok || pdes == "" {
		return nil, false
	}
	name, ok := field("name")
	if !ok {
		return nil, false
	}

	diameter := math.NaN()
	if raw, ok := field("diameter"); !ok {
		return nil, false
	} else if raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, false
		}
		diameter = v
	}

	pha, ok := field("pha")
	if !ok {
		return nil, false
	}
	hazardous := pha != "N" && pha != ""

	return &models.NearEarthObject{
		Designation: pdes,
		Name:        name,
		Diameter:    diameter,
		Hazardous:   hazardous,
	}, true
}

// cadEnvelope is the NASA CAD feed shape: a field-name list plus row arrays.
type cadEnvelope struct {
	Fields []string            `json:"fields"`
	Data   [][]json.RawMessage `json:"data"`
}

// LoadApproaches reads close approaches from a CAD JSON file. Fields of
// interest: des (designation), cd (close-approach time), dist (au),
// v_rel (km/s). Rows with missing or unparsable values are skipped.
func LoadApproaches(path string) ([]*models.CloseApproach, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cad json: %w", err)
	}
	defer f.Close()

	var envelope cadEnvelope
	if err := json.NewDecoder(f).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode cad json: %w", err)
	}

	idx := make(map[string]int, len(envelope.Fields))
	for i, name := range envelope.Fields {
		idx[name] = i
	}
	for _, required := range []string{"des", "cd", "dist", "v_rel"} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("cad json: missing %q field", required)
		}
	}

	var approaches []*models.CloseApproach
	skipped := 0
	for _, row := range envelope.Data {
		ca, ok := approachFromRow(row, idx)
		if !ok {
			skipped++
			continue
		}
		approaches = append(approaches, ca)
	}

	if skipped > 0 {
		logger.Warn("LOAD", fmt.Sprintf("Skipped %d malformed approach rows in %s", skipped, path))
	}
	return approaches, nil
}

func approachFromRow(row []json.RawMessage, idx map[string]int) (*models.CloseApproach, bool) {
	str := func(name string) (string, bool) {
		i := idx[name]
		if i >= len(row) {
			return "", false
		}
		var s string
		if err := json.Unmarshal(row[i], &s); err != nil {
			return "", false
		}
		return s, true
	}

	des, ok := str("des")
	if !ok || des == "" {
		return nil, false
	}
	cd, ok := str("cd")
	if !ok {
		return nil, false
	}
	t, err := time.Parse(cdLayout, cd)
	if err != nil {
		return nil, false
	}

	// The feed serializes numbers as strings.
	distRaw, ok := str("dist")
	if !ok {
		return nil, false
	}
	dist, err := strconv.ParseFloat(distRaw, 64)
	if err != nil {
		return nil, false
	}
	velRaw, ok := str("v_rel")
	if !ok {
		return nil, false
	}
	vel, err := strconv.ParseFloat(velRaw, 64)
	if err != nil {
		return nil, false
	}

	return &models.CloseApproach{
		Designation: des,
		Time:        t.UTC(),
		Distance:    dist,
		Velocity:    vel,
	}, true
}
