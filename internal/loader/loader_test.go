package loader

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const neoCSV = `id,pdes,name,diameter,pha
a0000433,433,Eros,16.84,N
bK10P09K,2010 PK9,,,Y
a0002101,2101,Adonis,0.6,
junkrow,,Nameless,1.0,N
badnum,9999,Bad,not-a-number,N
`

const cadJSON = `{
  "fields": ["des", "orbit_id", "cd", "dist", "v_rel"],
  "data": [
    ["433", "659", "2020-Jan-01 12:30", "0.15", "5.2"],
    ["999", "1", "2020-Feb-01 00:00", "0.3", "3.1"],
    ["433", "659", "bad-timestamp", "0.2", "4.8"],
    ["2101", "77", "2021-Mar-05 06:45", "oops", "4.8"]
  ]
}`

func TestLoadNEOs_Coercions(t *testing.T) {
	path := writeFile(t, "neos.csv", neoCSV)
	neos, err := LoadNEOs(path)
	if err != nil {
		t.Fatalf("LoadNEOs: %v", err)
	}
	if len(neos) != 3 {
		t.Fatalf("loaded %d NEOs, want 3 (2 malformed rows skipped)", len(neos))
	}

	eros := neos[0]
	if eros.Designation != "433" || eros.Name != "Eros" {
		t.Errorf("first NEO = %s/%s, want 433/Eros", eros.Designation, eros.Name)
	}
	if eros.Diameter != 16.84 {
		t.Errorf("Eros diameter = %v, want 16.84", eros.Diameter)
	}
	if eros.Hazardous {
		t.Error("pha=N should not be hazardous")
	}

	pk9 := neos[1]
	if pk9.Name != "" {
		t.Errorf("empty name column should stay unnamed, got %q", pk9.Name)
	}
	if pk9.HasDiameter() {
		t.Errorf("empty diameter column should be unknown, got %v", pk9.Diameter)
	}
	if !pk9.Hazardous {
		t.Error("pha=Y should be hazardous")
	}

	adonis := neos[2]
	if adonis.Hazardous {
		t.Error("empty pha column should not be hazardous")
	}
}

func TestLoadNEOs_MissingColumn(t *testing.T) {
	path := writeFile(t, "neos.csv", "pdes,name,diameter\n433,Eros,16.84\n")
	if _, err := LoadNEOs(path); err == nil {
		t.Error("LoadNEOs should fail when the pha column is missing")
	}
}

func TestLoadNEOs_FileMissing(t *testing.T) {
	if _, err := LoadNEOs(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Error("LoadNEOs should fail for a missing file")
	}
}

func TestLoadApproaches_ParsesAndSkips(t *testing.T) {
	path := writeFile(t, "cad.json", cadJSON)
	approaches, err := LoadApproaches(path)
	if err != nil {
		t.Fatalf("LoadApproaches: %v", err)
	}
	if len(approaches) != 2 {
		t.Fatalf("loaded %d approaches, want 2 (2 malformed rows skipped)", len(approaches))
	}

	first := approaches[0]
	if first.Designation != "433" {
		t.Errorf("first designation = %q, want 433", first.Designation)
	}
	want := time.Date(2020, 1, 1, 12, 30, 0, 0, time.UTC)
	if !first.Time.Equal(want) {
		t.Errorf("first time = %v, want %v", first.Time, want)
	}
	if first.Distance != 0.15 || first.Velocity != 5.2 {
		t.Errorf("first dist/vel = %v/%v, want 0.15/5.2", first.Distance, first.Velocity)
	}
	if first.NEO != nil {
		t.Error("loader should leave the NEO reference unset")
	}
}

func TestLoadApproaches_MissingField(t *testing.T) {
	path := writeFile(t, "cad.json", `{"fields":["des","cd","dist"],"data":[]}`)
	if _, err := LoadApproaches(path); err == nil {
		t.Error("LoadApproaches should fail when v_rel is absent from fields")
	}
}

func TestLoadApproaches_BadJSON(t *testing.T) {
	path := writeFile(t, "cad.json", "{not json")
	if _, err := LoadApproaches(path); err == nil {
		t.Error("LoadApproaches should fail on undecodable JSON")
	}
}

func TestLoad_Both(t *testing.T) {
	neoPath := writeFile(t, "neos.csv", neoCSV)
	cadPath := writeFile(t, "cad.json", cadJSON)

	neos, approaches, err := Load(neoPath, cadPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(neos) != 3 || len(approaches) != 2 {
		t.Errorf("Load = %d NEOs / %d approaches, want 3 / 2", len(neos), len(approaches))
	}
}

func TestLoad_PropagatesLoaderError(t *testing.T) {
	cadPath := writeFile(t, "cad.json", cadJSON)
	if _, _, err := Load(filepath.Join(t.TempDir(), "absent.csv"), cadPath); err == nil {
		t.Error("Load should propagate a NEO loader failure")
	}
}
