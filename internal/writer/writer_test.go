package writer

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"neo-scout/internal/models"
)

func sample() []*models.CloseApproach {
	eros := &models.NearEarthObject{Designation: "433", Name: "Eros", Diameter: 16.84, Hazardous: false}
	linked := &models.CloseApproach{
		Designation: "433",
		Time:        time.Date(2020, 1, 1, 12, 30, 0, 0, time.UTC),
		Distance:    0.15,
		Velocity:    5.2,
		NEO:         eros,
	}
	orphan := &models.CloseApproach{
		Designation: "999",
		Time:        time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC),
		Distance:    0.3,
		Velocity:    3.1,
	}
	return []*models.CloseApproach{linked, orphan}
}

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sample()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("CSV has %d lines, want header + 2 rows", len(lines))
	}
	wantHeader := "datetime_utc,distance_au,velocity_km_s,designation,name,diameter_km,potentially_hazardous"
	if lines[0] != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}
	wantRow := "2020-01-01 12:30,0.15,5.2,433,Eros,16.84,false"
	if lines[1] != wantRow {
		t.Errorf("row 1 = %q, want %q", lines[1], wantRow)
	}
}

func TestWriteCSV_OrphanRow(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sample()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	wantRow := "2020-02-01 00:00,0.3,3.1,999,,nan,false"
	if lines[2] != wantRow {
		t.Errorf("orphan row = %q, want %q", lines[2], wantRow)
	}
}

func TestWriteCSV_UnknownDiameter(t *testing.T) {
	cas := sample()
	cas[0].NEO.Diameter = math.NaN()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, cas); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if !strings.Contains(buf.String(), ",Eros,nan,") {
		t.Errorf("unknown diameter not written as nan:\n%s", buf.String())
	}
}

func TestWriteJSON_Shape(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sample()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var rows []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("JSON has %d rows, want 2", len(rows))
	}

	first := rows[0]
	if first["datetime_utc"] != "2020-01-01 12:30" {
		t.Errorf("datetime_utc = %v", first["datetime_utc"])
	}
	neo, ok := first["neo"].(map[string]any)
	if !ok {
		t.Fatalf("neo is %T, want object", first["neo"])
	}
	if neo["designation"] != "433" || neo["name"] != "Eros" {
		t.Errorf("neo = %v, want Eros", neo)
	}
	if neo["diameter_km"] != 16.84 {
		t.Errorf("diameter_km = %v, want 16.84", neo["diameter_km"])
	}

	orphanNEO := rows[1]["neo"].(map[string]any)
	if orphanNEO["designation"] != "999" {
		t.Errorf("orphan neo designation = %v, want 999", orphanNEO["designation"])
	}
	if orphanNEO["diameter_km"] != nil {
		t.Errorf("orphan diameter_km = %v, want null", orphanNEO["diameter_km"])
	}
}

func TestWriteJSON_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("empty result serialized as %q, want []", got)
	}
}

func TestWrite_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "out.csv")
	if err := Write(csvPath, sample()); err != nil {
		t.Fatalf("Write csv: %v", err)
	}
	b, _ := os.ReadFile(csvPath)
	if !strings.HasPrefix(string(b), "datetime_utc,") {
		t.Error("csv file missing header")
	}

	jsonPath := filepath.Join(dir, "out.json")
	if err := Write(jsonPath, sample()); err != nil {
		t.Fatalf("Write json: %v", err)
	}
	b, _ = os.ReadFile(jsonPath)
	if !json.Valid(b) {
		t.Error("json file is not valid JSON")
	}
}

func TestWrite_RejectsUnknownExtension(t *testing.T) {
	if err := Write(filepath.Join(t.TempDir(), "out.xml"), sample()); err == nil {
		t.Error("Write should reject an unsupported extension")
	}
}
