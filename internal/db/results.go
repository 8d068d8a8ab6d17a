package db

import (
	"database/sql"
	"fmt"
	"log"
	"math"
	"time"

	"neo-scout/internal/models"
)

// QueryRun is one saved query invocation.
type QueryRun struct {
	ID        int64
	Timestamp string
	Criteria  string
	Count     int
}

// SavedApproach is one persisted result row. Diameter is NaN when the
// object's diameter was unknown (or the approach was orphaned).
type SavedApproach struct {
	Designation string
	Name        string
	Time        string
	DistanceAU  float64
	VelocityKMS float64
	DiameterKM  float64
	Hazardous   bool
}

// SaveQuery records a query run and bulk-inserts its results, returning the
// new run's id.
func (d *DB) SaveQuery(criteria string, results []*models.CloseApproach) (int64, error) {
	res, err := d.sql.Exec(
		`INSERT INTO query_history (timestamp, criteria, count) VALUES (?,?,?)`,
		time.Now().UTC().Format(time.RFC3339), criteria, len(results),
	)
	if err != nil {
		return 0, fmt.Errorf("insert query run: %w", err)
	}
	queryID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("query run id: %w", err)
	}

	if len(results) == 0 {
		return queryID, nil
	}

	tx, err := d.sql.Begin()
	if err != nil {
		return queryID, fmt.Errorf("begin tx: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO approach_results (
		query_id, designation, name, time,
		distance_au, velocity_km_s, diameter_km, hazardous
	) VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		tx.Rollback()
		return queryID, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, ca := range results {
		var name string
		var diameter any // NULL for unknown
		hazardous := false
		if ca.NEO != nil {
			name = ca.NEO.Name
			hazardous = ca.NEO.Hazardous
			if ca.NEO.HasDiameter() {
				diameter = ca.NEO.Diameter
			}
		}
		if _, err := stmt.Exec(
			queryID, ca.Designation, name, ca.TimeString(),
			ca.Distance, ca.Velocity, diameter, hazardous,
		); err != nil {
			log.Printf("[DB] SaveQuery insert row: %v", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return queryID, fmt.Errorf("commit results: %w", err)
	}
	return queryID, nil
}

// Recent returns the most recent query runs, newest first.
func (d *DB) Recent(limit int) ([]QueryRun, error) {
	rows, err := d.sql.Query(`
		SELECT id, timestamp, criteria, count
		FROM query_history ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list query runs: %w", err)
	}
	defer rows.Close()

	var runs []QueryRun
	for rows.Next() {
		var r QueryRun
		if err := rows.Scan(&r.ID, &r.Timestamp, &r.Criteria, &r.Count); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Results returns the stored result rows for a query run, in insert order.
func (d *DB) Results(queryID int64) ([]SavedApproach, error) {
	rows, err := d.sql.Query(`
		SELECT designation, name, time, distance_au, velocity_km_s, diameter_km, hazardous
		FROM approach_results WHERE query_id = ? ORDER BY id
	`, queryID)
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}
	defer rows.Close()

	var results []SavedApproach
	for rows.Next() {
		var r SavedApproach
		var name sql.NullString
		var diameter sql.NullFloat64
		if err := rows.Scan(&r.Designation, &name, &r.Time, &r.DistanceAU, &r.VelocityKMS, &diameter, &r.Hazardous); err != nil {
			return nil, err
		}
		r.Name = name.String
		r.DiameterKM = math.NaN()
		if diameter.Valid {
			r.DiameterKM = diameter.Float64
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
