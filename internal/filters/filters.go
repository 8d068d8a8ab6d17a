// Package filters provides the concrete predicate types accepted by
// catalog.Query, plus a Criteria builder that assembles a filter set from
// optional user-supplied bounds.
//
// Filters over NEO fields (diameter, hazard flag) treat an orphaned
// approach (nil NEO) as a non-match: there is no object to compare against.
// An unknown diameter (NaN) likewise never satisfies a diameter bound.
package filters

import (
	"fmt"
	"strings"
	"time"

	"neo-scout/internal/catalog"
	"neo-scout/internal/models"
)

// Date matches approaches occurring on exactly this calendar day (UTC).
type Date struct {
	On time.Time
}

func (f Date) Matches(ca *models.CloseApproach) bool {
	return dayOf(ca.Time).Equal(dayOf(f.On))
}

// StartDate matches approaches on or after this calendar day (UTC).
type StartDate struct {
	Day time.Time
}

func (f StartDate) Matches(ca *models.CloseApproach) bool {
	return !dayOf(ca.Time).Before(dayOf(f.Day))
}

// EndDate matches approaches on or before this calendar day (UTC).
type EndDate struct {
	Day time.Time
}

func (f EndDate) Matches(ca *models.CloseApproach) bool {
	return !dayOf(ca.Time).After(dayOf(f.Day))
}

// MinDistance matches approaches at or beyond this distance in au.
type MinDistance float64

func (f MinDistance) Matches(ca *models.CloseApproach) bool {
	return ca.Distance >= float64(f)
}

// MaxDistance matches approaches at or within this distance in au.
type MaxDistance float64

func (f MaxDistance) Matches(ca *models.CloseApproach) bool {
	return ca.Distance <= float64(f)
}

// MinVelocity matches approaches at or above this relative velocity in km/s.
type MinVelocity float64

func (f MinVelocity) Matches(ca *models.CloseApproach) bool {
	return ca.Velocity >= float64(f)
}

// MaxVelocity matches approaches at or below this relative velocity in km/s.
type MaxVelocity float64

func (f MaxVelocity) Matches(ca *models.CloseApproach) bool {
	return ca.Velocity <= float64(f)
}

// MinDiameter matches approaches of objects at least this large in km.
// NaN diameters and orphaned approaches never match.
type MinDiameter float64

func (f MinDiameter) Matches(ca *models.CloseApproach) bool {
	return ca.NEO != nil && ca.NEO.Diameter >= float64(f)
}

// MaxDiameter matches approaches of objects at most this large in km.
// NaN diameters and orphaned approaches never match.
type MaxDiameter float64

func (f MaxDiameter) Matches(ca *models.CloseApproach) bool {
	return ca.NEO != nil && ca.NEO.Diameter <= float64(f)
}

// Hazardous matches approaches of objects whose hazard flag equals the
// filter value. Orphaned approaches never match.
type Hazardous bool

func (f Hazardous) Matches(ca *models.CloseApproach) bool {
	return ca.NEO != nil && ca.NEO.Hazardous == bool(f)
}

// Criteria collects the optional bounds a caller may set. A nil field means
// "no constraint"; Build emits one filter per set field.
type Criteria struct {
	Date      *time.Time
	StartDate *time.Time
	EndDate   *time.Time

	MinDistance *float64
	MaxDistance *float64
	MinVelocity *float64
	MaxVelocity *float64
	MinDiameter *float64
	MaxDiameter *float64

	Hazardous *bool
}

// Build assembles the filter set for catalog.Query from the set fields.
// An empty Criteria yields an empty set, which matches every approach.
func (c Criteria) Build() []catalog.Filter {
	var fs []catalog.Filter
	if c.Date != nil {
		fs = append(fs, Date{On: *c.Date})
	}
	if c.StartDate != nil {
		fs = append(fs, StartDate{Day: *c.StartDate})
	}
	if c.EndDate != nil {
		fs = append(fs, EndDate{Day: *c.EndDate})
	}
	if c.MinDistance != nil {
		fs = append(fs, MinDistance(*c.MinDistance))
	}
	if c.MaxDistance != nil {
		fs = append(fs, MaxDistance(*c.MaxDistance))
	}
	if c.MinVelocity != nil {
		fs = append(fs, MinVelocity(*c.MinVelocity))
	}
	if c.MaxVelocity != nil {
		fs = append(fs, MaxVelocity(*c.MaxVelocity))
	}
	if c.MinDiameter != nil {
		fs = append(fs, MinDiameter(*c.MinDiameter))
	}
	if c.MaxDiameter != nil {
		fs = append(fs, MaxDiameter(*c.MaxDiameter))
	}
	if c.Hazardous != nil {
		fs = append(fs, Hazardous(*c.Hazardous))
	}
	return fs
}

// String summarizes the set criteria, e.g. for query-history records.
func (c Criteria) String() string {
	var parts []string
	add := func(k, v string) { parts = append(parts, k+"="+v) }
	if c.Date != nil {
		add("date", c.Date.Format("2006-01-02"))
	}
	if c.StartDate != nil {
		add("start", c.StartDate.Format("2006-01-02"))
	}
	if c.EndDate != nil {
		add("end", c.EndDate.Format("2006-01-02"))
	}
	if c.MinDistance != nil {
		add("min-distance", fmt.Sprintf("%g", *c.MinDistance))
	}
	if c.MaxDistance != nil {
		add("max-distance", fmt.Sprintf("%g", *c.MaxDistance))
	}
	if c.MinVelocity != nil {
		add("min-velocity", fmt.Sprintf("%g", *c.MinVelocity))
	}
	if c.MaxVelocity != nil {
		add("max-velocity", fmt.Sprintf("%g", *c.MaxVelocity))
	}
	if c.MinDiameter != nil {
		add("min-diameter", fmt.Sprintf("%g", *c.MinDiameter))
	}
	if c.MaxDiameter != nil {
		add("max-diameter", fmt.Sprintf("%g", *c.MaxDiameter))
	}
	if c.Hazardous != nil {
		add("hazardous", fmt.Sprintf("%t", *c.Hazardous))
	}
	if len(parts) == 0 {
		return "all"
	}
	return strings.Join(parts, " ")
}

// dayOf truncates a time to its UTC calendar day.
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
