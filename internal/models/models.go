package models

import (
	"fmt"
	"math"
	"time"
)

// NearEarthObject represents a single near-Earth object from the NASA
// small-body dataset. Designation is the primary identity and is unique
// across the dataset; Name is optional ("" = unnamed) and unique when set.
type NearEarthObject struct {
	Designation string
	Name        string  // "" when the object has no IAU name
	Diameter    float64 // estimated diameter in km; NaN when unknown
	Hazardous   bool    // potentially hazardous asteroid flag

	// Approaches holds this object's close approaches in dataset order.
	// Populated once by catalog.New; nil before linking.
	Approaches []*CloseApproach
}

// FullName returns the canonical display name, e.g. "433 (Eros)" for named
// objects and just the designation otherwise.
func (n *NearEarthObject) FullName() string {
	if n.Name == "" {
		return n.Designation
	}
	return fmt.Sprintf("%s (%s)", n.Designation, n.Name)
}

// HasDiameter reports whether the dataset carries a diameter estimate.
func (n *NearEarthObject) HasDiameter() bool {
	return !math.IsNaN(n.Diameter)
}

// CloseApproach represents one recorded close approach of a near-Earth
// object. Designation is the foreign key into the NEO dataset and is only
// consulted while linking; afterwards NEO is the authoritative reference.
type CloseApproach struct {
	Designation string
	Time        time.Time // time of closest approach, UTC
	Distance    float64   // nominal approach distance in au
	Velocity    float64   // relative approach velocity in km/s

	// NEO is set once by catalog.New. It stays nil for orphaned approaches
	// whose designation matches no object in the NEO dataset.
	NEO *NearEarthObject
}

// TimeString formats the approach time the way the upstream dataset
// presents it (minute precision, UTC).
func (ca *CloseApproach) TimeString() string {
	return ca.Time.UTC().Format("2006-01-02 15:04")
}

// Summary returns a one-line human-readable description of the approach.
func (ca *CloseApproach) Summary() string {
	who := ca.Designation
	if ca.NEO != nil {
		who = ca.NEO.FullName()
	}
	return fmt.Sprintf("%s: %s approaches Earth at %.2f au, %.2f km/s", ca.TimeString(), who, ca.Distance, ca.Velocity)
}
