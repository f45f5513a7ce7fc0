// README: Pure scheduling logic: interval overlap, availability, derived status.
package rental

import (
	"time"

	"vanrent/internal/types"
)

// Overlaps reports whether the half-open windows [s, e) and [bs, be)
// intersect. Touching endpoints do not conflict: a rental ending at 10:00
// and one starting at 10:00 are compatible.
func Overlaps(s, e, bs, be time.Time) bool {
	return s.Before(be) && e.After(bs)
}

// IsAvailable reports whether the vehicle is free over [start, end) given
// the supplied rental snapshot. An inverted or empty window is defined as
// unavailable rather than an error. Every rental of the vehicle blocks,
// whatever its derived status: a completed label is display state, not
// evidence the stored interval is free.
func IsAvailable(vehicleID types.ID, start, end time.Time, rentals []Rental) bool {
	if !start.Before(end) {
		return false
	}
	for _, r := range rentals {
		if r.VehicleID != vehicleID {
			continue
		}
		if Overlaps(start, end, r.StartAt, r.EndAt) {
			return false
		}
	}
	return true
}

// UnavailableVehicles returns the ids of vehicles occupied during
// [start, end), used to disable options in the vehicle picker. An invalid
// window marks every vehicle in the snapshot occupied.
func UnavailableVehicles(start, end time.Time, rentals []Rental) map[types.ID]bool {
	unavailable := map[types.ID]bool{}
	if !start.Before(end) {
		for _, r := range rentals {
			unavailable[r.VehicleID] = true
		}
		return unavailable
	}
	for _, r := range rentals {
		if Overlaps(start, end, r.StartAt, r.EndAt) {
			unavailable[r.VehicleID] = true
		}
	}
	return unavailable
}

// ClassifyAt derives the lifecycle state of a rental from the clock.
func ClassifyAt(r Rental, now time.Time) Status {
	if now.Before(r.StartAt) {
		return StatusUpcoming
	}
	if now.Before(r.EndAt) {
		return StatusActive
	}
	return StatusCompleted
}

// ReturnsOn reports whether the rental ends on the same calendar date as
// day, independent of time of day.
func ReturnsOn(r Rental, day time.Time) bool {
	ey, em, ed := r.EndAt.Date()
	dy, dm, dd := day.Date()
	return ey == dy && em == dm && ed == dd
}
