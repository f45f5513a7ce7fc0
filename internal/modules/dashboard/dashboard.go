// README: Dashboard aggregation: counts, revenue by brand, attention lists.
package dashboard

import (
	"time"

	"vanrent/internal/modules/customer"
	"vanrent/internal/modules/fleet"
	"vanrent/internal/modules/rental"
	"vanrent/internal/types"
)

type BrandRevenue struct {
	Brand   fleet.Brand `json:"brand"`
	Revenue types.Money `json:"revenue"`
}

// Attention lists what the operator should look at today.
type Attention struct {
	InspectionsDue    []fleet.Vehicle `json:"inspections_due"`
	VignettesExpiring []fleet.Vehicle `json:"vignettes_expiring"`
	ReturningToday    []rental.Rental `json:"returning_today"`
}

type Overview struct {
	VehicleCount   int            `json:"vehicle_count"`
	CustomerCount  int            `json:"customer_count"`
	ActiveRentals  int            `json:"active_rentals"`
	RevenueByBrand []BrandRevenue `json:"revenue_by_brand"`
	Attention      Attention      `json:"attention"`
}

// Build computes the overview from in-memory snapshots. Rentals pointing at
// a vehicle missing from the snapshot are skipped in the revenue breakdown
// instead of failing the whole computation.
func Build(vehicles []fleet.Vehicle, customers []customer.Customer, rentals []rental.Rental, now time.Time) Overview {
	byID := make(map[types.ID]fleet.Vehicle, len(vehicles))
	for _, v := range vehicles {
		byID[v.ID] = v
	}

	revenue := map[fleet.Brand]types.Money{}
	brandOrder := []fleet.Brand{}
	active := 0
	returning := []rental.Rental{}
	for _, r := range rentals {
		status := rental.ClassifyAt(r, now)
		if status == rental.StatusActive {
			active++
			if rental.ReturnsOn(r, now) {
				r.Status = status
				returning = append(returning, r)
			}
		}
		v, ok := byID[r.VehicleID]
		if !ok {
			continue
		}
		if _, seen := revenue[v.Brand]; !seen {
			brandOrder = append(brandOrder, v.Brand)
		}
		revenue[v.Brand] += r.TotalPrice
	}

	byBrand := make([]BrandRevenue, 0, len(brandOrder))
	for _, b := range brandOrder {
		byBrand = append(byBrand, BrandRevenue{Brand: b, Revenue: revenue[b]})
	}

	attention := Attention{
		InspectionsDue:    []fleet.Vehicle{},
		VignettesExpiring: []fleet.Vehicle{},
		ReturningToday:    returning,
	}
	for _, v := range vehicles {
		if v.InspectionDueSoon(now) {
			attention.InspectionsDue = append(attention.InspectionsDue, v)
		}
		if v.VignetteDueSoon(now) {
			attention.VignettesExpiring = append(attention.VignettesExpiring, v)
		}
	}

	return Overview{
		VehicleCount:   len(vehicles),
		CustomerCount:  len(customers),
		ActiveRentals:  active,
		RevenueByBrand: byBrand,
		Attention:      attention,
	}
}
