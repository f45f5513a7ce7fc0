// README: Overview aggregation tests over in-memory snapshots.
package dashboard

import (
	"testing"
	"time"

	"vanrent/internal/modules/customer"
	"vanrent/internal/modules/fleet"
	"vanrent/internal/modules/rental"
	"vanrent/internal/types"
)

func TestBuild(t *testing.T) {
	now := time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)
	stkSoon := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

	vehicles := []fleet.Vehicle{
		{ID: "van-a", Brand: fleet.BrandFiatDucato, STKDate: &stkSoon},
		{ID: "van-b", Brand: fleet.BrandRenaultMaster},
	}
	customers := []customer.Customer{{ID: "c1"}, {ID: "c2"}, {ID: "c3"}}
	rentals := []rental.Rental{
		// active right now, returning today; the stale stored status must
		// not matter
		{ID: "r1", VehicleID: "van-a", CustomerID: "c1",
			StartAt:    time.Date(2024, 5, 9, 8, 0, 0, 0, time.UTC),
			EndAt:      time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC),
			TotalPrice: types.MoneyFromCZK(1500),
			Status:     rental.StatusUpcoming},
		// finished last month
		{ID: "r2", VehicleID: "van-b", CustomerID: "c2",
			StartAt:    time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC),
			EndAt:      time.Date(2024, 4, 3, 8, 0, 0, 0, time.UTC),
			TotalPrice: types.MoneyFromCZK(2000)},
		// another Ducato rental; revenue groups by brand
		{ID: "r3", VehicleID: "van-a", CustomerID: "c3",
			StartAt:    time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
			EndAt:      time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC),
			TotalPrice: types.MoneyFromCZK(500)},
		// orphan: vehicle no longer in the fleet, skipped in revenue
		{ID: "r4", VehicleID: "van-gone", CustomerID: "c1",
			StartAt:    time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC),
			EndAt:      time.Date(2024, 2, 2, 8, 0, 0, 0, time.UTC),
			TotalPrice: types.MoneyFromCZK(9999)},
	}

	o := Build(vehicles, customers, rentals, now)

	if o.VehicleCount != 2 || o.CustomerCount != 3 {
		t.Errorf("counts = %d vehicles, %d customers", o.VehicleCount, o.CustomerCount)
	}
	if o.ActiveRentals != 1 {
		t.Errorf("ActiveRentals = %d, want 1", o.ActiveRentals)
	}
	if len(o.Attention.ReturningToday) != 1 || o.Attention.ReturningToday[0].ID != "r1" {
		t.Errorf("ReturningToday = %+v", o.Attention.ReturningToday)
	}
	if len(o.Attention.InspectionsDue) != 1 || o.Attention.InspectionsDue[0].ID != "van-a" {
		t.Errorf("InspectionsDue = %+v", o.Attention.InspectionsDue)
	}

	revenue := map[fleet.Brand]types.Money{}
	for _, br := range o.RevenueByBrand {
		revenue[br.Brand] = br.Revenue
	}
	if revenue[fleet.BrandFiatDucato] != types.MoneyFromCZK(2000) {
		t.Errorf("Ducato revenue = %v, want 2000 CZK", revenue[fleet.BrandFiatDucato])
	}
	if revenue[fleet.BrandRenaultMaster] != types.MoneyFromCZK(2000) {
		t.Errorf("Master revenue = %v, want 2000 CZK", revenue[fleet.BrandRenaultMaster])
	}
	if len(revenue) != 2 {
		t.Errorf("orphan rental leaked into revenue: %+v", o.RevenueByBrand)
	}
}
