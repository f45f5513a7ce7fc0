// README: Calendar service: loads snapshots and runs the projector.
package calendar

import (
	"context"
	"time"

	"vanrent/internal/modules/fleet"
	"vanrent/internal/modules/rental"
)

type VehicleLister interface {
	List(ctx context.Context) ([]fleet.Vehicle, error)
}

type RentalLister interface {
	List(ctx context.Context) ([]rental.Rental, error)
}

type Service struct {
	vehicles VehicleLister
	rentals  RentalLister
	now      func() time.Time
}

func NewService(vehicles VehicleLister, rentals RentalLister, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{vehicles: vehicles, rentals: rentals, now: now}
}

// MonthView is the rendered calendar page.
type MonthView struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Days  int        `json:"days"`
	// Today is the day-of-month column to highlight, 0 when the displayed
	// month is not the current one.
	Today int   `json:"today"`
	Rows  []Row `json:"rows"`
}

func (s *Service) MonthView(ctx context.Context, year int, month time.Month) (MonthView, error) {
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return MonthView{}, err
	}
	rentals, err := s.rentals.List(ctx)
	if err != nil {
		return MonthView{}, err
	}

	now := s.now()
	view := MonthView{
		Year:  year,
		Month: month,
		Days:  DaysIn(year, month),
		Rows:  Project(vehicles, rentals, year, month, now.Location()),
	}
	if (Month{Year: year, Month: month}).Contains(now) {
		view.Today = now.Day()
	}
	return view, nil
}
