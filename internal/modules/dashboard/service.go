// README: Dashboard service: loads snapshots and builds the overview.
package dashboard

import (
	"context"
	"time"

	"vanrent/internal/modules/customer"
	"vanrent/internal/modules/fleet"
	"vanrent/internal/modules/rental"
)

type VehicleLister interface {
	List(ctx context.Context) ([]fleet.Vehicle, error)
}

type CustomerLister interface {
	List(ctx context.Context) ([]customer.Customer, error)
}

type RentalLister interface {
	List(ctx context.Context) ([]rental.Rental, error)
}

type Service struct {
	vehicles  VehicleLister
	customers CustomerLister
	rentals   RentalLister
	now       func() time.Time
}

func NewService(vehicles VehicleLister, customers CustomerLister, rentals RentalLister, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{vehicles: vehicles, customers: customers, rentals: rentals, now: now}
}

func (s *Service) Overview(ctx context.Context) (Overview, error) {
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return Overview{}, err
	}
	customers, err := s.customers.List(ctx)
	if err != nil {
		return Overview{}, err
	}
	rentals, err := s.rentals.List(ctx)
	if err != nil {
		return Overview{}, err
	}
	return Build(vehicles, customers, rentals, s.now()), nil
}
