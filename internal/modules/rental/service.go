// README: Rental service: window validation, availability gate, quote, commit.
package rental

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"vanrent/internal/types"
)

var (
	ErrBadRequest      = errors.New("bad request")
	ErrNotFound        = errors.New("rental not found")
	ErrInvalidWindow   = errors.New("rental window must end after it starts")
	ErrVehicleTaken    = errors.New("vehicle is not available in the requested window")
	ErrUnknownVehicle  = errors.New("vehicle not found")
	ErrUnknownCustomer = errors.New("customer not found")
)

// Pricing proposes a price for a vehicle over a duration.
type Pricing interface {
	Estimate(ctx context.Context, vehicleID types.ID, d time.Duration) (types.Money, error)
}

type Service struct {
	store   *Store
	pricing Pricing
	now     func() time.Time
}

func NewService(store *Store, pricing Pricing, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, pricing: pricing, now: now}
}

type CreateCommand struct {
	VehicleID  types.ID
	CustomerID types.ID
	StartAt    time.Time
	EndAt      time.Time
	// PriceOverride replaces the rate-card quote when the operator edits
	// the proposed total before committing.
	PriceOverride *types.Money
}

// Create commits a rental. Availability is checked against the current
// snapshot here and re-validated inside the store transaction, which is the
// authoritative decision under concurrent callers.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (Rental, error) {
	if cmd.VehicleID == "" || cmd.CustomerID == "" {
		return Rental{}, ErrBadRequest
	}
	if !cmd.StartAt.Before(cmd.EndAt) {
		return Rental{}, ErrInvalidWindow
	}

	existing, err := s.store.ListByVehicle(ctx, cmd.VehicleID)
	if err != nil {
		return Rental{}, err
	}
	if !IsAvailable(cmd.VehicleID, cmd.StartAt, cmd.EndAt, existing) {
		return Rental{}, ErrVehicleTaken
	}

	price, err := s.resolvePrice(ctx, cmd)
	if err != nil {
		return Rental{}, err
	}
	if price.IsNegative() {
		return Rental{}, ErrBadRequest
	}

	now := s.now()
	r := Rental{
		ID:         types.ID(uuid.NewString()),
		VehicleID:  cmd.VehicleID,
		CustomerID: cmd.CustomerID,
		StartAt:    cmd.StartAt,
		EndAt:      cmd.EndAt,
		TotalPrice: price,
		Status:     ClassifyAt(Rental{StartAt: cmd.StartAt, EndAt: cmd.EndAt}, now),
		CreatedAt:  now,
	}
	if err := s.store.Create(ctx, r); err != nil {
		return Rental{}, err
	}
	return r, nil
}

func (s *Service) resolvePrice(ctx context.Context, cmd CreateCommand) (types.Money, error) {
	if cmd.PriceOverride != nil {
		return *cmd.PriceOverride, nil
	}
	return s.pricing.Estimate(ctx, cmd.VehicleID, cmd.EndAt.Sub(cmd.StartAt))
}

// List returns all rentals with status derived from the clock, never the
// stored cache.
func (s *Service) List(ctx context.Context) ([]Rental, error) {
	rentals, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range rentals {
		rentals[i].Status = ClassifyAt(rentals[i], now)
	}
	return rentals, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (Rental, error) {
	r, err := s.store.Get(ctx, id)
	if err != nil {
		return Rental{}, err
	}
	r.Status = ClassifyAt(r, s.now())
	return r, nil
}

// Availability reports, for a requested window, which vehicles in the
// snapshot are occupied.
func (s *Service) Availability(ctx context.Context, start, end time.Time) (map[types.ID]bool, error) {
	rentals, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return UnavailableVehicles(start, end, rentals), nil
}

// Delete removes a rental. Administrative use only; the normal flow never
// hard-deletes bookings.
func (s *Service) Delete(ctx context.Context, id types.ID) error {
	return s.store.Delete(ctx, id)
}
