// README: Fleet service implements vehicle CRUD with validation.
package fleet

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"vanrent/internal/modules/pricing"
	"vanrent/internal/types"
)

var (
	ErrNotFound   = errors.New("vehicle not found")
	ErrBadRequest = errors.New("bad request")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type VehicleInput struct {
	Brand           Brand
	LicensePlate    string
	VIN             string
	Year            int
	LastServiceDate *time.Time
	LastServiceCost *types.Money
	STKDate         *time.Time
	InsuranceInfo   *string
	VignetteUntil   *time.Time
	Pricing         pricing.RateCard
}

func (in VehicleInput) validate() error {
	if !ValidBrand(in.Brand) {
		return ErrBadRequest
	}
	if in.LicensePlate == "" || in.VIN == "" {
		return ErrBadRequest
	}
	if in.LastServiceCost != nil && in.LastServiceCost.IsNegative() {
		return ErrBadRequest
	}
	if err := in.Pricing.Validate(); err != nil {
		return ErrBadRequest
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]Vehicle, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id types.ID) (Vehicle, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, in VehicleInput) (Vehicle, error) {
	if err := in.validate(); err != nil {
		return Vehicle{}, err
	}
	v := Vehicle{
		ID:              types.ID(uuid.NewString()),
		Brand:           in.Brand,
		LicensePlate:    in.LicensePlate,
		VIN:             in.VIN,
		Year:            in.Year,
		LastServiceDate: in.LastServiceDate,
		LastServiceCost: in.LastServiceCost,
		STKDate:         in.STKDate,
		InsuranceInfo:   in.InsuranceInfo,
		VignetteUntil:   in.VignetteUntil,
		Pricing:         in.Pricing,
		CreatedAt:       time.Now(),
	}
	if err := s.store.Create(ctx, v); err != nil {
		return Vehicle{}, err
	}
	return v, nil
}

func (s *Service) Update(ctx context.Context, id types.ID, in VehicleInput) (Vehicle, error) {
	if err := in.validate(); err != nil {
		return Vehicle{}, err
	}
	current, err := s.store.Get(ctx, id)
	if err != nil {
		return Vehicle{}, err
	}
	v := Vehicle{
		ID:              current.ID,
		Brand:           in.Brand,
		LicensePlate:    in.LicensePlate,
		VIN:             in.VIN,
		Year:            in.Year,
		LastServiceDate: in.LastServiceDate,
		LastServiceCost: in.LastServiceCost,
		STKDate:         in.STKDate,
		InsuranceInfo:   in.InsuranceInfo,
		VignetteUntil:   in.VignetteUntil,
		Pricing:         in.Pricing,
		CreatedAt:       current.CreatedAt,
	}
	if err := s.store.Update(ctx, v); err != nil {
		return Vehicle{}, err
	}
	return v, nil
}

func (s *Service) Delete(ctx context.Context, id types.ID) error {
	return s.store.Delete(ctx, id)
}
