// README: Customer service implements renter record CRUD.
package customer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"vanrent/internal/types"
)

var (
	ErrNotFound   = errors.New("customer not found")
	ErrBadRequest = errors.New("bad request")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type CustomerInput struct {
	FirstName            string
	LastName             string
	Email                string
	Phone                *string
	IDCardNumber         *string
	DriversLicenseNumber *string
}

func (s *Service) List(ctx context.Context) ([]Customer, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id types.ID) (Customer, error) {
	return s.store.Get(ctx, id)
}

// Create registers a new renter. Repeat renters are reused by reference, so
// there is no update flow here.
func (s *Service) Create(ctx context.Context, in CustomerInput) (Customer, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" {
		return Customer{}, ErrBadRequest
	}
	c := Customer{
		ID:                   types.ID(uuid.NewString()),
		FirstName:            in.FirstName,
		LastName:             in.LastName,
		Email:                in.Email,
		Phone:                in.Phone,
		IDCardNumber:         in.IDCardNumber,
		DriversLicenseNumber: in.DriversLicenseNumber,
		CreatedAt:            time.Now(),
	}
	if err := s.store.Create(ctx, c); err != nil {
		return Customer{}, err
	}
	return c, nil
}
