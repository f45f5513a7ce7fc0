// README: Pricing service quotes rentals from a vehicle's stored rate card.
package pricing

import (
	"context"
	"time"

	"vanrent/internal/types"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Estimate proposes a price for renting a vehicle over the given duration.
// The result is a default suggestion; the committed rental price may be
// overridden by the operator and is frozen afterwards.
func (s *Service) Estimate(ctx context.Context, vehicleID types.ID, d time.Duration) (types.Money, error) {
	card, err := s.store.GetRateCard(ctx, vehicleID)
	if err != nil {
		return 0, err
	}
	return Quote(d, card), nil
}
