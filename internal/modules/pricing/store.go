// README: Rate card lookup backed by PostgreSQL.
package pricing

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vanrent/internal/types"
)

var ErrUnknownVehicle = errors.New("vehicle not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) GetRateCard(ctx context.Context, vehicleID types.ID) (RateCard, error) {
	row := s.db.QueryRow(ctx, `
		SELECT price_4h, price_6h, price_12h, price_24h, price_daily
		FROM vehicles
		WHERE id = $1`, string(vehicleID),
	)

	var card RateCard
	err := row.Scan(&card.FourHour, &card.SixHour, &card.TwelveHour, &card.TwentyFourHour, &card.Daily)
	if errors.Is(err, pgx.ErrNoRows) {
		return RateCard{}, ErrUnknownVehicle
	}
	if err != nil {
		return RateCard{}, err
	}
	return card, nil
}
