// README: Fleet store backed by PostgreSQL with a Redis list-snapshot cache.
package fleet

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"vanrent/internal/types"
)

const listCacheKey = "fleet:vehicles"

type Store struct {
	db       *pgxpool.Pool
	redis    *redis.Client
	cacheTTL time.Duration
}

func NewStore(db *pgxpool.Pool, redis *redis.Client, cacheTTL time.Duration) *Store {
	return &Store{db: db, redis: redis, cacheTTL: cacheTTL}
}

const vehicleColumns = `
	id, brand, license_plate, vin, year,
	last_service_date, last_service_cost, stk_date,
	insurance_info, vignette_until,
	price_4h, price_6h, price_12h, price_24h, price_daily,
	created_at`

// List serves the cached snapshot when present; a miss (or an unreachable
// cache) falls through to the database.
func (s *Store) List(ctx context.Context) ([]Vehicle, error) {
	if s.redis != nil {
		if raw, err := s.redis.Get(ctx, listCacheKey).Bytes(); err == nil {
			var cached []Vehicle
			if json.Unmarshal(raw, &cached) == nil {
				return cached, nil
			}
		}
	}

	rows, err := s.db.Query(ctx, `SELECT`+vehicleColumns+` FROM vehicles ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := []Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if s.redis != nil {
		if raw, err := json.Marshal(vehicles); err == nil {
			_ = s.redis.Set(ctx, listCacheKey, raw, s.cacheTTL).Err()
		}
	}
	return vehicles, nil
}

func (s *Store) Get(ctx context.Context, id types.ID) (Vehicle, error) {
	row := s.db.QueryRow(ctx, `SELECT`+vehicleColumns+` FROM vehicles WHERE id = $1`, string(id))
	v, err := scanVehicle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Vehicle{}, ErrNotFound
	}
	if err != nil {
		return Vehicle{}, err
	}
	return v, nil
}

func (s *Store) Create(ctx context.Context, v Vehicle) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO vehicles (
			id, brand, license_plate, vin, year,
			last_service_date, last_service_cost, stk_date,
			insurance_info, vignette_until,
			price_4h, price_6h, price_12h, price_24h, price_daily,
			created_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8,
			$9, $10,
			$11, $12, $13, $14, $15,
			$16
		)`,
		string(v.ID), string(v.Brand), v.LicensePlate, v.VIN, v.Year,
		v.LastServiceDate, moneyPtr(v.LastServiceCost), v.STKDate,
		v.InsuranceInfo, v.VignetteUntil,
		int64(v.Pricing.FourHour), int64(v.Pricing.SixHour), int64(v.Pricing.TwelveHour),
		int64(v.Pricing.TwentyFourHour), int64(v.Pricing.Daily),
		v.CreatedAt,
	)
	if err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Store) Update(ctx context.Context, v Vehicle) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE vehicles
		SET brand = $2, license_plate = $3, vin = $4, year = $5,
		    last_service_date = $6, last_service_cost = $7, stk_date = $8,
		    insurance_info = $9, vignette_until = $10,
		    price_4h = $11, price_6h = $12, price_12h = $13, price_24h = $14, price_daily = $15
		WHERE id = $1`,
		string(v.ID), string(v.Brand), v.LicensePlate, v.VIN, v.Year,
		v.LastServiceDate, moneyPtr(v.LastServiceCost), v.STKDate,
		v.InsuranceInfo, v.VignetteUntil,
		int64(v.Pricing.FourHour), int64(v.Pricing.SixHour), int64(v.Pricing.TwelveHour),
		int64(v.Pricing.TwentyFourHour), int64(v.Pricing.Daily),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	s.invalidate(ctx)
	return nil
}

func (s *Store) Delete(ctx context.Context, id types.ID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	s.invalidate(ctx)
	return nil
}

// invalidate drops the list snapshot after any write; the next List rebuilds
// it. Cache errors are not surfaced, the database remains authoritative.
func (s *Store) invalidate(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, listCacheKey).Err()
	}
}

func scanVehicle(row pgx.Row) (Vehicle, error) {
	var v Vehicle
	var lastServiceDate, stkDate, vignetteUntil sql.NullTime
	var lastServiceCost sql.NullInt64
	var insuranceInfo sql.NullString

	err := row.Scan(
		&v.ID, &v.Brand, &v.LicensePlate, &v.VIN, &v.Year,
		&lastServiceDate, &lastServiceCost, &stkDate,
		&insuranceInfo, &vignetteUntil,
		&v.Pricing.FourHour, &v.Pricing.SixHour, &v.Pricing.TwelveHour,
		&v.Pricing.TwentyFourHour, &v.Pricing.Daily,
		&v.CreatedAt,
	)
	if err != nil {
		return Vehicle{}, err
	}

	v.LastServiceDate = toTimePtr(lastServiceDate)
	v.STKDate = toTimePtr(stkDate)
	v.VignetteUntil = toTimePtr(vignetteUntil)
	if lastServiceCost.Valid {
		m := types.Money(lastServiceCost.Int64)
		v.LastServiceCost = &m
	}
	if insuranceInfo.Valid {
		v.InsuranceInfo = &insuranceInfo.String
	}
	return v, nil
}

func toTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func moneyPtr(m *types.Money) *int64 {
	if m == nil {
		return nil
	}
	v := int64(*m)
	return &v
}
