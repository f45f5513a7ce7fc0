// README: Rental store backed by PostgreSQL; commit re-validates overlap in a transaction.
package rental

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vanrent/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Create inserts the rental after re-checking the overlap invariant under a
// lock on the vehicle row. Two concurrent commits for the same vehicle
// serialize here; the in-memory availability check only covers the caller's
// snapshot.
func (s *Store) Create(ctx context.Context, r Rental) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var vehicleID string
	err = tx.QueryRow(ctx, `SELECT id FROM vehicles WHERE id = $1 FOR UPDATE`, string(r.VehicleID)).Scan(&vehicleID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrUnknownVehicle
	}
	if err != nil {
		return err
	}

	var customerID string
	err = tx.QueryRow(ctx, `SELECT id FROM customers WHERE id = $1`, string(r.CustomerID)).Scan(&customerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrUnknownCustomer
	}
	if err != nil {
		return err
	}

	var taken bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM rentals
			WHERE vehicle_id = $1 AND start_at < $3 AND end_at > $2
		)`, string(r.VehicleID), r.StartAt, r.EndAt,
	).Scan(&taken)
	if err != nil {
		return err
	}
	if taken {
		return ErrVehicleTaken
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO rentals (
			id, vehicle_id, customer_id, start_at, end_at, total_price, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		string(r.ID), string(r.VehicleID), string(r.CustomerID),
		r.StartAt, r.EndAt, int64(r.TotalPrice), string(r.Status), r.CreatedAt,
	)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) List(ctx context.Context) ([]Rental, error) {
	return s.queryRentals(ctx, `
		SELECT id, vehicle_id, customer_id, start_at, end_at, total_price, status, created_at
		FROM rentals
		ORDER BY start_at`)
}

func (s *Store) ListByVehicle(ctx context.Context, vehicleID types.ID) ([]Rental, error) {
	return s.queryRentals(ctx, `
		SELECT id, vehicle_id, customer_id, start_at, end_at, total_price, status, created_at
		FROM rentals
		WHERE vehicle_id = $1
		ORDER BY start_at`, string(vehicleID))
}

func (s *Store) Get(ctx context.Context, id types.ID) (Rental, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, vehicle_id, customer_id, start_at, end_at, total_price, status, created_at
		FROM rentals
		WHERE id = $1`, string(id))

	var r Rental
	err := row.Scan(&r.ID, &r.VehicleID, &r.CustomerID, &r.StartAt, &r.EndAt, &r.TotalPrice, &r.Status, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Rental{}, ErrNotFound
	}
	if err != nil {
		return Rental{}, err
	}
	return r, nil
}

func (s *Store) Delete(ctx context.Context, id types.ID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM rentals WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) queryRentals(ctx context.Context, sql string, args ...any) ([]Rental, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rentals := []Rental{}
	for rows.Next() {
		var r Rental
		if err := rows.Scan(&r.ID, &r.VehicleID, &r.CustomerID, &r.StartAt, &r.EndAt, &r.TotalPrice, &r.Status, &r.CreatedAt); err != nil {
			return nil, err
		}
		rentals = append(rentals, r)
	}
	return rentals, rows.Err()
}
