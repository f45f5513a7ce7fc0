// README: Customer store backed by PostgreSQL.
package customer

import (
	"context"
	"database/sql"
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

func (s *Store) List(ctx context.Context) ([]Customer, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, first_name, last_name, email, phone, id_card_number, drivers_license_number, created_at
		FROM customers
		ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (s *Store) Get(ctx context.Context, id types.ID) (Customer, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, phone, id_card_number, drivers_license_number, created_at
		FROM customers
		WHERE id = $1`, string(id))
	c, err := scanCustomer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Customer{}, ErrNotFound
	}
	if err != nil {
		return Customer{}, err
	}
	return c, nil
}

func (s *Store) Create(ctx context.Context, c Customer) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO customers (
			id, first_name, last_name, email, phone, id_card_number, drivers_license_number, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		string(c.ID), c.FirstName, c.LastName, c.Email,
		c.Phone, c.IDCardNumber, c.DriversLicenseNumber, c.CreatedAt,
	)
	return err
}

func scanCustomer(row pgx.Row) (Customer, error) {
	var c Customer
	var phone, idCard, license sql.NullString

	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &phone, &idCard, &license, &c.CreatedAt)
	if err != nil {
		return Customer{}, err
	}
	if phone.Valid {
		c.Phone = &phone.String
	}
	if idCard.Valid {
		c.IDCardNumber = &idCard.String
	}
	if license.Valid {
		c.DriversLicenseNumber = &license.String
	}
	return c, nil
}
