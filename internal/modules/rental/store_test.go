// README: DB-backed store tests (commit-time overlap re-validation).
package rental

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"vanrent/internal/types"
)

// setupTestStore creates a real postgres-backed Store for integration tests.
// It skips the test when VANRENT_TEST_DSN is not set.
func setupTestStore(t *testing.T) (*Store, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("VANRENT_TEST_DSN")
	if dsn == "" {
		t.Skip("VANRENT_TEST_DSN not set; skipping DB-backed tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := applyMigrations(ctx, db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := db.Exec(ctx, "TRUNCATE TABLE rentals, customers, vehicles"); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	return NewStore(db), db
}

func applyMigrations(ctx context.Context, db *pgxpool.Pool) error {
	root, err := repoRoot()
	if err != nil {
		return err
	}
	content, err := os.ReadFile(filepath.Join(root, "migrations", "0001_init.sql"))
	if err != nil {
		return err
	}
	for _, stmt := range strings.Split(string(content), ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// repoRoot walks up from the package directory until it finds go.mod.
func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found")
		}
		dir = parent
	}
}

func seedVehicleAndCustomer(t *testing.T, db *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO vehicles (id, brand, license_plate, vin, year)
		VALUES ('van-a', 'Fiat Ducato', '1AB 2345', 'VIN123', 2021)`)
	if err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
	_, err = db.Exec(ctx, `
		INSERT INTO customers (id, first_name, last_name, email)
		VALUES ('c1', 'Jan', 'Novák', 'jan@example.com')`)
	if err != nil {
		t.Fatalf("seed customer: %v", err)
	}
}

func testRental(id string, start, end time.Time) Rental {
	return Rental{
		ID:         types.ID(id),
		VehicleID:  "van-a",
		CustomerID: "c1",
		StartAt:    start,
		EndAt:      end,
		TotalPrice: types.MoneyFromCZK(1000),
		Status:     StatusUpcoming,
		CreatedAt:  time.Now(),
	}
}

func TestStoreCreateRejectsOverlap(t *testing.T) {
	store, db := setupTestStore(t)
	seedVehicleAndCustomer(t, db)
	ctx := context.Background()

	start := time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)
	if err := store.Create(ctx, testRental("r1", start, start.Add(4*time.Hour))); err != nil {
		t.Fatalf("first create: %v", err)
	}

	err := store.Create(ctx, testRental("r2", start.Add(2*time.Hour), start.Add(6*time.Hour)))
	if !errors.Is(err, ErrVehicleTaken) {
		t.Fatalf("overlapping create: got %v, want ErrVehicleTaken", err)
	}

	// touching windows commit fine
	if err := store.Create(ctx, testRental("r3", start.Add(4*time.Hour), start.Add(8*time.Hour))); err != nil {
		t.Fatalf("adjacent create: %v", err)
	}
}

func TestStoreCreateUnknownReferences(t *testing.T) {
	store, db := setupTestStore(t)
	seedVehicleAndCustomer(t, db)
	ctx := context.Background()

	start := time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)

	r := testRental("r1", start, start.Add(time.Hour))
	r.VehicleID = "van-missing"
	if err := store.Create(ctx, r); !errors.Is(err, ErrUnknownVehicle) {
		t.Fatalf("got %v, want ErrUnknownVehicle", err)
	}

	r = testRental("r2", start, start.Add(time.Hour))
	r.CustomerID = "c-missing"
	if err := store.Create(ctx, r); !errors.Is(err, ErrUnknownCustomer) {
		t.Fatalf("got %v, want ErrUnknownCustomer", err)
	}
}
