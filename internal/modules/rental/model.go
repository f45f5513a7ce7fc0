// README: Rental aggregate and lifecycle status definitions.
package rental

import (
	"time"

	"vanrent/internal/types"
)

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Rental reserves one vehicle for one customer over [StartAt, EndAt) at a
// price frozen when the booking was committed. Status is derived from the
// clock on every read; the stored column is only a write-time cache.
type Rental struct {
	ID         types.ID    `json:"id"`
	VehicleID  types.ID    `json:"vehicle_id"`
	CustomerID types.ID    `json:"customer_id"`
	StartAt    time.Time   `json:"start_date"`
	EndAt      time.Time   `json:"end_date"`
	TotalPrice types.Money `json:"total_price"`
	Status     Status      `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
}
