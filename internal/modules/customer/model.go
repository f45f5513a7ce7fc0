// README: Customer record definition.
package customer

import (
	"time"

	"vanrent/internal/types"
)

type Customer struct {
	ID                   types.ID  `json:"id"`
	FirstName            string    `json:"first_name"`
	LastName             string    `json:"last_name"`
	Email                string    `json:"email"`
	Phone                *string   `json:"phone"`
	IDCardNumber         *string   `json:"id_card_number"`
	DriversLicenseNumber *string   `json:"drivers_license_number"`
	CreatedAt            time.Time `json:"created_at"`
}
