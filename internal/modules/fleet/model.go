// README: Vehicle aggregate and brand definitions.
package fleet

import (
	"time"

	"vanrent/internal/modules/pricing"
	"vanrent/internal/types"
)

type Brand string

const (
	BrandRenaultMaster    Brand = "Renault Master"
	BrandOpelMovano       Brand = "Opel Movano"
	BrandFiatDucato       Brand = "Fiat Ducato"
	BrandPeugeotBoxer     Brand = "Peugeot Boxer"
	BrandMercedesSprinter Brand = "Mercedes Sprinter"
)

var allBrands = []Brand{
	BrandRenaultMaster,
	BrandOpelMovano,
	BrandFiatDucato,
	BrandPeugeotBoxer,
	BrandMercedesSprinter,
}

func ValidBrand(b Brand) bool {
	for _, known := range allBrands {
		if b == known {
			return true
		}
	}
	return false
}

type Vehicle struct {
	ID              types.ID         `json:"id"`
	Brand           Brand            `json:"brand"`
	LicensePlate    string           `json:"license_plate"`
	VIN             string           `json:"vin"`
	Year            int              `json:"year"`
	LastServiceDate *time.Time       `json:"last_service_date"`
	LastServiceCost *types.Money     `json:"last_service_cost"`
	STKDate         *time.Time       `json:"stk_date"`
	InsuranceInfo   *string          `json:"insurance_info"`
	VignetteUntil   *time.Time       `json:"vignette_until"`
	Pricing         pricing.RateCard `json:"pricing"`
	CreatedAt       time.Time        `json:"created_at"`
}

// attentionWindow is how far ahead the dashboard warns about expiring
// inspections and vignettes.
const attentionWindow = 30 * 24 * time.Hour

// dueSoon reports whether a deadline falls between the start of "now"'s day
// and 30 days out. Past deadlines are not "soon"; they are overdue and
// handled by the fleet screen itself.
func dueSoon(deadline *time.Time, now time.Time) bool {
	if deadline == nil {
		return false
	}
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	limit := dayStart.Add(attentionWindow)
	return !deadline.Before(dayStart) && !deadline.After(limit)
}

// InspectionDueSoon reports whether the vehicle's STK inspection deadline is
// within the attention window.
func (v Vehicle) InspectionDueSoon(now time.Time) bool {
	return dueSoon(v.STKDate, now)
}

// VignetteDueSoon reports whether the road-toll sticker expires within the
// attention window.
func (v Vehicle) VignetteDueSoon(now time.Time) bool {
	return dueSoon(v.VignetteUntil, now)
}
