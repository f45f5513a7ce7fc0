// README: Rate card definition attached to each vehicle.
package pricing

import (
	"errors"

	"vanrent/internal/types"
)

var ErrNegativeRate = errors.New("rate card entries must be non-negative")

// RateCard is the five-tier price table of one vehicle. The JSON keys match
// the stored record format ("4h", "6h", ...).
type RateCard struct {
	FourHour       types.Money `json:"4h"`
	SixHour        types.Money `json:"6h"`
	TwelveHour     types.Money `json:"12h"`
	TwentyFourHour types.Money `json:"24h"`
	Daily          types.Money `json:"daily"`
}

func (c RateCard) Validate() error {
	for _, m := range []types.Money{c.FourHour, c.SixHour, c.TwelveHour, c.TwentyFourHour, c.Daily} {
		if m.IsNegative() {
			return ErrNegativeRate
		}
	}
	return nil
}
