// README: Tiered price computation from rental duration and a rate card.
package pricing

import (
	"math"
	"time"

	"vanrent/internal/types"
)

// Tier bounds are inclusive on the high side: a rental of exactly 4h bills
// the 4h rate, 4h1s bills the 6h rate, and anything past 24h bills whole
// days rounded up against the daily rate.
func Quote(d time.Duration, card RateCard) types.Money {
	hours := d.Hours()
	switch {
	case hours <= 0:
		// Invalid window; callers reject it before committing, the
		// quote just degrades to zero.
		return 0
	case hours <= 4:
		return card.FourHour
	case hours <= 6:
		return card.SixHour
	case hours <= 12:
		return card.TwelveHour
	case hours <= 24:
		return card.TwentyFourHour
	default:
		days := int64(math.Ceil(hours / 24))
		return card.Daily.MulInt(days)
	}
}
