// README: Tier selection and daily rounding tests for the quote engine.
package pricing

import (
	"testing"
	"time"

	"vanrent/internal/types"
)

func czk(v float64) types.Money { return types.MoneyFromCZK(v) }

func testCard() RateCard {
	return RateCard{
		FourHour:       czk(500),
		SixHour:        czk(700),
		TwelveHour:     czk(1000),
		TwentyFourHour: czk(1500),
		Daily:          czk(1000),
	}
}

func TestQuote(t *testing.T) {
	card := testCard()

	tests := []struct {
		name string
		d    time.Duration
		want types.Money
	}{
		{"zero duration", 0, 0},
		{"negative duration", -time.Hour, 0},
		{"short rental", 2 * time.Hour, czk(500)},
		{"exactly 4h uses 4h tier", 4 * time.Hour, czk(500)},
		{"just over 4h uses 6h tier", 4*time.Hour + time.Second, czk(700)},
		{"exactly 6h", 6 * time.Hour, czk(700)},
		{"exactly 12h", 12 * time.Hour, czk(1000)},
		{"just over 12h", 12*time.Hour + time.Minute, czk(1500)},
		{"exactly 24h uses 24h tier", 24 * time.Hour, czk(1500)},
		{"25h bills two days", 25 * time.Hour, czk(2000)},
		{"48h bills two days", 48 * time.Hour, czk(2000)},
		{"just over 48h bills three days", 48*time.Hour + 36*time.Second, czk(3000)},
		{"a week", 7 * 24 * time.Hour, czk(7000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quote(tt.d, card); got != tt.want {
				t.Errorf("Quote(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

// TestQuoteMonotonic: with non-decreasing tiers the price never drops as the
// rental gets longer.
func TestQuoteMonotonic(t *testing.T) {
	card := testCard()
	var prev types.Money
	for d := 30 * time.Minute; d <= 72*time.Hour; d += 30 * time.Minute {
		got := Quote(d, card)
		if got < prev {
			t.Fatalf("price dropped at %v: %v < %v", d, got, prev)
		}
		prev = got
	}
}

func TestRateCardValidate(t *testing.T) {
	card := testCard()
	if err := card.Validate(); err != nil {
		t.Fatalf("valid card rejected: %v", err)
	}

	card.Daily = czk(-1)
	if err := card.Validate(); err != ErrNegativeRate {
		t.Fatalf("expected ErrNegativeRate, got %v", err)
	}
}
