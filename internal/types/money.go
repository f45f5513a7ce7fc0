// README: Common money value object used across modules.
package types

import (
	"fmt"
	"math"
	"strconv"
)

// Money is an amount of CZK in haléře (minor units).
// Rate cards and rental prices never mix currencies, so the currency is
// implied rather than carried per value.
type Money int64

// MoneyFromCZK converts a decimal CZK amount (e.g. 1234.5) to Money.
func MoneyFromCZK(v float64) Money {
	return Money(math.Round(v * 100))
}

// CZK returns the amount as decimal crowns.
func (m Money) CZK() float64 {
	return float64(m) / 100
}

// Format renders the amount with exactly two decimal places: "1234.50".
func (m Money) Format() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MulInt scales the amount by a whole factor (e.g. billed days).
func (m Money) MulInt(n int64) Money {
	return Money(int64(m) * n)
}

func (m Money) IsNegative() bool {
	return m < 0
}

// MarshalJSON emits a plain decimal number, matching the wire format the
// stored records use ("total_price": 1234.5).
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(m.CZK(), 'f', -1, 64)), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("money: %w", err)
	}
	*m = MoneyFromCZK(v)
	return nil
}
