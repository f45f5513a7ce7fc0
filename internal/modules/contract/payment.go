// README: Payment payload derivation for the contract QR code (SPAYD).
package contract

import (
	"fmt"
	"strings"
	"unicode"

	"vanrent/internal/modules/fleet"
	"vanrent/internal/modules/rental"
)

const (
	currencyCode = "CZK"
	messageTag   = "PRONAJEM"
	// Czech bank variable symbols carry at most 10 digits.
	maxReferenceDigits = 10
)

// PaymentPayload holds the derived fields rendered on the contract's
// payment block. Building it has no side effects; identical inputs always
// derive the identical payload.
type PaymentPayload struct {
	Amount    string `json:"amount"`
	Account   string `json:"account"`
	Reference string `json:"reference"`
	Message   string `json:"message"`
}

// BuildPaymentPayload derives the payment fields from a committed rental.
// The amount restates the frozen total price and is never re-quoted from
// the rate card.
func BuildPaymentPayload(r rental.Rental, v fleet.Vehicle, bankAccount string) PaymentPayload {
	return PaymentPayload{
		Amount:    r.TotalPrice.Format(),
		Account:   stripWhitespace(bankAccount),
		Reference: digitsOnly(string(r.ID), maxReferenceDigits),
		Message:   messageTag + "-" + v.LicensePlate,
	}
}

// SPAYD renders the payload as a Short Payment Descriptor string, the
// format Czech banking apps read from QR codes.
func (p PaymentPayload) SPAYD() string {
	return fmt.Sprintf("SPD*1.0*ACC:%s*AM:%s*CC:%s*X-VS:%s*MSG:%s",
		p.Account, p.Amount, currencyCode, p.Reference, p.Message)
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// digitsOnly keeps the digits of s in order, truncated to max. Shorter
// results are used as-is, without padding.
func digitsOnly(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == max {
				break
			}
		}
	}
	return b.String()
}
