package checkout

import (
	"strings"

	"github.com/gearstore/gearstore-api/internal/models"
)

// digits strips everything but 0-9 from s.
func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCardNumber groups the card digits four at a time
// ("4242424242424242" -> "4242 4242 4242 4242").
func FormatCardNumber(value string) string {
	d := digits(value)
	var b strings.Builder
	for i := 0; i < len(d); i += 4 {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + 4
		if end > len(d) {
			end = len(d)
		}
		b.WriteString(d[i:end])
	}
	return b.String()
}

// FormatExpiry renders the expiry digits as MM/YY, truncating anything past
// four digits.
func FormatExpiry(value string) string {
	d := digits(value)
	if len(d) <= 2 {
		return d
	}
	if len(d) > 4 {
		d = d[:4]
	}
	return d[:2] + "/" + d[2:]
}

// RedactCard reduces the raw payment fields to the descriptor stored on an
// order: the type and the card's last four digits.
func RedactCard(p PaymentDetails) models.PaymentMethod {
	d := digits(p.CardNumber)
	lastFour := d
	if len(d) > 4 {
		lastFour = d[len(d)-4:]
	}
	return models.PaymentMethod{Type: "credit_card", LastFour: lastFour}
}
