package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCardNumber(t *testing.T) {
	assert.Equal(t, "4242 4242 4242 4242", FormatCardNumber("4242424242424242"))
	assert.Equal(t, "4242 42", FormatCardNumber("4242-42"))
	assert.Equal(t, "", FormatCardNumber("no digits"))
}

func TestFormatExpiry(t *testing.T) {
	assert.Equal(t, "1", FormatExpiry("1"))
	assert.Equal(t, "12", FormatExpiry("12"))
	assert.Equal(t, "12/2", FormatExpiry("122"))
	assert.Equal(t, "12/27", FormatExpiry("1227"))
	assert.Equal(t, "12/27", FormatExpiry("12/27/99"))
}

func TestRedactCard(t *testing.T) {
	method := RedactCard(PaymentDetails{CardNumber: "4242 4242 4242 4242"})
	assert.Equal(t, "credit_card", method.Type)
	assert.Equal(t, "4242", method.LastFour)
}
