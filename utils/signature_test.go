package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyPaymentSignatureRoundTrip(t *testing.T) {
	secret := "rzp_test_secret"

	sig := SignPayment("order_abc123", "pay_xyz789", secret)

	assert.True(t, VerifyPaymentSignature("order_abc123", "pay_xyz789", sig, secret))
}

func TestVerifyPaymentSignatureEmptyFields(t *testing.T) {
	secret := "rzp_test_secret"
	sig := SignPayment("order_abc123", "pay_xyz789", secret)

	assert.False(t, VerifyPaymentSignature("", "pay_xyz789", sig, secret))
	assert.False(t, VerifyPaymentSignature("order_abc123", "", sig, secret))
	assert.False(t, VerifyPaymentSignature("order_abc123", "pay_xyz789", "", secret))
	assert.False(t, VerifyPaymentSignature("order_abc123", "pay_xyz789", sig, ""))
}

func TestVerifyPaymentSignatureTamperedIDs(t *testing.T) {
	secret := "rzp_test_secret"
	sig := SignPayment("order_abc123", "pay_xyz789", secret)

	// Any altered byte in either identifier must fail verification
	assert.False(t, VerifyPaymentSignature("order_abc124", "pay_xyz789", sig, secret))
	assert.False(t, VerifyPaymentSignature("order_abc123", "pay_xyz780", sig, secret))
	assert.False(t, VerifyPaymentSignature("order_abc123", "pay_xyz789", sig, "wrong_secret"))
}

func TestVerifyPaymentSignatureRejectsPartialMatch(t *testing.T) {
	secret := "rzp_test_secret"
	sig := SignPayment("order_abc123", "pay_xyz789", secret)

	// Truncated or extended signatures never pass
	assert.False(t, VerifyPaymentSignature("order_abc123", "pay_xyz789", sig[:len(sig)-1], secret))
	assert.False(t, VerifyPaymentSignature("order_abc123", "pay_xyz789", sig+"00", secret))
}
