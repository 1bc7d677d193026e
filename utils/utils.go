package utils

import (
	"github.com/google/uuid"
)

// GenerateReceipt returns a receipt token that is unique per order request.
func GenerateReceipt() string {
	return "rcpt_" + uuid.NewString()
}
