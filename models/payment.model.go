package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PaymentStatusCreated  = "CREATED"
	PaymentStatusVerified = "VERIFIED"
	PaymentStatusFailed   = "FAILED"
)

// Payment records every gateway order we open and the outcome of its
// verification callback.
type Payment struct {
	gorm.Model
	UserID          uint           `json:"user_id" gorm:"index;not null"`
	OrderID         string         `json:"order_id" gorm:"index"`
	PaymentID       string         `json:"payment_id"`
	Amount          int64          `json:"amount"` // minor currency units (paise)
	Currency        string         `json:"currency" gorm:"default:'INR'"`
	Receipt         string         `json:"receipt"`
	Status          string         `json:"status" gorm:"default:'CREATED'"`
	GatewayResponse datatypes.JSON `json:"gateway_response,omitempty"`
	IsDeleted       bool           `gorm:"default:false"`
}
