package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	EmailStatusPending = "PENDING"
	EmailStatusSent    = "SENT"
	EmailStatusFailed  = "FAILED"
)

// EmailOutbox queues outbound mail so a slow or failing SMTP server never
// fails the request that triggered the notification. Rows are written after
// the triggering transaction commits and drained by the outbox scheduler.
type EmailOutbox struct {
	gorm.Model
	ToAddress string     `json:"to_address" gorm:"not null"`
	Subject   string     `json:"subject"`
	Body      string     `json:"body"`
	Status    string     `json:"status" gorm:"default:'PENDING';index"`
	Attempts  int        `json:"attempts" gorm:"default:0"`
	LastError string     `json:"last_error"`
	SentAt    *time.Time `json:"sent_at"`
}
