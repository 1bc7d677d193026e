package utils

import (
	"elearn/config"
	"elearn/database"
	"elearn/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

const maxEmailAttempts = 5

// QueueEmail stores an outbound email in the outbox and, when SMTP is
// configured, attempts delivery in the background. The row is written before
// the attempt so a transport failure never loses the notification.
func QueueEmail(to, subject, body string) error {
	entry := models.EmailOutbox{
		ToAddress: to,
		Subject:   subject,
		Body:      body,
		Status:    models.EmailStatusPending,
	}

	if err := database.Database.Db.Create(&entry).Error; err != nil {
		log.Printf("[MAIL-OUTBOX] Failed to queue email to %s: %v", to, err)
		return err
	}

	if config.AppConfig.EmailSender != "" {
		go DeliverOutboxEmail(entry.ID)
	}

	return nil
}

// QueueEnrollmentEmail queues the enrollment confirmation for a course.
func QueueEnrollmentEmail(email, userName, courseName string) error {
	subject := "Successfully enrolled into " + courseName
	return QueueEmail(email, subject, CourseEnrollmentEmailBody(courseName, userName))
}

// QueuePaymentSuccessEmail queues the payment receipt email. amountMinor is
// in minor currency units as reported by the gateway.
func QueuePaymentSuccessEmail(email, userName string, amountMinor int64, orderID, paymentID string) error {
	subject := "Payment Received"
	return QueueEmail(email, subject, PaymentSuccessEmailBody(userName, float64(amountMinor)/100, orderID, paymentID))
}

// DeliverOutboxEmail attempts delivery of a single queued email and records
// the outcome on the row.
func DeliverOutboxEmail(id uint) {
	db := database.Database.Db

	var entry models.EmailOutbox
	if err := db.First(&entry, id).Error; err != nil {
		log.Printf("[MAIL-OUTBOX] Email %d not found: %v", id, err)
		return
	}
	if entry.Status == models.EmailStatusSent {
		return
	}

	sendErr := SendEmail([]string{entry.ToAddress}, entry.Subject, entry.Body)

	entry.Attempts++
	if sendErr != nil {
		entry.LastError = sendErr.Error()
		if entry.Attempts >= maxEmailAttempts {
			entry.Status = models.EmailStatusFailed
		}
		log.Printf("[MAIL-OUTBOX] Delivery attempt %d for email %d failed: %v", entry.Attempts, entry.ID, sendErr)
	} else {
		now := time.Now()
		entry.Status = models.EmailStatusSent
		entry.SentAt = &now
		entry.LastError = ""
	}

	if err := db.Save(&entry).Error; err != nil {
		log.Printf("[MAIL-OUTBOX] Failed to update email %d: %v", entry.ID, err)
	}
}

// DispatchPendingEmails drains queued emails, oldest first.
func DispatchPendingEmails() {
	db := database.Database.Db

	var pending []models.EmailOutbox
	if err := db.
		Where("status = ? AND attempts < ?", models.EmailStatusPending, maxEmailAttempts).
		Order("created_at asc").
		Limit(50).
		Find(&pending).Error; err != nil {
		log.Printf("[MAIL-OUTBOX] Error fetching pending emails: %v", err)
		return
	}

	if len(pending) == 0 {
		return
	}

	log.Printf("[MAIL-OUTBOX] Dispatching %d pending emails", len(pending))
	for _, entry := range pending {
		DeliverOutboxEmail(entry.ID)
	}
}

// InitializeOutboxScheduler sets up the outbox retry scheduler
func InitializeOutboxScheduler() {
	log.Println("[MAIL-OUTBOX] Initializing outbox scheduler...")

	c := cron.New()

	// Retry queued emails every 5 minutes
	c.AddFunc("*/5 * * * *", DispatchPendingEmails)

	c.Start()
	log.Println("[MAIL-OUTBOX] Outbox scheduler started - runs every 5 minutes")
}
