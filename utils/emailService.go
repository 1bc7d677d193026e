package utils

import (
	"elearn/config"
	"fmt"
	"net/smtp"
	"strings"
)

// seam for tests
var smtpSendMail = smtp.SendMail

// SendEmail delivers an HTML email through the configured SMTP account.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: LearnSphere <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtpSendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all outbound templates
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #161D29; padding: 30px; text-align: center; }
			.header h1 { color: #FFD60A; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #161D29; line-height: 1.6; }
			.content h2 { color: #161D29; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #FFD60A; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LEARNSPHERE</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 LearnSphere. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// CourseEnrollmentEmailBody renders the enrollment confirmation template.
func CourseEnrollmentEmailBody(courseName, userName string) string {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations! You have successfully enrolled in <strong>%s</strong>.</p>
		<p>You can now access all the course content and start learning. Track your
		progress and complete all videos to finish the course.</p>
		<div class="info-box">
			<strong>Next Steps:</strong> Open your dashboard and start with the first video.
		</div>
	`, userName, courseName)

	return getEmailTemplate("Enrollment Successful", body)
}

// PaymentSuccessEmailBody renders the payment receipt template. Amount is in
// major currency units.
func PaymentSuccessEmailBody(userName string, amount float64, orderID, paymentID string) string {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We have received your payment of <strong>Rs. %.2f</strong>.</p>
		<div class="info-box">
			<strong>Order ID:</strong> %s<br>
			<strong>Payment ID:</strong> %s
		</div>
		<p>Your courses are now unlocked. Happy learning!</p>
	`, userName, amount, orderID, paymentID)

	return getEmailTemplate("Payment Received", body)
}
