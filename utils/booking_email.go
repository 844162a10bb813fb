package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// SendBookingConfirmationEmail sends the guest their booking summary. With
// no SMTP configuration it logs a mock line and succeeds, so local setups
// keep working.
func SendBookingConfirmationEmail(
	recipientEmail, guestName string,
	bookingID uint,
	roomNumber, roomTypeName string,
	checkIn, checkOut string,
	nights int,
	totalFormatted string,
) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := EnvOrDefault("SMTP_FROM_NAME", "Shivashray Banaras")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] booking confirmation to:%s booking:%d room:%s total:%s",
			recipientEmail, bookingID, roomNumber, totalFormatted)
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}
	guestName = safe(guestName)
	roomNumber = safe(roomNumber)
	roomTypeName = safe(roomTypeName)

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	to := []string{recipientEmail}
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	subject := fmt.Sprintf("Your booking at Shivashray Banaras (#%d)", bookingID)
	boundary := "----=_BOOKING_EMAIL_BOUNDARY"

	plainBody := fmt.Sprintf(
		"Namaste %s,\n\n"+
			"Your booking request has been received.\n\n"+
			"Booking ID: %d\n"+
			"Room: %s (%s)\n"+
			"Check-in: %s\n"+
			"Check-out: %s\n"+
			"Nights: %d\n"+
			"Total: %s\n\n"+
			"Our team will confirm your reservation shortly.\n",
		guestName, bookingID, roomNumber, roomTypeName, checkIn, checkOut, nights, totalFormatted,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Booking received</title>
<style>
body { background:#faf7f2; font-family:Arial, Helvetica, sans-serif; color:#222; }
.container { max-width:640px; margin:20px auto; }
.card { background:#fff; border:1px solid #efe6d8; padding:24px; border-radius:8px; }
.total { font-size:18px; font-weight:bold; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h2>Booking received</h2>
    <p>Namaste %s,</p>
    <p>Your booking request has been received.</p>
    <p>Booking ID: <strong>%d</strong><br>
    Room: %s (%s)<br>
    Check-in: %s<br>
    Check-out: %s<br>
    Nights: %d</p>
    <p class="total">Total: %s</p>
    <p>Our team will confirm your reservation shortly.</p>
  </div>
</div>
</body>
</html>`,
		guestName, bookingID, roomNumber, roomTypeName, checkIn, checkOut, nights, totalFormatted,
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipientEmail))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	if err := smtp.SendMail(addr, auth, smtpUser, to, []byte(sb.String())); err != nil {
		log.Printf("Failed to send booking confirmation to %s: %v", recipientEmail, err)
		return err
	}

	log.Printf("Booking confirmation sent to %s", recipientEmail)
	return nil
}
