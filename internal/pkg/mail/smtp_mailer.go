package mail

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/AndikaPrasetya/NadaMusik/app/models"
	"github.com/AndikaPrasetya/NadaMusik/internal/pkg/env"
)

// SendMail sends an HTML email via SMTP
func SendMail(to string, subject string, body string) error {
	host := env.GetEnv("SMTP_HOST", "")
	port := env.GetEnv("SMTP_PORT", "")
	username := env.GetEnv("SMTP_USERNAME", "")
	password := env.GetEnv("SMTP_PASSWORD", "")
	sender := env.GetEnv("SMTP_SENDER", "")

	if sender == "" {
		sender = fmt.Sprintf("no-reply@%s", "localhost")
		log.Printf("SMTP_SENDER not set, using default sender: %s", sender)
	}

	var auth smtp.Auth
	if username != "" && password != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	addr := fmt.Sprintf("%s:%s", host, port)

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", sender, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			body,
	)

	err := smtp.SendMail(addr, auth, sender, []string{to}, msg)
	if err != nil {
		log.Printf("SMTP send error: %v", err)
	} else {
		log.Printf("Email sent to %s via %s", to, addr)
	}
	return err
}

// SendActivationMail sends the account activation link to a new student.
func SendActivationMail(user *models.User) error {
	base := env.GetEnv("PUBLIC_DOMAIN", "http://localhost:4000")
	link := fmt.Sprintf("%s/activate/%s", base, user.ActivationToken)
	body := fmt.Sprintf(
		"<p>Halo %s,</p><p>Selamat datang di NadaMusik! Klik tautan berikut untuk mengaktifkan akunmu:</p><p><a href=\"%s\">%s</a></p>",
		user.Name, link, link,
	)
	return SendMail(user.Email, "Aktivasi akun NadaMusik", body)
}

// SendBillIssuedMail notifies a student that a new bill is waiting.
func SendBillIssuedMail(user *models.User, bill *models.Bill) error {
	body := fmt.Sprintf(
		"<p>Halo %s,</p><p>Tagihan %s sebesar Rp %d telah diterbitkan, jatuh tempo %s.</p>",
		user.Name, bill.Month, bill.Amount, bill.DueDate.Format("02-01-2006"),
	)
	return SendMail(user.Email, fmt.Sprintf("Tagihan %s", bill.Month), body)
}
