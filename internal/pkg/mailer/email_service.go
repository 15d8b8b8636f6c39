package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendOTP(toEmail, otp string) error
	SendSessionSummary(toEmail, role string, totalScore float64, levelAverages []float64) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendOTP(toEmail, otp string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Verification Code")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to InterviewPrep!</h2>
			<p>Your verification code is:</p>
			<h1 style="color: #4CAF50; letter-spacing: 5px;">%s</h1>
			<p>This code will expire in 15 minutes.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, otp)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send OTP to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] OTP sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendSessionSummary(toEmail, role string, totalScore float64, levelAverages []float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Interview Results Are In")

	var rows strings.Builder
	labels := []string{"Starter", "Easy", "Medium", "Hard", "Excellent"}
	for i, avg := range levelAverages {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		rows.WriteString(fmt.Sprintf(
			`<tr><td style="padding: 4px 12px;">%s</td><td style="padding: 4px 12px;">%.1f / 10</td></tr>`,
			label, avg,
		))
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Mock Interview Complete</h2>
			<p>You finished a full mock interview for <strong>%s</strong>.</p>
			<h1 style="color: #007BFF;">%.1f%%</h1>
			<table style="border-collapse: collapse;">%s</table>
			<p>Log in to review detailed feedback per question.</p>
		</div>
	`, role, totalScore, rows.String())

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send summary to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Session summary sent to %s\n", toEmail)
	return nil
}
