// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/gomail.v2"

	"ai-interview-be/internal/entity"
)

type IEmailService interface {
	SendFeedbackReport(toEmail, problem string, feedback *entity.InterviewFeedback) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string // Added to construct links
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	// Get Frontend URL from ENV or default to a safe placeholder
	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) SendFeedbackReport(toEmail, problem string, feedback *entity.InterviewFeedback) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Your Interview Feedback: %s", problem))

	improvements := "<li>Keep practicing!</li>"
	if len(feedback.Improvements) > 0 {
		items := make([]string, 0, len(feedback.Improvements))
		for _, imp := range feedback.Improvements {
			items = append(items, fmt.Sprintf("<li>%s</li>", imp))
		}
		improvements = strings.Join(items, "")
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Interview Complete: %s</h2>
			<p>Here is a summary of your performance:</p>
			<h1 style="color: #4CAF50;">Overall: %d/10</h1>
			<p>Technical: %d/10 &middot; Communication: %d/10 &middot; Problem Solving: %d/10</p>
			<p>%s</p>
			<h3>Areas to improve</h3>
			<ul>%s</ul>
			<p><a href="%s/dashboard" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">View full report</a></p>
		</div>
	`, problem, feedback.OverallScore, feedback.TechnicalScore, feedback.CommunicationScore,
		feedback.ProblemSolvingScore, feedback.Summary, improvements, s.frontendURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send feedback report to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Feedback report sent to %s\n", toEmail)
	return nil
}
