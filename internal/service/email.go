package service

import (
	"context"
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"

	"motorent-backend/internal/domain"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewEmailService builds the SMTP-backed sender used for customer
// notifications.
func NewEmailService(host, port, username, password, from string) EmailService {
	p, _ := strconv.Atoi(port)
	return &emailService{
		host:     host,
		port:     p,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}

func (s *emailService) SendContractCreatedNotification(ctx context.Context, email, name string, contractID int32, totalPrice int64) error {
	body := fmt.Sprintf("Hello %s,\n\nYour rental contract #%d has been created. The total price is %d VND.\n\nPlease visit our office to sign the contract and pick up your motorbike.\n\nBest regards,\nThe MotoRent Team", name, contractID, totalPrice)
	return s.send(email, fmt.Sprintf("Rental Contract #%d Created", contractID), body)
}

func (s *emailService) SendContractActivatedNotification(ctx context.Context, email, name string, contractID int32) error {
	body := fmt.Sprintf("Hello %s,\n\nYour rental contract #%d is now active. Enjoy your ride and drive safely.\n\nBest regards,\nThe MotoRent Team", name, contractID)
	return s.send(email, fmt.Sprintf("Rental Contract #%d Activated", contractID), body)
}

func (s *emailService) SendContractCompletedNotification(ctx context.Context, email, name string, contractID int32, totalPrice int64) error {
	body := fmt.Sprintf("Hello %s,\n\nYour rental contract #%d has been completed. The total amount was %d VND.\n\nThank you for riding with us, we hope to see you again.\n\nBest regards,\nThe MotoRent Team", name, contractID, totalPrice)
	return s.send(email, fmt.Sprintf("Rental Contract #%d Completed", contractID), body)
}

func (s *emailService) SendContractCancelledNotification(ctx context.Context, email, name string, contractID int32, reason string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour rental contract #%d has been cancelled.", name, contractID)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nBest regards,\nThe MotoRent Team"
	return s.send(email, fmt.Sprintf("Rental Contract #%d Cancelled", contractID), body)
}

func (s *emailService) SendIncidentReportedNotification(ctx context.Context, email, name string, contractID int32, incidentType domain.IncidentType) error {
	body := fmt.Sprintf("Hello %s,\n\nAn incident (%s) has been recorded on your rental contract #%d. Our staff will contact you with the next steps.\n\nBest regards,\nThe MotoRent Team", name, incidentType, contractID)
	return s.send(email, fmt.Sprintf("Incident Recorded on Contract #%d", contractID), body)
}

func (s *emailService) SendPaymentReceivedNotification(ctx context.Context, email, name string, contractID int32, amount, outstanding int64) error {
	body := fmt.Sprintf("Hello %s,\n\nWe received your payment of %d VND for rental contract #%d.", name, amount, contractID)
	if outstanding > 0 {
		body += fmt.Sprintf("\n\nOutstanding balance: %d VND.", outstanding)
	} else {
		body += "\n\nYour contract is now fully paid."
	}
	body += "\n\nBest regards,\nThe MotoRent Team"
	return s.send(email, fmt.Sprintf("Payment Received for Contract #%d", contractID), body)
}

func (s *emailService) SendExpiryReminder(ctx context.Context, email, name string, contractID int32, endDate string) error {
	body := fmt.Sprintf("Hello %s,\n\nThis is a reminder that your rental contract #%d ends on %s. Please return the motorbike on time or contact us to extend your rental.\n\nBest regards,\nThe MotoRent Team", name, contractID, endDate)
	return s.send(email, fmt.Sprintf("Rental Contract #%d Ends Soon", contractID), body)
}
