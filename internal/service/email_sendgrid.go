package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"motorent-backend/internal/domain"
)

// sendGridEmailService is the SendGrid-backed sender. Selected over SMTP via
// the email.provider config key.
type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *sendGridEmailService) SendContractCreatedNotification(ctx context.Context, email, name string, contractID int32, totalPrice int64) error {
	body := fmt.Sprintf("Hello %s,\n\nYour rental contract #%d has been created. The total price is %d VND.\n\nPlease visit our office to sign the contract and pick up your motorbike.\n\nBest regards,\nThe MotoRent Team", name, contractID, totalPrice)
	return s.send(email, name, fmt.Sprintf("Rental Contract #%d Created", contractID), body)
}

func (s *sendGridEmailService) SendContractActivatedNotification(ctx context.Context, email, name string, contractID int32) error {
	body := fmt.Sprintf("Hello %s,\n\nYour rental contract #%d is now active. Enjoy your ride and drive safely.\n\nBest regards,\nThe MotoRent Team", name, contractID)
	return s.send(email, name, fmt.Sprintf("Rental Contract #%d Activated", contractID), body)
}

func (s *sendGridEmailService) SendContractCompletedNotification(ctx context.Context, email, name string, contractID int32, totalPrice int64) error {
	body := fmt.Sprintf("Hello %s,\n\nYour rental contract #%d has been completed. The total amount was %d VND.\n\nThank you for riding with us, we hope to see you again.\n\nBest regards,\nThe MotoRent Team", name, contractID, totalPrice)
	return s.send(email, name, fmt.Sprintf("Rental Contract #%d Completed", contractID), body)
}

func (s *sendGridEmailService) SendContractCancelledNotification(ctx context.Context, email, name string, contractID int32, reason string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour rental contract #%d has been cancelled.", name, contractID)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nBest regards,\nThe MotoRent Team"
	return s.send(email, name, fmt.Sprintf("Rental Contract #%d Cancelled", contractID), body)
}

func (s *sendGridEmailService) SendIncidentReportedNotification(ctx context.Context, email, name string, contractID int32, incidentType domain.IncidentType) error {
	body := fmt.Sprintf("Hello %s,\n\nAn incident (%s) has been recorded on your rental contract #%d. Our staff will contact you with the next steps.\n\nBest regards,\nThe MotoRent Team", name, incidentType, contractID)
	return s.send(email, name, fmt.Sprintf("Incident Recorded on Contract #%d", contractID), body)
}

func (s *sendGridEmailService) SendPaymentReceivedNotification(ctx context.Context, email, name string, contractID int32, amount, outstanding int64) error {
	body := fmt.Sprintf("Hello %s,\n\nWe received your payment of %d VND for rental contract #%d.", name, amount, contractID)
	if outstanding > 0 {
		body += fmt.Sprintf("\n\nOutstanding balance: %d VND.", outstanding)
	} else {
		body += "\n\nYour contract is now fully paid."
	}
	body += "\n\nBest regards,\nThe MotoRent Team"
	return s.send(email, name, fmt.Sprintf("Payment Received for Contract #%d", contractID), body)
}

func (s *sendGridEmailService) SendExpiryReminder(ctx context.Context, email, name string, contractID int32, endDate string) error {
	body := fmt.Sprintf("Hello %s,\n\nThis is a reminder that your rental contract #%d ends on %s. Please return the motorbike on time or contact us to extend your rental.\n\nBest regards,\nThe MotoRent Team", name, contractID, endDate)
	return s.send(email, name, fmt.Sprintf("Rental Contract #%d Ends Soon", contractID), body)
}
