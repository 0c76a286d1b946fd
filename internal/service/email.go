package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"equiprent-backend/internal/domain"
)

type emailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendDueReminder(ctx context.Context, due *domain.DueRental) error {
	subject := fmt.Sprintf("Rental return reminder: %s", due.Equipment.Name)
	if due.Overdue {
		subject = fmt.Sprintf("Rental overdue: %s", due.Equipment.Name)
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Hello %s,\n\n", due.Customer.Name)
	switch {
	case due.Overdue:
		fmt.Fprintf(&body, "Your rental of %s was due on %s and is now overdue.\n",
			due.Equipment.Name, due.Rental.EndDate.Format("2006-01-02"))
	case due.DaysRemaining <= 0:
		fmt.Fprintf(&body, "Your rental of %s is due today.\n", due.Equipment.Name)
	default:
		fmt.Fprintf(&body, "Your rental of %s is due in %d day(s), on %s.\n",
			due.Equipment.Name, due.DaysRemaining, due.Rental.EndDate.Format("2006-01-02"))
	}
	fmt.Fprintf(&body, "\nOutstanding amount: %s\n", due.Rental.TotalPrice.StringFixed(2))
	body.WriteString("\nPlease get in touch to arrange the return or a renewal.\n")

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(due.Customer.Name, due.Customer.Email)
	message := mail.NewSingleEmail(from, subject, to, body.String(), "")

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sending due reminder: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sending due reminder: sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}
