package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/ledger"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/logger"
)

type sendgridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewSendGridEmailService sends real email through SendGrid.
func NewSendGridEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendgridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendgridEmailService) send(to, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err == nil && response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	logger.ExternalServiceResult("sendgrid", "send", err, "to", to)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *sendgridEmailService) SendTenantWelcome(ctx context.Context, email, name, propertyName string) error {
	subject := fmt.Sprintf("Welcome to %s", propertyName)
	body := fmt.Sprintf("Hello %s,\n\nYour tenancy at %s has been set up. You can now log in to the tenant portal to view your lease, balances and payment history.\n\nBest regards,\nThe EstateFlow Team", name, propertyName)
	return s.send(email, name, subject, body)
}

func (s *sendgridEmailService) SendPaymentReceipt(ctx context.Context, email, name string, amountCents int64, receiptNumber string) error {
	subject := "Payment received"
	body := fmt.Sprintf("Hello %s,\n\nWe have recorded your payment of %s. Your receipt number is %s.\n\nBest regards,\nThe EstateFlow Team", name, formatCents(amountCents), receiptNumber)
	return s.send(email, name, subject, body)
}

func (s *sendgridEmailService) SendPaymentApproved(ctx context.Context, email, name string, amountCents int64, receiptNumber string) error {
	subject := "Payment approved"
	body := fmt.Sprintf("Hello %s,\n\nYour submitted payment of %s (receipt %s) has been approved and applied to your balance.\n\nBest regards,\nThe EstateFlow Team", name, formatCents(amountCents), receiptNumber)
	return s.send(email, name, subject, body)
}

func (s *sendgridEmailService) SendPaymentRejected(ctx context.Context, email, name, reason string) error {
	subject := "Payment could not be confirmed"
	body := fmt.Sprintf("Hello %s,\n\nYour submitted payment could not be confirmed.", name)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nPlease contact your property manager.\n\nBest regards,\nThe EstateFlow Team"
	return s.send(email, name, subject, body)
}

func (s *sendgridEmailService) SendRentReminder(ctx context.Context, email, name, dueDate string, balanceCents int64) error {
	subject := "Rent due soon"
	body := fmt.Sprintf("Hello %s,\n\nThis is a reminder that your rent is due on %s. Your current outstanding balance is %s.\n\nBest regards,\nThe EstateFlow Team", name, dueDate, formatCents(balanceCents))
	return s.send(email, name, subject, body)
}

func (s *sendgridEmailService) SendOverdueNotice(ctx context.Context, email, name string, detail ledger.OverdueDetail) error {
	subject := "Outstanding balance on your tenancy"
	body := fmt.Sprintf(`Hello %s,

Our records show an outstanding balance on your tenancy:

  Rent due:    %s
  Deposit due: %s
  Total due:   %s

Please settle the outstanding amount or contact your property manager.

Best regards,
The EstateFlow Team`, name, formatCents(detail.RentDueCents), formatCents(detail.DepositDueCents), formatCents(detail.TotalDueCents))
	return s.send(email, name, subject, body)
}

func (s *sendgridEmailService) SendCommissionStatement(ctx context.Context, email, name, period string, summary ledger.CommissionSummary) error {
	subject := fmt.Sprintf("Commission statement — %s", period)
	body := fmt.Sprintf(`Hello %s,

Your commission statement for %s:

  Rent collected on your properties: %s
  Commission earned:                 %s

Best regards,
The EstateFlow Team`, name, period, formatCents(summary.TotalCollectedCents), formatCents(summary.CommissionEarnedCents))
	return s.send(email, name, subject, body)
}

// logEmailService logs instead of sending. Used in dev and tests where no
// SendGrid key is configured.
type logEmailService struct{}

func NewLogEmailService() EmailService {
	return &logEmailService{}
}

func (s *logEmailService) log(kind, email string, args ...any) error {
	all := append([]any{"kind", kind, "to", email}, args...)
	logger.Info("Simulated email send", all...)
	return nil
}

func (s *logEmailService) SendTenantWelcome(ctx context.Context, email, name, propertyName string) error {
	return s.log("tenant_welcome", email, "property", propertyName)
}

func (s *logEmailService) SendPaymentReceipt(ctx context.Context, email, name string, amountCents int64, receiptNumber string) error {
	return s.log("payment_receipt", email, "amount", formatCents(amountCents), "receipt", receiptNumber)
}

func (s *logEmailService) SendPaymentApproved(ctx context.Context, email, name string, amountCents int64, receiptNumber string) error {
	return s.log("payment_approved", email, "amount", formatCents(amountCents), "receipt", receiptNumber)
}

func (s *logEmailService) SendPaymentRejected(ctx context.Context, email, name, reason string) error {
	return s.log("payment_rejected", email, "reason", reason)
}

func (s *logEmailService) SendRentReminder(ctx context.Context, email, name, dueDate string, balanceCents int64) error {
	return s.log("rent_reminder", email, "due_date", dueDate, "balance", formatCents(balanceCents))
}

func (s *logEmailService) SendOverdueNotice(ctx context.Context, email, name string, detail ledger.OverdueDetail) error {
	return s.log("overdue_notice", email, "total_due", formatCents(detail.TotalDueCents), "days_overdue", detail.DaysOverdue)
}

func (s *logEmailService) SendCommissionStatement(ctx context.Context, email, name, period string, summary ledger.CommissionSummary) error {
	return s.log("commission_statement", email, "period", period, "earned", formatCents(summary.CommissionEarnedCents))
}

func formatCents(c int64) string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}
