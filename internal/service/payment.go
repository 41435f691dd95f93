package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/domain"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/ledger"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/logger"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/repository"
)

var (
	ErrPaymentNotPending = errors.New("payment is not pending approval")
	ErrAmountNotPositive = errors.New("payment amount must be positive")
)

type paymentService struct {
	paymentRepo  repository.PaymentRepository
	tenantRepo   repository.TenantRepository
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
	emailSvc     EmailService
	messenger    Messenger
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	tenantRepo repository.TenantRepository,
	propertyRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	messenger Messenger,
) PaymentService {
	return &paymentService{
		paymentRepo:  paymentRepo,
		tenantRepo:   tenantRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		emailSvc:     emailSvc,
		messenger:    messenger,
	}
}

// RecordPayment is the staff path: money already verified in hand, so the
// payment lands confirmed unless the caller says otherwise.
func (s *paymentService) RecordPayment(ctx context.Context, payment *domain.Payment, recordedBy int32) error {
	if payment.AmountPaidCents <= 0 {
		return ErrAmountNotPositive
	}
	tenant, err := s.tenantRepo.GetByID(ctx, payment.TenantID)
	if err != nil {
		return err
	}
	if tenant.PropertyID != nil {
		payment.PropertyID = *tenant.PropertyID
	}

	if payment.Status == "" {
		payment.Status = domain.PaymentStatusPaid
	}
	if payment.Type == domain.PaymentTypeDeposit && payment.Status == domain.PaymentStatusPaid {
		payment.Status = domain.PaymentStatusDeposit
	}
	payment.RecordedBy = &recordedBy
	payment.ReceiptNumber = newReceiptNumber()
	payment.Date = time.Now()

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return err
	}

	if payment.Qualifying() && tenant.Email != "" {
		_ = s.emailSvc.SendPaymentReceipt(ctx, tenant.Email, tenant.Name, payment.AmountPaidCents, payment.ReceiptNumber)
	}
	if tenant.UserID != nil {
		_ = s.messenger.SendPush(ctx, *tenant.UserID, "Payment recorded",
			fmt.Sprintf("A payment of %s was recorded on your account", formatCents(payment.AmountPaidCents)),
			map[string]string{"type": "PAYMENT_RECORDED", "payment_id": fmt.Sprintf("%d", payment.ID)})
	}
	return nil
}

// SubmitTenantPayment is the self-service path. Whatever the caller set,
// the payment enters the approval queue unconfirmed; it reduces no balance
// until a manager approves it.
func (s *paymentService) SubmitTenantPayment(ctx context.Context, payment *domain.Payment) error {
	if payment.AmountPaidCents <= 0 {
		return ErrAmountNotPositive
	}
	tenant, err := s.tenantRepo.GetByID(ctx, payment.TenantID)
	if err != nil {
		return err
	}
	if tenant.PropertyID != nil {
		payment.PropertyID = *tenant.PropertyID
	}

	payment.Status = domain.PaymentStatusPendingApproval
	payment.RecordedBy = nil
	payment.ReceiptNumber = newReceiptNumber()
	payment.Date = time.Now()

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return err
	}

	// Alert the property managers that something is waiting in the queue.
	managers, err := s.userRepo.ListByRole(ctx, domain.RolePropertyManager)
	if err != nil {
		logger.Warn("Failed to list managers for approval alert", "error", err)
		return nil
	}
	for _, m := range managers {
		_ = s.messenger.SendPush(ctx, m.ID, "Payment awaiting approval",
			fmt.Sprintf("%s submitted a payment of %s", tenant.Name, formatCents(payment.AmountPaidCents)),
			map[string]string{"type": "PAYMENT_SUBMITTED", "payment_id": fmt.Sprintf("%d", payment.ID)})
	}
	return nil
}

func (s *paymentService) ApprovePayment(ctx context.Context, approverID, paymentID int32) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != domain.PaymentStatusPendingApproval {
		return nil, ErrPaymentNotPending
	}

	if payment.Type == domain.PaymentTypeDeposit {
		payment.Status = domain.PaymentStatusDeposit
	} else {
		payment.Status = domain.PaymentStatusPaid
	}
	payment.RecordedBy = &approverID
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	tenant, err := s.tenantRepo.GetByID(ctx, payment.TenantID)
	if err != nil {
		logger.ErrorContext(ctx, "Approved payment but could not load tenant for notification", "payment_id", payment.ID, "error", err)
		return payment, nil
	}
	if tenant.Email != "" {
		_ = s.emailSvc.SendPaymentApproved(ctx, tenant.Email, tenant.Name, payment.AmountPaidCents, payment.ReceiptNumber)
	}
	if tenant.UserID != nil {
		_ = s.messenger.SendPush(ctx, *tenant.UserID, "Payment approved",
			fmt.Sprintf("Your payment of %s was approved", formatCents(payment.AmountPaidCents)),
			map[string]string{"type": "PAYMENT_APPROVED", "payment_id": fmt.Sprintf("%d", payment.ID)})
	}
	return payment, nil
}

func (s *paymentService) RejectPayment(ctx context.Context, approverID, paymentID int32, reason string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != domain.PaymentStatusPendingApproval {
		return nil, ErrPaymentNotPending
	}

	payment.Status = domain.PaymentStatusUnpaid
	payment.RecordedBy = &approverID
	if reason != "" {
		note := fmt.Sprintf("Rejected: %s", reason)
		if payment.Notes == "" {
			payment.Notes = note
		} else {
			payment.Notes = strings.TrimRight(payment.Notes, "\n") + "\n" + note
		}
	}
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	tenant, err := s.tenantRepo.GetByID(ctx, payment.TenantID)
	if err == nil {
		if tenant.Email != "" {
			_ = s.emailSvc.SendPaymentRejected(ctx, tenant.Email, tenant.Name, reason)
		}
		if tenant.UserID != nil {
			_ = s.messenger.SendPush(ctx, *tenant.UserID, "Payment rejected",
				"Your submitted payment could not be confirmed. Please contact your property manager.",
				map[string]string{"type": "PAYMENT_REJECTED", "payment_id": fmt.Sprintf("%d", payment.ID)})
		}
	}
	return payment, nil
}

// UpdatePayment edits a payment's details in place. The receipt number and
// creation date never change; status transitions go through Approve/Reject.
func (s *paymentService) UpdatePayment(ctx context.Context, payment *domain.Payment) error {
	if payment.AmountPaidCents <= 0 {
		return ErrAmountNotPositive
	}
	existing, err := s.paymentRepo.GetByID(ctx, payment.ID)
	if err != nil {
		return err
	}
	payment.Status = existing.Status
	payment.ReceiptNumber = existing.ReceiptNumber
	payment.Date = existing.Date
	return s.paymentRepo.Update(ctx, payment)
}

func (s *paymentService) GetPayment(ctx context.Context, id int32) (*domain.Payment, error) {
	return s.paymentRepo.GetByID(ctx, id)
}

func (s *paymentService) ListTenantPayments(ctx context.Context, tenantID int32) ([]domain.Payment, error) {
	return s.paymentRepo.ListByTenant(ctx, tenantID)
}

func (s *paymentService) ListPendingApprovals(ctx context.Context, page, pageSize int32) ([]domain.Payment, int32, error) {
	return s.paymentRepo.ListByStatus(ctx, domain.PaymentStatusPendingApproval, page, pageSize)
}

// BalancePreview answers "what would the balance be if this amount lands".
// When previewing an edit, excludePaymentID carries the payment being edited
// so its old amount is not double counted; zero means a brand new payment.
func (s *paymentService) BalancePreview(ctx context.Context, tenantID int32, obligation ledger.ObligationType, amountCents int64, excludePaymentID int32) (*PaymentPreview, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	var property *domain.Property
	if tenant.PropertyID != nil {
		property, err = s.propertyRepo.GetByID(ctx, *tenant.PropertyID)
		if err != nil {
			return nil, err
		}
	}
	payments, err := s.paymentRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	current := ledger.ComputeBalance(tenant, property, payments, obligation, excludePaymentID)
	return &PaymentPreview{
		Current:        current,
		ProjectedCents: ledger.ProjectedBalance(current.BalanceCents, amountCents),
	}, nil
}

func newReceiptNumber() string {
	return "RCT-" + strings.ToUpper(uuid.New().String()[:8])
}
