package service

import (
	"context"
	"time"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/domain"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/ledger"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, phone, password string, role domain.Role) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type PropertyService interface {
	AddProperty(ctx context.Context, property *domain.Property) error
	GetProperty(ctx context.Context, id int32) (*domain.Property, error)
	UpdateProperty(ctx context.Context, property *domain.Property) error
	DeleteProperty(ctx context.Context, id int32) error
	ListProperties(ctx context.Context, page, pageSize int32) ([]domain.Property, int32, error)
	SearchProperties(ctx context.Context, query string, status domain.PropertyStatus, page, pageSize int32) ([]domain.Property, int32, error)
}

// TenantBalances is the full financial picture for one tenant, derived
// through the ledger engine from a snapshot of the payment history.
type TenantBalances struct {
	Tenant   *domain.Tenant        `json:"tenant"`
	Property *domain.Property      `json:"property,omitempty"`
	Rent     ledger.Balance        `json:"rent"`
	Deposit  ledger.Balance        `json:"deposit"`
	Standing ledger.Standing       `json:"standing"`
	Overdue  *ledger.OverdueDetail `json:"overdue,omitempty"`
}

type TenantService interface {
	CreateTenant(ctx context.Context, tenant *domain.Tenant) error
	GetTenant(ctx context.Context, id int32) (*domain.Tenant, error)
	GetTenantBalances(ctx context.Context, id int32) (*TenantBalances, error)
	UpdateTenant(ctx context.Context, tenant *domain.Tenant) error
	ReassignTenant(ctx context.Context, tenantID, newPropertyID int32) error
	RemoveTenant(ctx context.Context, id int32) error
	ListTenants(ctx context.Context, page, pageSize int32) ([]domain.Tenant, int32, error)
}

// PaymentPreview shows a payment form what the balance looks like now and
// what it would look like after the amount being typed.
type PaymentPreview struct {
	Current        ledger.Balance `json:"current"`
	ProjectedCents int64          `json:"projected_cents"`
}

type PaymentService interface {
	RecordPayment(ctx context.Context, payment *domain.Payment, recordedBy int32) error
	SubmitTenantPayment(ctx context.Context, payment *domain.Payment) error
	ApprovePayment(ctx context.Context, approverID, paymentID int32) (*domain.Payment, error)
	RejectPayment(ctx context.Context, approverID, paymentID int32, reason string) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, payment *domain.Payment) error
	GetPayment(ctx context.Context, id int32) (*domain.Payment, error)
	ListTenantPayments(ctx context.Context, tenantID int32) ([]domain.Payment, error)
	ListPendingApprovals(ctx context.Context, page, pageSize int32) ([]domain.Payment, int32, error)
	BalancePreview(ctx context.Context, tenantID int32, obligation ledger.ObligationType, amountCents int64, excludePaymentID int32) (*PaymentPreview, error)
}

// DashboardSummary backs the landing-page cards.
type DashboardSummary struct {
	TotalProperties  int32 `json:"total_properties"`
	Occupied         int32 `json:"occupied"`
	Vacant           int32 `json:"vacant"`
	UnderMaintenance int32 `json:"under_maintenance"`
	TotalTenants     int32 `json:"total_tenants"`
	OverdueTenants   int32 `json:"overdue_tenants"`
	UpcomingTenants  int32 `json:"upcoming_tenants"`
	CollectedCents   int64 `json:"collected_cents"` // confirmed rent+deposit this period
	OutstandingCents int64 `json:"outstanding_cents"`
	PendingApprovals int32 `json:"pending_approvals"`
	OpenMaintenance  int32 `json:"open_maintenance"`
}

// OverdueTenant pairs a tenant with what they owe, for alert lists.
type OverdueTenant struct {
	Tenant   domain.Tenant        `json:"tenant"`
	Property *domain.Property     `json:"property,omitempty"`
	Detail   ledger.OverdueDetail `json:"detail"`
}

// CommissionReport is the suggested payout for an agent over a period.
type CommissionReport struct {
	Agent       *domain.User             `json:"agent"`
	PeriodStart string                   `json:"period_start"`
	PeriodEnd   string                   `json:"period_end"`
	Summary     ledger.CommissionSummary `json:"summary"`
}

type ReportService interface {
	DashboardSummary(ctx context.Context, asOf time.Time) (*DashboardSummary, error)
	OverdueTenants(ctx context.Context, asOf time.Time) ([]OverdueTenant, error)
	CommissionPayout(ctx context.Context, agentID int32, periodStart, periodEnd time.Time) (*CommissionReport, error)
}

type MaintenanceService interface {
	OpenRequest(ctx context.Context, req *domain.MaintenanceRequest) error
	StartRequest(ctx context.Context, id int32, assignedTo int32) (*domain.MaintenanceRequest, error)
	ResolveRequest(ctx context.Context, id int32, costCents int64) (*domain.MaintenanceRequest, error)
	GetRequest(ctx context.Context, id int32) (*domain.MaintenanceRequest, error)
	ListByProperty(ctx context.Context, propertyID int32) ([]domain.MaintenanceRequest, error)
	ListByStatus(ctx context.Context, status domain.MaintenanceStatus, page, pageSize int32) ([]domain.MaintenanceRequest, int32, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type EmailService interface {
	SendTenantWelcome(ctx context.Context, email, name, propertyName string) error
	SendPaymentReceipt(ctx context.Context, email, name string, amountCents int64, receiptNumber string) error
	SendPaymentApproved(ctx context.Context, email, name string, amountCents int64, receiptNumber string) error
	SendPaymentRejected(ctx context.Context, email, name, reason string) error
	SendRentReminder(ctx context.Context, email, name, dueDate string, balanceCents int64) error
	SendOverdueNotice(ctx context.Context, email, name string, detail ledger.OverdueDetail) error
	SendCommissionStatement(ctx context.Context, email, name, period string, summary ledger.CommissionSummary) error
}

// Messenger covers the non-email channels. Delivery is simulated: providers
// are not integrated, sends are logged and surfaced as in-app notifications.
type Messenger interface {
	SendSMS(ctx context.Context, phone, message string) error
	SendPush(ctx context.Context, userID int32, title, message string, attributes map[string]string) error
}
