package service

import (
	"context"
	"errors"
	"time"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/domain"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/ledger"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/repository"
)

var ErrNotAnAgent = errors.New("user is not an agent")

type reportService struct {
	propertyRepo    repository.PropertyRepository
	tenantRepo      repository.TenantRepository
	paymentRepo     repository.PaymentRepository
	userRepo        repository.UserRepository
	maintenanceRepo repository.MaintenanceRepository
}

func NewReportService(
	propertyRepo repository.PropertyRepository,
	tenantRepo repository.TenantRepository,
	paymentRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
	maintenanceRepo repository.MaintenanceRepository,
) ReportService {
	return &reportService{
		propertyRepo:    propertyRepo,
		tenantRepo:      tenantRepo,
		paymentRepo:     paymentRepo,
		userRepo:        userRepo,
		maintenanceRepo: maintenanceRepo,
	}
}

func (s *reportService) DashboardSummary(ctx context.Context, asOf time.Time) (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	properties, err := s.allProperties(ctx)
	if err != nil {
		return nil, err
	}
	summary.TotalProperties = int32(len(properties))
	for _, p := range properties {
		switch p.Status {
		case domain.PropertyStatusOccupied:
			summary.Occupied++
		case domain.PropertyStatusVacant:
			summary.Vacant++
		case domain.PropertyStatusUnderMaintenance:
			summary.UnderMaintenance++
		}
	}
	byID := make(map[int32]*domain.Property, len(properties))
	for i := range properties {
		byID[properties[i].ID] = &properties[i]
	}

	tenants, err := s.tenantRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	summary.TotalTenants = int32(len(tenants))
	for i := range tenants {
		tenant := &tenants[i]
		var property *domain.Property
		if tenant.PropertyID != nil {
			property = byID[*tenant.PropertyID]
		}
		payments, err := s.paymentRepo.ListByTenant(ctx, tenant.ID)
		if err != nil {
			return nil, err
		}
		switch ledger.ClassifyTenant(tenant, property, payments, asOf) {
		case ledger.StandingOverdue:
			summary.OverdueTenants++
			detail := ledger.ComputeOverdueDetail(tenant, property, payments, asOf)
			summary.OutstandingCents += detail.TotalDueCents
		case ledger.StandingUpcoming:
			summary.UpcomingTenants++
		}
	}

	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())
	periodPayments, err := s.paymentRepo.ListInPeriod(ctx, monthStart, asOf)
	if err != nil {
		return nil, err
	}
	for i := range periodPayments {
		if periodPayments[i].Qualifying() {
			summary.CollectedCents += periodPayments[i].AmountPaidCents
		}
	}

	_, pending, err := s.paymentRepo.ListByStatus(ctx, domain.PaymentStatusPendingApproval, 1, 1)
	if err != nil {
		return nil, err
	}
	summary.PendingApprovals = pending

	_, open, err := s.maintenanceRepo.ListByStatus(ctx, domain.MaintenanceStatusOpen, 1, 1)
	if err != nil {
		return nil, err
	}
	summary.OpenMaintenance = open

	return summary, nil
}

func (s *reportService) OverdueTenants(ctx context.Context, asOf time.Time) ([]OverdueTenant, error) {
	tenants, err := s.tenantRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	var overdue []OverdueTenant
	properties := make(map[int32]*domain.Property)
	for i := range tenants {
		tenant := &tenants[i]
		var property *domain.Property
		if tenant.PropertyID != nil {
			property = properties[*tenant.PropertyID]
			if property == nil {
				property, err = s.propertyRepo.GetByID(ctx, *tenant.PropertyID)
				if err != nil {
					return nil, err
				}
				properties[*tenant.PropertyID] = property
			}
		}
		payments, err := s.paymentRepo.ListByTenant(ctx, tenant.ID)
		if err != nil {
			return nil, err
		}
		if ledger.ClassifyTenant(tenant, property, payments, asOf) != ledger.StandingOverdue {
			continue
		}
		overdue = append(overdue, OverdueTenant{
			Tenant:   *tenant,
			Property: property,
			Detail:   ledger.ComputeOverdueDetail(tenant, property, payments, asOf),
		})
	}
	return overdue, nil
}

func (s *reportService) CommissionPayout(ctx context.Context, agentID int32, periodStart, periodEnd time.Time) (*CommissionReport, error) {
	agent, err := s.userRepo.GetByID(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if agent.Role != domain.RoleAgent {
		return nil, ErrNotAnAgent
	}
	properties, err := s.propertyRepo.ListByAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListInPeriod(ctx, periodStart, periodEnd.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	return &CommissionReport{
		Agent:       agent,
		PeriodStart: periodStart.Format("2006-01-02"),
		PeriodEnd:   periodEnd.Format("2006-01-02"),
		Summary:     ledger.AgentCommission(agent, properties, payments, periodStart, periodEnd),
	}, nil
}

func (s *reportService) allProperties(ctx context.Context) ([]domain.Property, error) {
	const pageSize = 500
	var all []domain.Property
	for page := int32(1); ; page++ {
		batch, total, err := s.propertyRepo.List(ctx, page, pageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if int32(len(all)) >= total || len(batch) == 0 {
			return all, nil
		}
	}
}
