package service

import (
	"context"
	"errors"
	"time"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/domain"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/ledger"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/repository"
)

var ErrPropertyNotVacant = errors.New("property is not vacant")

type tenantService struct {
	tenantRepo   repository.TenantRepository
	propertyRepo repository.PropertyRepository
	paymentRepo  repository.PaymentRepository
	emailSvc     EmailService
}

func NewTenantService(
	tenantRepo repository.TenantRepository,
	propertyRepo repository.PropertyRepository,
	paymentRepo repository.PaymentRepository,
	emailSvc EmailService,
) TenantService {
	return &tenantService{
		tenantRepo:   tenantRepo,
		propertyRepo: propertyRepo,
		paymentRepo:  paymentRepo,
		emailSvc:     emailSvc,
	}
}

func (s *tenantService) CreateTenant(ctx context.Context, tenant *domain.Tenant) error {
	var property *domain.Property
	if tenant.PropertyID != nil {
		p, err := s.propertyRepo.GetByID(ctx, *tenant.PropertyID)
		if err != nil {
			return err
		}
		if p.Status != domain.PropertyStatusVacant {
			return ErrPropertyNotVacant
		}
		property = p
	}

	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return err
	}

	if property != nil {
		if err := s.propertyRepo.UpdateStatus(ctx, property.ID, domain.PropertyStatusOccupied); err != nil {
			return err
		}
		if tenant.Email != "" {
			_ = s.emailSvc.SendTenantWelcome(ctx, tenant.Email, tenant.Name, property.Name)
		}
	}
	return nil
}

func (s *tenantService) GetTenant(ctx context.Context, id int32) (*domain.Tenant, error) {
	return s.tenantRepo.GetByID(ctx, id)
}

// GetTenantBalances derives the tenant's full financial picture from the
// payment history. An orphaned tenant (no property) gets zero balances and
// N/A standing rather than an error.
func (s *tenantService) GetTenantBalances(ctx context.Context, id int32) (*TenantBalances, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, id)
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
	payments, err := s.paymentRepo.ListByTenant(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	balances := &TenantBalances{
		Tenant:   tenant,
		Property: property,
		Rent:     ledger.ComputeBalance(tenant, property, payments, ledger.ObligationRent, 0),
		Deposit:  ledger.ComputeBalance(tenant, property, payments, ledger.ObligationDeposit, 0),
		Standing: ledger.ClassifyTenant(tenant, property, payments, now),
	}
	if balances.Standing == ledger.StandingOverdue {
		detail := ledger.ComputeOverdueDetail(tenant, property, payments, now)
		balances.Overdue = &detail
	}
	return balances, nil
}

// UpdateTenant edits personal and lease details. It does not move the tenant
// between properties; that goes through ReassignTenant so occupancy statuses
// stay consistent.
func (s *tenantService) UpdateTenant(ctx context.Context, tenant *domain.Tenant) error {
	existing, err := s.tenantRepo.GetByID(ctx, tenant.ID)
	if err != nil {
		return err
	}
	tenant.PropertyID = existing.PropertyID
	return s.tenantRepo.Update(ctx, tenant)
}

func (s *tenantService) ReassignTenant(ctx context.Context, tenantID, newPropertyID int32) error {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return err
	}
	newProperty, err := s.propertyRepo.GetByID(ctx, newPropertyID)
	if err != nil {
		return err
	}
	if newProperty.Status != domain.PropertyStatusVacant {
		return ErrPropertyNotVacant
	}

	oldPropertyID := tenant.PropertyID
	tenant.PropertyID = &newPropertyID
	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		return err
	}

	if oldPropertyID != nil {
		if err := s.vacateIfEmpty(ctx, *oldPropertyID); err != nil {
			return err
		}
	}
	return s.propertyRepo.UpdateStatus(ctx, newPropertyID, domain.PropertyStatusOccupied)
}

func (s *tenantService) RemoveTenant(ctx context.Context, id int32) error {
	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.tenantRepo.Remove(ctx, id); err != nil {
		return err
	}
	if tenant.PropertyID != nil {
		return s.vacateIfEmpty(ctx, *tenant.PropertyID)
	}
	return nil
}

func (s *tenantService) ListTenants(ctx context.Context, page, pageSize int32) ([]domain.Tenant, int32, error) {
	return s.tenantRepo.List(ctx, page, pageSize)
}

// vacateIfEmpty flips a property back to VACANT once no active tenant remains
// on it. A property held UNDER_MAINTENANCE keeps that status.
func (s *tenantService) vacateIfEmpty(ctx context.Context, propertyID int32) error {
	remaining, err := s.tenantRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return err
	}
	if len(remaining) > 0 {
		return nil
	}
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if property.Status == domain.PropertyStatusUnderMaintenance {
		return nil
	}
	return s.propertyRepo.UpdateStatus(ctx, propertyID, domain.PropertyStatusVacant)
}
