package service

import (
	"context"
	"errors"
	"time"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/domain"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/repository"
)

var (
	ErrRequestNotOpen       = errors.New("request is not open")
	ErrRequestNotInProgress = errors.New("request is not in progress")
)

type maintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
	propertyRepo    repository.PropertyRepository
	tenantRepo      repository.TenantRepository
}

func NewMaintenanceService(
	maintenanceRepo repository.MaintenanceRepository,
	propertyRepo repository.PropertyRepository,
	tenantRepo repository.TenantRepository,
) MaintenanceService {
	return &maintenanceService{
		maintenanceRepo: maintenanceRepo,
		propertyRepo:    propertyRepo,
		tenantRepo:      tenantRepo,
	}
}

func (s *maintenanceService) OpenRequest(ctx context.Context, req *domain.MaintenanceRequest) error {
	if _, err := s.propertyRepo.GetByID(ctx, req.PropertyID); err != nil {
		return err
	}
	req.Status = domain.MaintenanceStatusOpen
	if req.Priority == "" {
		req.Priority = domain.MaintenancePriorityMedium
	}
	if err := s.maintenanceRepo.Create(ctx, req); err != nil {
		return err
	}
	if req.TakesPropertyOffline {
		return s.propertyRepo.UpdateStatus(ctx, req.PropertyID, domain.PropertyStatusUnderMaintenance)
	}
	return nil
}

func (s *maintenanceService) StartRequest(ctx context.Context, id int32, assignedTo int32) (*domain.MaintenanceRequest, error) {
	req, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != domain.MaintenanceStatusOpen {
		return nil, ErrRequestNotOpen
	}
	req.Status = domain.MaintenanceStatusInProgress
	req.AssignedTo = &assignedTo
	if err := s.maintenanceRepo.Update(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *maintenanceService) ResolveRequest(ctx context.Context, id int32, costCents int64) (*domain.MaintenanceRequest, error) {
	req, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status == domain.MaintenanceStatusResolved {
		return nil, ErrRequestNotInProgress
	}
	req.Status = domain.MaintenanceStatusResolved
	req.CostCents = costCents
	resolved := time.Now().Format("2006-01-02")
	req.ResolvedOn = &resolved
	if err := s.maintenanceRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	if req.TakesPropertyOffline {
		if err := s.restorePropertyStatus(ctx, req.PropertyID); err != nil {
			return nil, err
		}
	}
	return req, nil
}

func (s *maintenanceService) GetRequest(ctx context.Context, id int32) (*domain.MaintenanceRequest, error) {
	return s.maintenanceRepo.GetByID(ctx, id)
}

func (s *maintenanceService) ListByProperty(ctx context.Context, propertyID int32) ([]domain.MaintenanceRequest, error) {
	return s.maintenanceRepo.ListByProperty(ctx, propertyID)
}

func (s *maintenanceService) ListByStatus(ctx context.Context, status domain.MaintenanceStatus, page, pageSize int32) ([]domain.MaintenanceRequest, int32, error) {
	return s.maintenanceRepo.ListByStatus(ctx, status, page, pageSize)
}

// restorePropertyStatus brings a property back from UNDER_MAINTENANCE once no
// other offline-taking request remains unresolved. Occupancy decides whether
// it lands on OCCUPIED or VACANT.
func (s *maintenanceService) restorePropertyStatus(ctx context.Context, propertyID int32) error {
	requests, err := s.maintenanceRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return err
	}
	for _, r := range requests {
		if r.TakesPropertyOffline && r.Status != domain.MaintenanceStatusResolved {
			return nil
		}
	}

	tenants, err := s.tenantRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return err
	}
	status := domain.PropertyStatusVacant
	if len(tenants) > 0 {
		status = domain.PropertyStatusOccupied
	}
	return s.propertyRepo.UpdateStatus(ctx, propertyID, status)
}
