package service

import (
	"context"
	"errors"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/domain"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/repository"
)

var ErrPropertyOccupied = errors.New("property has active tenants")

type propertyService struct {
	propertyRepo repository.PropertyRepository
	tenantRepo   repository.TenantRepository
}

func NewPropertyService(propertyRepo repository.PropertyRepository, tenantRepo repository.TenantRepository) PropertyService {
	return &propertyService{propertyRepo: propertyRepo, tenantRepo: tenantRepo}
}

func (s *propertyService) AddProperty(ctx context.Context, property *domain.Property) error {
	if property.Status == "" {
		property.Status = domain.PropertyStatusVacant
	}
	return s.propertyRepo.Create(ctx, property)
}

func (s *propertyService) GetProperty(ctx context.Context, id int32) (*domain.Property, error) {
	return s.propertyRepo.GetByID(ctx, id)
}

// UpdateProperty edits listing details. Status is occupancy side-state owned
// by the tenant and maintenance flows, so the stored value is kept.
func (s *propertyService) UpdateProperty(ctx context.Context, property *domain.Property) error {
	existing, err := s.propertyRepo.GetByID(ctx, property.ID)
	if err != nil {
		return err
	}
	property.Status = existing.Status
	return s.propertyRepo.Update(ctx, property)
}

// DeleteProperty soft-deletes. Refused while tenants are assigned; their
// balances would silently collapse to zero otherwise.
func (s *propertyService) DeleteProperty(ctx context.Context, id int32) error {
	tenants, err := s.tenantRepo.ListByProperty(ctx, id)
	if err != nil {
		return err
	}
	if len(tenants) > 0 {
		return ErrPropertyOccupied
	}
	return s.propertyRepo.Delete(ctx, id)
}

func (s *propertyService) ListProperties(ctx context.Context, page, pageSize int32) ([]domain.Property, int32, error) {
	return s.propertyRepo.List(ctx, page, pageSize)
}

func (s *propertyService) SearchProperties(ctx context.Context, query string, status domain.PropertyStatus, page, pageSize int32) ([]domain.Property, int32, error) {
	return s.propertyRepo.Search(ctx, query, status, page, pageSize)
}
