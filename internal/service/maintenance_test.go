package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/domain"
)

func newMaintenanceFixture() (*MockMaintenanceRepo, *MockPropertyRepo, *MockTenantRepo, MaintenanceService) {
	maintenanceRepo := new(MockMaintenanceRepo)
	propertyRepo := new(MockPropertyRepo)
	tenantRepo := new(MockTenantRepo)
	svc := NewMaintenanceService(maintenanceRepo, propertyRepo, tenantRepo)
	return maintenanceRepo, propertyRepo, tenantRepo, svc
}

func TestMaintenanceService_OpenRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultsAndStatus", func(t *testing.T) {
		maintenanceRepo, propertyRepo, _, svc := newMaintenanceFixture()

		propertyRepo.On("GetByID", ctx, int32(10)).Return(&domain.Property{ID: 10, Status: domain.PropertyStatusOccupied}, nil)
		maintenanceRepo.On("Create", ctx, mock.AnythingOfType("*domain.MaintenanceRequest")).Return(nil)

		req := &domain.MaintenanceRequest{PropertyID: 10, Title: "Leaking tap"}
		err := svc.OpenRequest(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, domain.MaintenanceStatusOpen, req.Status)
		assert.Equal(t, domain.MaintenancePriorityMedium, req.Priority)
		propertyRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("OfflineRequestParksProperty", func(t *testing.T) {
		maintenanceRepo, propertyRepo, _, svc := newMaintenanceFixture()

		propertyRepo.On("GetByID", ctx, int32(10)).Return(&domain.Property{ID: 10, Status: domain.PropertyStatusOccupied}, nil)
		maintenanceRepo.On("Create", ctx, mock.AnythingOfType("*domain.MaintenanceRequest")).Return(nil)
		propertyRepo.On("UpdateStatus", ctx, int32(10), domain.PropertyStatusUnderMaintenance).Return(nil)

		req := &domain.MaintenanceRequest{PropertyID: 10, Title: "Burst pipe", Priority: domain.MaintenancePriorityUrgent, TakesPropertyOffline: true}
		err := svc.OpenRequest(ctx, req)
		require.NoError(t, err)
		propertyRepo.AssertExpectations(t)
	})
}

func TestMaintenanceService_StartRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("OpenBecomesInProgress", func(t *testing.T) {
		maintenanceRepo, _, _, svc := newMaintenanceFixture()

		maintenanceRepo.On("GetByID", ctx, int32(1)).Return(&domain.MaintenanceRequest{ID: 1, PropertyID: 10, Status: domain.MaintenanceStatusOpen}, nil)
		maintenanceRepo.On("Update", ctx, mock.AnythingOfType("*domain.MaintenanceRequest")).Return(nil)

		req, err := svc.StartRequest(ctx, 1, 7)
		require.NoError(t, err)
		assert.Equal(t, domain.MaintenanceStatusInProgress, req.Status)
		require.NotNil(t, req.AssignedTo)
		assert.Equal(t, int32(7), *req.AssignedTo)
	})

	t.Run("AlreadyStartedRefused", func(t *testing.T) {
		maintenanceRepo, _, _, svc := newMaintenanceFixture()

		maintenanceRepo.On("GetByID", ctx, int32(1)).Return(&domain.MaintenanceRequest{ID: 1, Status: domain.MaintenanceStatusInProgress}, nil)

		_, err := svc.StartRequest(ctx, 1, 7)
		assert.ErrorIs(t, err, ErrRequestNotOpen)
	})
}

func TestMaintenanceService_ResolveRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("RestoresOccupiedProperty", func(t *testing.T) {
		maintenanceRepo, propertyRepo, tenantRepo, svc := newMaintenanceFixture()

		maintenanceRepo.On("GetByID", ctx, int32(1)).Return(&domain.MaintenanceRequest{
			ID: 1, PropertyID: 10, Status: domain.MaintenanceStatusInProgress, TakesPropertyOffline: true,
		}, nil)
		maintenanceRepo.On("Update", ctx, mock.AnythingOfType("*domain.MaintenanceRequest")).Return(nil)
		maintenanceRepo.On("ListByProperty", ctx, int32(10)).Return([]domain.MaintenanceRequest{
			{ID: 1, PropertyID: 10, Status: domain.MaintenanceStatusResolved, TakesPropertyOffline: true},
		}, nil)
		tenantRepo.On("ListByProperty", ctx, int32(10)).Return([]domain.Tenant{{ID: 3, Name: "Ama"}}, nil)
		propertyRepo.On("UpdateStatus", ctx, int32(10), domain.PropertyStatusOccupied).Return(nil)

		req, err := svc.ResolveRequest(ctx, 1, 12500)
		require.NoError(t, err)
		assert.Equal(t, domain.MaintenanceStatusResolved, req.Status)
		assert.Equal(t, int64(12500), req.CostCents)
		require.NotNil(t, req.ResolvedOn)
		propertyRepo.AssertExpectations(t)
	})

	t.Run("OtherOfflineRequestKeepsPropertyParked", func(t *testing.T) {
		maintenanceRepo, propertyRepo, _, svc := newMaintenanceFixture()

		maintenanceRepo.On("GetByID", ctx, int32(1)).Return(&domain.MaintenanceRequest{
			ID: 1, PropertyID: 10, Status: domain.MaintenanceStatusOpen, TakesPropertyOffline: true,
		}, nil)
		maintenanceRepo.On("Update", ctx, mock.AnythingOfType("*domain.MaintenanceRequest")).Return(nil)
		maintenanceRepo.On("ListByProperty", ctx, int32(10)).Return([]domain.MaintenanceRequest{
			{ID: 1, PropertyID: 10, Status: domain.MaintenanceStatusResolved, TakesPropertyOffline: true},
			{ID: 2, PropertyID: 10, Status: domain.MaintenanceStatusOpen, TakesPropertyOffline: true},
		}, nil)

		_, err := svc.ResolveRequest(ctx, 1, 0)
		require.NoError(t, err)
		propertyRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("AlreadyResolvedRefused", func(t *testing.T) {
		maintenanceRepo, _, _, svc := newMaintenanceFixture()

		maintenanceRepo.On("GetByID", ctx, int32(1)).Return(&domain.MaintenanceRequest{ID: 1, Status: domain.MaintenanceStatusResolved}, nil)

		_, err := svc.ResolveRequest(ctx, 1, 0)
		assert.ErrorIs(t, err, ErrRequestNotInProgress)
	})
}
