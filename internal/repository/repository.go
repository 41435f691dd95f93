package repository

import (
	"context"
	"time"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

type PropertyRepository interface {
	Create(ctx context.Context, property *domain.Property) error
	GetByID(ctx context.Context, id int32) (*domain.Property, error)
	Update(ctx context.Context, property *domain.Property) error
	UpdateStatus(ctx context.Context, id int32, status domain.PropertyStatus) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Property, int32, error)
	ListByAgent(ctx context.Context, agentID int32) ([]domain.Property, error)
	ListByLandlord(ctx context.Context, landlordID int32) ([]domain.Property, error)
	Search(ctx context.Context, query string, status domain.PropertyStatus, page, pageSize int32) ([]domain.Property, int32, error)
}

type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByID(ctx context.Context, id int32) (*domain.Tenant, error)
	GetByUserID(ctx context.Context, userID int32) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	Remove(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Tenant, int32, error)
	ListActive(ctx context.Context) ([]domain.Tenant, error)
	ListByProperty(ctx context.Context, propertyID int32) ([]domain.Tenant, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id int32) (*domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) error
	ListByTenant(ctx context.Context, tenantID int32) ([]domain.Payment, error)
	ListByProperty(ctx context.Context, propertyID int32) ([]domain.Payment, error)
	ListByStatus(ctx context.Context, status domain.PaymentStatus, page, pageSize int32) ([]domain.Payment, int32, error)
	ListInPeriod(ctx context.Context, start, end time.Time) ([]domain.Payment, error)
}

type MaintenanceRepository interface {
	Create(ctx context.Context, req *domain.MaintenanceRequest) error
	GetByID(ctx context.Context, id int32) (*domain.MaintenanceRequest, error)
	Update(ctx context.Context, req *domain.MaintenanceRequest) error
	ListByProperty(ctx context.Context, propertyID int32) ([]domain.MaintenanceRequest, error)
	ListByStatus(ctx context.Context, status domain.MaintenanceStatus, page, pageSize int32) ([]domain.MaintenanceRequest, int32, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
