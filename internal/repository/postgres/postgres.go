package postgres

import (
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.PropertyRepository
	repository.TenantRepository
	repository.PaymentRepository
	repository.MaintenanceRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		PropertyRepository:     NewPropertyRepository(db),
		TenantRepository:       NewTenantRepository(db),
		PaymentRepository:      NewPaymentRepository(db),
		MaintenanceRepository:  NewMaintenanceRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
