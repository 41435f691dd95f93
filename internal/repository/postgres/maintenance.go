package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/domain"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/repository"
)

type maintenanceRepository struct {
	db *sql.DB
}

func NewMaintenanceRepository(db *sql.DB) repository.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

const maintenanceColumns = `id, property_id, tenant_id, title, COALESCE(details, ''), priority, status, takes_property_offline, cost_cents, assigned_to, created_on, resolved_on`

func (r *maintenanceRepository) Create(ctx context.Context, m *domain.MaintenanceRequest) error {
	query := `INSERT INTO maintenance_requests (property_id, tenant_id, title, details, priority, status, takes_property_offline, cost_cents, assigned_to, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.PropertyID, m.TenantID, m.Title, m.Details, m.Priority, m.Status, m.TakesPropertyOffline, m.CostCents, m.AssignedTo, time.Now()).Scan(&m.ID)
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id int32) (*domain.MaintenanceRequest, error) {
	m := &domain.MaintenanceRequest{}
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_requests WHERE id = $1`
	var createdOn time.Time
	var resolvedOn *time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.PropertyID, &m.TenantID, &m.Title, &m.Details, &m.Priority, &m.Status, &m.TakesPropertyOffline, &m.CostCents, &m.AssignedTo, &createdOn, &resolvedOn)
	if err != nil {
		return nil, err
	}
	m.CreatedOn = createdOn.Format("2006-01-02")
	if resolvedOn != nil {
		d := resolvedOn.Format("2006-01-02")
		m.ResolvedOn = &d
	}
	return m, nil
}

func (r *maintenanceRepository) Update(ctx context.Context, m *domain.MaintenanceRequest) error {
	query := `UPDATE maintenance_requests SET title=$1, details=$2, priority=$3, status=$4, takes_property_offline=$5, cost_cents=$6, assigned_to=$7, resolved_on=$8 WHERE id=$9`
	var resolvedOn interface{}
	if m.ResolvedOn != nil {
		resolvedOn = *m.ResolvedOn
	}
	_, err := r.db.ExecContext(ctx, query, m.Title, m.Details, m.Priority, m.Status, m.TakesPropertyOffline, m.CostCents, m.AssignedTo, resolvedOn, m.ID)
	return err
}

func (r *maintenanceRepository) ListByProperty(ctx context.Context, propertyID int32) ([]domain.MaintenanceRequest, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_requests WHERE property_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMaintenanceRows(rows)
}

func (r *maintenanceRepository) ListByStatus(ctx context.Context, status domain.MaintenanceStatus, page, pageSize int32) ([]domain.MaintenanceRequest, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_requests WHERE status = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, status, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM maintenance_requests WHERE status = $1`, status).Scan(&count); err != nil {
		return nil, 0, err
	}

	reqs, err := scanMaintenanceRows(rows)
	return reqs, count, err
}

func scanMaintenanceRows(rows *sql.Rows) ([]domain.MaintenanceRequest, error) {
	var reqs []domain.MaintenanceRequest
	for rows.Next() {
		var m domain.MaintenanceRequest
		var createdOn time.Time
		var resolvedOn *time.Time
		if err := rows.Scan(&m.ID, &m.PropertyID, &m.TenantID, &m.Title, &m.Details, &m.Priority, &m.Status, &m.TakesPropertyOffline, &m.CostCents, &m.AssignedTo, &createdOn, &resolvedOn); err != nil {
			return nil, err
		}
		m.CreatedOn = createdOn.Format("2006-01-02")
		if resolvedOn != nil {
			d := resolvedOn.Format("2006-01-02")
			m.ResolvedOn = &d
		}
		reqs = append(reqs, m)
	}
	return reqs, rows.Err()
}
