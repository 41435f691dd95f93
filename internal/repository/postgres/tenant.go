package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/domain"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/repository"
)

type tenantRepository struct {
	db *sql.DB
}

func NewTenantRepository(db *sql.DB) repository.TenantRepository {
	return &tenantRepository{db: db}
}

const tenantColumns = `id, user_id, name, email, COALESCE(phone_number, ''), property_id, COALESCE(lease_start_date, ''), COALESCE(lease_end_date, ''), COALESCE(rent_due_date, ''), COALESCE(id_document_key, ''), COALESCE(notes, ''), created_on, removed_on`

func (r *tenantRepository) Create(ctx context.Context, t *domain.Tenant) error {
	query := `INSERT INTO tenants (user_id, name, email, phone_number, property_id, lease_start_date, lease_end_date, rent_due_date, id_document_key, notes, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRowContext(ctx, query, t.UserID, t.Name, t.Email, t.PhoneNumber, t.PropertyID, t.LeaseStartDate, t.LeaseEndDate, t.RentDueDate, t.IDDocumentKey, t.Notes, time.Now()).Scan(&t.ID)
}

func (r *tenantRepository) GetByID(ctx context.Context, id int32) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1`
	return scanTenant(r.db.QueryRowContext(ctx, query, id))
}

func (r *tenantRepository) GetByUserID(ctx context.Context, userID int32) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE user_id = $1 AND removed_on IS NULL`
	return scanTenant(r.db.QueryRowContext(ctx, query, userID))
}

func (r *tenantRepository) Update(ctx context.Context, t *domain.Tenant) error {
	query := `UPDATE tenants SET user_id=$1, name=$2, email=$3, phone_number=$4, property_id=$5, lease_start_date=$6, lease_end_date=$7, rent_due_date=$8, id_document_key=$9, notes=$10 WHERE id=$11`
	_, err := r.db.ExecContext(ctx, query, t.UserID, t.Name, t.Email, t.PhoneNumber, t.PropertyID, t.LeaseStartDate, t.LeaseEndDate, t.RentDueDate, t.IDDocumentKey, t.Notes, t.ID)
	return err
}

func (r *tenantRepository) Remove(ctx context.Context, id int32) error {
	query := `UPDATE tenants SET removed_on = $1, property_id = NULL WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, time.Now(), id)
	return err
}

func (r *tenantRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Tenant, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE removed_on IS NULL ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM tenants WHERE removed_on IS NULL`).Scan(&count); err != nil {
		return nil, 0, err
	}

	tenants, err := scanTenants(rows)
	return tenants, count, err
}

func (r *tenantRepository) ListActive(ctx context.Context) ([]domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE removed_on IS NULL ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTenants(rows)
}

func (r *tenantRepository) ListByProperty(ctx context.Context, propertyID int32) ([]domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE property_id = $1 AND removed_on IS NULL ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTenants(rows)
}

func scanTenant(row *sql.Row) (*domain.Tenant, error) {
	t := &domain.Tenant{}
	var createdOn time.Time
	var removedOn *time.Time
	err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.Email, &t.PhoneNumber, &t.PropertyID, &t.LeaseStartDate, &t.LeaseEndDate, &t.RentDueDate, &t.IDDocumentKey, &t.Notes, &createdOn, &removedOn)
	if err != nil {
		return nil, err
	}
	t.CreatedOn = createdOn.Format("2006-01-02")
	if removedOn != nil {
		d := removedOn.Format("2006-01-02")
		t.RemovedOn = &d
	}
	return t, nil
}

func scanTenants(rows *sql.Rows) ([]domain.Tenant, error) {
	var tenants []domain.Tenant
	for rows.Next() {
		var t domain.Tenant
		var createdOn time.Time
		var removedOn *time.Time
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Email, &t.PhoneNumber, &t.PropertyID, &t.LeaseStartDate, &t.LeaseEndDate, &t.RentDueDate, &t.IDDocumentKey, &t.Notes, &createdOn, &removedOn); err != nil {
			return nil, err
		}
		t.CreatedOn = createdOn.Format("2006-01-02")
		if removedOn != nil {
			d := removedOn.Format("2006-01-02")
			t.RemovedOn = &d
		}
		tenants = append(tenants, t)
	}
	return tenants, rows.Err()
}
