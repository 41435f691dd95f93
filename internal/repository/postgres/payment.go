package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/domain"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, tenant_id, property_id, type, status, amount_paid_cents, method, receipt_number, COALESCE(proof_key, ''), COALESCE(notes, ''), recorded_by, date, updated_on`

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (tenant_id, property_id, type, status, amount_paid_cents, method, receipt_number, proof_key, notes, recorded_by, date, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	now := time.Now()
	if p.Date.IsZero() {
		p.Date = now
	}
	return r.db.QueryRowContext(ctx, query, p.TenantID, p.PropertyID, p.Type, p.Status, p.AmountPaidCents, p.Method, p.ReceiptNumber, p.ProofKey, p.Notes, p.RecordedBy, p.Date, now).Scan(&p.ID)
}

func (r *paymentRepository) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	p := &domain.Payment{}
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.TenantID, &p.PropertyID, &p.Type, &p.Status, &p.AmountPaidCents, &p.Method, &p.ReceiptNumber, &p.ProofKey, &p.Notes, &p.RecordedBy, &p.Date, &p.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Update never touches the original date or receipt number; a payment's
// identity is fixed at creation.
func (r *paymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	query := `UPDATE payments SET type=$1, status=$2, amount_paid_cents=$3, method=$4, proof_key=$5, notes=$6, updated_on=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, p.Type, p.Status, p.AmountPaidCents, p.Method, p.ProofKey, p.Notes, time.Now(), p.ID)
	return err
}

func (r *paymentRepository) ListByTenant(ctx context.Context, tenantID int32) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE tenant_id = $1 ORDER BY date DESC`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *paymentRepository) ListByProperty(ctx context.Context, propertyID int32) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE property_id = $1 ORDER BY date DESC`
	rows, err := r.db.QueryContext(ctx, query, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *paymentRepository) ListByStatus(ctx context.Context, status domain.PaymentStatus, page, pageSize int32) ([]domain.Payment, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE status = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, status, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM payments WHERE status = $1`, status).Scan(&count); err != nil {
		return nil, 0, err
	}

	payments, err := scanPayments(rows)
	return payments, count, err
}

func (r *paymentRepository) ListInPeriod(ctx context.Context, start, end time.Time) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE date >= $1 AND date <= $2 ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func scanPayments(rows *sql.Rows) ([]domain.Payment, error) {
	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.TenantID, &p.PropertyID, &p.Type, &p.Status, &p.AmountPaidCents, &p.Method, &p.ReceiptNumber, &p.ProofKey, &p.Notes, &p.RecordedBy, &p.Date, &p.UpdatedOn); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
