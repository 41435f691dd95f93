package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/domain"
	"github.com/JadanTechnologies/estateflowdemo-sub000/internal/repository"
)

type propertyRepository struct {
	db *sql.DB
}

func NewPropertyRepository(db *sql.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

const propertyColumns = `id, landlord_id, agent_id, name, address, COALESCE(city, ''), type, amenities, COALESCE(description, ''), rent_amount_cents, deposit_amount_cents, status, created_on, deleted_on`

func (r *propertyRepository) Create(ctx context.Context, p *domain.Property) error {
	query := `INSERT INTO properties (landlord_id, agent_id, name, address, city, type, amenities, description, rent_amount_cents, deposit_amount_cents, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.LandlordID, p.AgentID, p.Name, p.Address, p.City, p.Type, pq.Array(p.Amenities), p.Description, p.RentAmountCents, p.DepositAmountCents, p.Status, time.Now()).Scan(&p.ID)
}

func (r *propertyRepository) GetByID(ctx context.Context, id int32) (*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *propertyRepository) Update(ctx context.Context, p *domain.Property) error {
	query := `UPDATE properties SET agent_id=$1, name=$2, address=$3, city=$4, type=$5, amenities=$6, description=$7, rent_amount_cents=$8, deposit_amount_cents=$9, status=$10 WHERE id=$11`
	_, err := r.db.ExecContext(ctx, query, p.AgentID, p.Name, p.Address, p.City, p.Type, pq.Array(p.Amenities), p.Description, p.RentAmountCents, p.DepositAmountCents, p.Status, p.ID)
	return err
}

func (r *propertyRepository) UpdateStatus(ctx context.Context, id int32, status domain.PropertyStatus) error {
	query := `UPDATE properties SET status = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}

func (r *propertyRepository) Delete(ctx context.Context, id int32) error {
	query := `UPDATE properties SET deleted_on = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, time.Now(), id)
	return err
}

func (r *propertyRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Property, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE deleted_on IS NULL ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var count int32
	countQuery := `SELECT count(*) FROM properties WHERE deleted_on IS NULL`
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, err
	}

	properties, err := r.scanRows(rows)
	return properties, count, err
}

func (r *propertyRepository) ListByAgent(ctx context.Context, agentID int32) ([]domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE agent_id = $1 AND deleted_on IS NULL ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, agentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanRows(rows)
}

func (r *propertyRepository) ListByLandlord(ctx context.Context, landlordID int32) ([]domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE landlord_id = $1 AND deleted_on IS NULL ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanRows(rows)
}

func (r *propertyRepository) Search(ctx context.Context, query string, status domain.PropertyStatus, page, pageSize int32) ([]domain.Property, int32, error) {
	offset := (page - 1) * pageSize
	pattern := "%" + query + "%"

	sqlQuery := `SELECT ` + propertyColumns + ` FROM properties WHERE (name ILIKE $1 OR address ILIKE $1) AND deleted_on IS NULL`
	countQuery := `SELECT count(*) FROM properties WHERE (name ILIKE $1 OR address ILIKE $1) AND deleted_on IS NULL`
	args := []interface{}{pattern}
	if status != "" {
		sqlQuery += ` AND status = $2`
		countQuery += ` AND status = $2`
		args = append(args, status)
	}
	sqlQuery += ` ORDER BY name LIMIT ` + placeholder(len(args)+1) + ` OFFSET ` + placeholder(len(args)+2)

	var count int32
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, append(args, pageSize, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	properties, err := r.scanRows(rows)
	return properties, count, err
}

func (r *propertyRepository) scanOne(row *sql.Row) (*domain.Property, error) {
	p := &domain.Property{}
	var createdOn time.Time
	var deletedOn *time.Time
	err := row.Scan(&p.ID, &p.LandlordID, &p.AgentID, &p.Name, &p.Address, &p.City, &p.Type, pq.Array(&p.Amenities), &p.Description, &p.RentAmountCents, &p.DepositAmountCents, &p.Status, &createdOn, &deletedOn)
	if err != nil {
		return nil, err
	}
	p.CreatedOn = createdOn.Format("2006-01-02")
	if deletedOn != nil {
		d := deletedOn.Format("2006-01-02")
		p.DeletedOn = &d
	}
	return p, nil
}

func (r *propertyRepository) scanRows(rows *sql.Rows) ([]domain.Property, error) {
	var properties []domain.Property
	for rows.Next() {
		var p domain.Property
		var createdOn time.Time
		var deletedOn *time.Time
		if err := rows.Scan(&p.ID, &p.LandlordID, &p.AgentID, &p.Name, &p.Address, &p.City, &p.Type, pq.Array(&p.Amenities), &p.Description, &p.RentAmountCents, &p.DepositAmountCents, &p.Status, &createdOn, &deletedOn); err != nil {
			return nil, err
		}
		p.CreatedOn = createdOn.Format("2006-01-02")
		if deletedOn != nil {
			d := deletedOn.Format("2006-01-02")
			p.DeletedOn = &d
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

func placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}
