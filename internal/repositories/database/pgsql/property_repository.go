package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/imoveis-app/imoveis_backend/internal/apperrors"
	"github.com/imoveis-app/imoveis_backend/internal/core/domain"
	portsrepo "github.com/imoveis-app/imoveis_backend/internal/core/ports/repositories"
	"github.com/imoveis-app/imoveis_backend/internal/models"
	"github.com/imoveis-app/imoveis_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const propertyColumns = `property_id, name, unit, area, property_value, rent_value, condo_fee, iptu, extra_fee, tenant, start_date, end_date, due_day, net_value, notes, status, created_at, updated_at`

type PgxPropertyRepository struct {
	BaseRepository
}

// newPgxPropertyRepository creates a new repository for property data.
func newPgxPropertyRepository(pool *pgxpool.Pool) portsrepo.PropertyRepositoryWithTx {
	return &PgxPropertyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PropertyRepositoryWithTx = (*PgxPropertyRepository)(nil)

// SaveProperty inserts a new property.
func (r *PgxPropertyRepository) SaveProperty(ctx context.Context, property domain.Property) error {
	m := mapping.ToModelProperty(property)

	query := `
		INSERT INTO properties (` + propertyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.PropertyID,
		m.Name,
		m.Unit,
		m.Area,
		m.PropertyValue,
		m.RentValue,
		m.CondoFee,
		m.IPTU,
		m.ExtraFee,
		m.Tenant,
		m.StartDate,
		m.EndDate,
		m.DueDay,
		m.NetValue,
		m.Notes,
		m.Status,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save property %s: %w", m.PropertyID, err)
	}
	return nil
}

// FindPropertyByID retrieves a property by its ID.
func (r *PgxPropertyRepository) FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE property_id = $1;`

	var m models.Property
	err := r.Pool.QueryRow(ctx, query, propertyID).Scan(
		&m.PropertyID,
		&m.Name,
		&m.Unit,
		&m.Area,
		&m.PropertyValue,
		&m.RentValue,
		&m.CondoFee,
		&m.IPTU,
		&m.ExtraFee,
		&m.Tenant,
		&m.StartDate,
		&m.EndDate,
		&m.DueDay,
		&m.NetValue,
		&m.Notes,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find property by id %s: %w", propertyID, err)
	}

	d := mapping.ToDomainProperty(m)
	return &d, nil
}

// ListProperties retrieves all properties, oldest first so snapshot order is
// stable across reads.
func (r *PgxPropertyRepository) ListProperties(ctx context.Context) ([]domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties ORDER BY created_at, property_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	modelProperties, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Property, error) {
		var m models.Property
		err := row.Scan(
			&m.PropertyID,
			&m.Name,
			&m.Unit,
			&m.Area,
			&m.PropertyValue,
			&m.RentValue,
			&m.CondoFee,
			&m.IPTU,
			&m.ExtraFee,
			&m.Tenant,
			&m.StartDate,
			&m.EndDate,
			&m.DueDay,
			&m.NetValue,
			&m.Notes,
			&m.Status,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan properties: %w", err)
	}

	return mapping.ToDomainPropertySlice(modelProperties), nil
}

// UpdateProperty overwrites the mutable fields of an existing property.
func (r *PgxPropertyRepository) UpdateProperty(ctx context.Context, property domain.Property) error {
	m := mapping.ToModelProperty(property)

	query := `
		UPDATE properties SET
			name = $2,
			unit = $3,
			area = $4,
			property_value = $5,
			rent_value = $6,
			condo_fee = $7,
			iptu = $8,
			extra_fee = $9,
			tenant = $10,
			start_date = $11,
			end_date = $12,
			due_day = $13,
			net_value = $14,
			notes = $15,
			status = $16,
			updated_at = $17
		WHERE property_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.PropertyID,
		m.Name,
		m.Unit,
		m.Area,
		m.PropertyValue,
		m.RentValue,
		m.CondoFee,
		m.IPTU,
		m.ExtraFee,
		m.Tenant,
		m.StartDate,
		m.EndDate,
		m.DueDay,
		m.NetValue,
		m.Notes,
		m.Status,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update property %s: %w", m.PropertyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProperty removes a property and every transaction referencing it in
// a single database transaction.
func (r *PgxPropertyRepository) DeleteProperty(ctx context.Context, propertyID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE property_id = $1;`, propertyID); err != nil {
		return fmt.Errorf("failed to delete transactions for property %s: %w", propertyID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM properties WHERE property_id = $1;`, propertyID)
	if err != nil {
		return fmt.Errorf("failed to delete property %s: %w", propertyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
