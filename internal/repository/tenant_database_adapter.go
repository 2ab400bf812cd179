package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"mellowise-loader/internal/domain"
	"mellowise-loader/internal/repository/models"
	"mellowise-loader/internal/util"
)

// TenantDatabaseAdapter implements domain.TenantRepository using sqlx
type TenantDatabaseAdapter struct {
	db DBTX
}

// NewTenantDatabaseAdapter creates a new instance of TenantDatabaseAdapter
func NewTenantDatabaseAdapter(db DBTX) domain.TenantRepository {
	return &TenantDatabaseAdapter{db: db}
}

// GetByName retrieves a tenant by its unique name. Returns nil without an
// error when no tenant exists.
func (a *TenantDatabaseAdapter) GetByName(ctx context.Context, name string) (*domain.Tenant, error) {
	var modelTenant models.Tenant
	query := `SELECT id, name, type, created_at, updated_at FROM tenants WHERE name = $1`
	err := a.db.GetContext(ctx, &modelTenant, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tenant by name %s: %w", name, err)
	}
	return convertToDomainTenant(&modelTenant), nil
}

// SaveTenant persists a new tenant
func (a *TenantDatabaseAdapter) SaveTenant(ctx context.Context, tenant *domain.Tenant) error {
	modelTenant := convertToModelTenant(tenant)
	modelTenant.ID = util.NewULID()
	modelTenant.CreatedAt = time.Now()
	modelTenant.UpdatedAt = time.Now()

	query := `INSERT INTO tenants (id, name, type, created_at, updated_at)
              VALUES (:id, :name, :type, :created_at, :updated_at)`
	_, err := a.db.NamedExecContext(ctx, query, modelTenant)
	if err != nil {
		return fmt.Errorf("failed to save tenant %s: %w", tenant.Name, err)
	}
	tenant.ID = modelTenant.ID
	tenant.CreatedAt = modelTenant.CreatedAt
	tenant.UpdatedAt = modelTenant.UpdatedAt
	return nil
}

// Helper functions for converting between domain and model types
func convertToDomainTenant(tenant *models.Tenant) *domain.Tenant {
	return &domain.Tenant{
		ID:        tenant.ID,
		Name:      tenant.Name,
		Type:      tenant.Type.String,
		CreatedAt: tenant.CreatedAt,
		UpdatedAt: tenant.UpdatedAt,
	}
}

func convertToModelTenant(tenant *domain.Tenant) *models.Tenant {
	return &models.Tenant{
		ID:        tenant.ID,
		Name:      tenant.Name,
		Type:      util.StringToNullString(tenant.Type),
		CreatedAt: tenant.CreatedAt,
		UpdatedAt: tenant.UpdatedAt,
	}
}
