package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jsamuelsen11/invoice-viewer/internal/domain"
	"github.com/jsamuelsen11/invoice-viewer/internal/domain/tenant"
	"github.com/jsamuelsen11/invoice-viewer/internal/ports"
)

// Compile-time interface check.
var _ ports.TenantStore = (*TenantStore)(nil)

const listTenantsSQL = `SELECT id, display_name, domain FROM tenants ORDER BY display_name, id`

// TenantStore reads tenants from the tenants table.
type TenantStore struct {
	q Querier
}

// NewTenantStore creates a TenantStore.
func NewTenantStore(q Querier) *TenantStore {
	return &TenantStore{q: q}
}

// ListTenants returns all tenants ordered by display name.
// Query failures are reported as domain.ErrUnavailable.
func (s *TenantStore) ListTenants(ctx context.Context) ([]tenant.Tenant, error) {
	rows, err := s.q.Query(ctx, listTenantsSQL)
	if err != nil {
		return nil, fmt.Errorf("querying tenants: %w: %w", domain.ErrUnavailable, err)
	}

	tenants, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (tenant.Tenant, error) {
		var t tenant.Tenant
		err := row.Scan(&t.ID, &t.DisplayName, &t.Domain)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("reading tenants: %w: %w", domain.ErrUnavailable, err)
	}

	if tenants == nil {
		tenants = []tenant.Tenant{}
	}
	return tenants, nil
}
