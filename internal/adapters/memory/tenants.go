package memory

import (
	"context"
	"slices"

	"github.com/jsamuelsen11/invoice-viewer/internal/domain/tenant"
	"github.com/jsamuelsen11/invoice-viewer/internal/ports"
)

// Compile-time interface check.
var _ ports.TenantStore = (*TenantStore)(nil)

type sampleTenant struct {
	id, name, domain string
}

var (
	contoso        = sampleTenant{"tenant-1", "Contoso Corporation", "contoso.onmicrosoft.com"}
	fabrikam       = sampleTenant{"tenant-2", "Fabrikam Inc.", "fabrikam.onmicrosoft.com"}
	adventureWorks = sampleTenant{"tenant-3", "Adventure Works", "adventureworks.onmicrosoft.com"}
)

// TenantStore serves a fixed tenant list ordered by display name.
type TenantStore struct {
	tenants []tenant.Tenant
}

// NewTenantStore returns a store backed by tenants. A nil slice selects
// SampleTenants.
func NewTenantStore(tenants []tenant.Tenant) *TenantStore {
	if tenants == nil {
		tenants = SampleTenants()
	}
	sorted := slices.Clone(tenants)
	tenant.SortByDisplayName(sorted)
	return &TenantStore{tenants: sorted}
}

// ListTenants returns a copy of the tenants ordered by display name.
func (s *TenantStore) ListTenants(ctx context.Context) ([]tenant.Tenant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.tenants), nil
}

// SampleTenants returns the demo tenants that own SampleInvoices.
func SampleTenants() []tenant.Tenant {
	out := make([]tenant.Tenant, 0, 3)
	for _, t := range []sampleTenant{contoso, fabrikam, adventureWorks} {
		out = append(out, tenant.Tenant{ID: t.id, DisplayName: t.name, Domain: t.domain})
	}
	return out
}
